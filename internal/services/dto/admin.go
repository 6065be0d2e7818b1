package dto

import "time"

// ListQuery - постраничная выборка для админских списков
type ListQuery struct {
	Page     int `form:"page" validate:"omitempty,min=1"`
	PageSize int `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// Normalize подставляет значения по умолчанию
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 20
	}
}

// UserListResponse - страница пользователей
type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// SuspendRequest - окно приостановки аккаунта
type SuspendRequest struct {
	From *time.Time `json:"from"`
	To   *time.Time `json:"to"`
}

// PlanChangeRequest - смена тарифа пользователя
type PlanChangeRequest struct {
	Plan string `json:"plan" validate:"required,oneof=free basic premium"`
}

// TicketStatusRequest - смена статуса обращения
type TicketStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open closed"`
}
