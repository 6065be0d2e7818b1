package dto

import (
	"time"

	"talentsite_backend/internal/models"
)

// RegisterRequest - запрос регистрации
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse - ответ с токеном и профилем
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse - публичное представление пользователя
type UserResponse struct {
	ID            uint       `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Role          string     `json:"role"`
	Plan          string     `json:"plan"`
	Blocked       bool       `json:"blocked"`
	Suspended     bool       `json:"suspended"`
	SuspendedFrom *time.Time `json:"suspended_from,omitempty"`
	SuspendedTo   *time.Time `json:"suspended_to,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// NewUserResponse строит представление из модели
func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Role:          u.Role,
		Plan:          u.Plan,
		Blocked:       u.Blocked,
		Suspended:     u.Suspended,
		SuspendedFrom: u.SuspendedFrom,
		SuspendedTo:   u.SuspendedTo,
		CreatedAt:     u.CreatedAt,
	}
}
