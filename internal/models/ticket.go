package models

import "time"

// Ticket - обращение в поддержку с публичной формы сайта
type Ticket struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *uint     `gorm:"column:user_id" json:"user_id,omitempty"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Subject   string    `gorm:"size:255;not null" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Status    string    `gorm:"size:20;not null;default:'open'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (Ticket) TableName() string { return "tickets" }
