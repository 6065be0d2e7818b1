package models

import "time"

// User - пользователь сайта либо администратор панели
type User struct {
	ID            uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string     `gorm:"size:100;not null" json:"name"`
	Email         string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash  string     `gorm:"column:password_hash;size:255;not null" json:"-"`
	Role          string     `gorm:"size:20;not null;default:'user'" json:"role"`
	Plan          string     `gorm:"size:50;not null;default:'free'" json:"plan"`
	Blocked       bool       `gorm:"not null;default:false" json:"blocked"`
	Suspended     bool       `gorm:"not null;default:false" json:"suspended"`
	SuspendedFrom *time.Time `gorm:"column:suspended_from" json:"suspended_from,omitempty"`
	SuspendedTo   *time.Time `gorm:"column:suspended_to" json:"suspended_to,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (User) TableName() string { return "users" }

// SuspendedNow сообщает, попадает ли текущий момент в окно приостановки
func (u *User) SuspendedNow(now time.Time) bool {
	if !u.Suspended {
		return false
	}
	if u.SuspendedFrom != nil && now.Before(*u.SuspendedFrom) {
		return false
	}
	if u.SuspendedTo != nil && now.After(*u.SuspendedTo) {
		return false
	}
	return true
}
