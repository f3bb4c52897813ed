package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex" json:"email" validate:"required,email"`
	Username  string    `gorm:"uniqueIndex" json:"username" validate:"required"`
	Password  string    `json:"-"` // bcrypt hash, never serialized
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
