package models

import "time"

type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name" validate:"required"`
	Price       float64   `json:"price" validate:"required"`
	Description string    `json:"description" validate:"required"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	CategoryID  uint      `json:"category_id"`                                                // Foreign key to Category
	Category    Category  `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"` // Belongs to one Category
}
