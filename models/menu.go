package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type MenuItem struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	Title      string          `json:"title" gorm:"not null;index"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(6,2);not null;index"`
	Featured   bool            `json:"featured" gorm:"not null;default:false;index"`
	CategoryID uint            `json:"category_id" gorm:"not null"`
	Category   Category        `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	SoftDelete
}
