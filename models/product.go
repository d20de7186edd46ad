package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ProductCategory string

const (
	CategoryJerseys     ProductCategory = "jerseys"
	CategoryShoes       ProductCategory = "shoes"
	CategoryBalls       ProductCategory = "balls"
	CategoryAccessories ProductCategory = "accessories"
)

// ValidCategory reports whether s names a known catalog category.
func ValidCategory(s string) bool {
	switch ProductCategory(s) {
	case CategoryJerseys, CategoryShoes, CategoryBalls, CategoryAccessories:
		return true
	}
	return false
}

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Price       float64         `gorm:"not null" json:"price"`
	Category    ProductCategory `gorm:"type:VARCHAR(20);not null;index" json:"category"`
	Sizes       pq.StringArray  `gorm:"type:text[]" json:"sizes"`
	Colors      pq.StringArray  `gorm:"type:text[]" json:"colors"`
	Images      pq.StringArray  `gorm:"type:text[];not null" json:"images"`
	Rating      float64         `json:"rating"`
	Featured    bool            `gorm:"index" json:"featured"`
	Discount    int             `json:"discount"` // percent off, 0 = not on sale
	Stock       int             `gorm:"not null" json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}
