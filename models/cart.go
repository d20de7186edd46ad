package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	UserID    string     `gorm:"uniqueIndex" json:"user_id"` // Enforces ONE cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem is one line of a cart. The Product* columns are a snapshot taken at
// add-to-cart time and do not follow later catalog edits. A line is identified
// by the (ProductID, Size, Color) tuple: the same product in another size or
// color is a separate line.
type CartItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CartID       uint      `gorm:"index" json:"cart_id"`
	ProductID    uint      `json:"product_id"`
	Size         string    `json:"size"`
	Color        string    `json:"color"`
	ProductName  string    `json:"product_name"`
	ProductImage string    `json:"product_image"`
	ProductPrice float64   `json:"product_price"`
	ProductStock int       `json:"product_stock"`
	Quantity     int       `gorm:"not null" json:"quantity"` // always >= 1 and <= ProductStock
	AddedAt      time.Time `json:"added_at"`
}

// SameVariant reports whether the line matches the given identity tuple.
func (ci CartItem) SameVariant(productID uint, size, color string) bool {
	return ci.ProductID == productID && ci.Size == size && ci.Color == color
}
