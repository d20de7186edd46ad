package models

import "time"

// WishlistItem is a liked product. Unlike the cart there is no quantity or
// variant concept; the (UserID, ProductID) pair is unique so a repeated add
// is a no-op.
type WishlistItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       string    `gorm:"uniqueIndex:idx_wishlist_user_product" json:"user_id"`
	ProductID    uint      `gorm:"uniqueIndex:idx_wishlist_user_product" json:"product_id"`
	ProductName  string    `json:"product_name"`
	ProductImage string    `json:"product_image"`
	ProductPrice float64   `json:"product_price"`
	AddedAt      time.Time `json:"added_at"`
}
