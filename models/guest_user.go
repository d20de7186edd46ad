package models

import "time"

// GuestUser is a short-lived anonymous identity so a visitor can fill a cart
// and wishlist before registering.
type GuestUser struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
}
