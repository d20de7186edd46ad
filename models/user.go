package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID            string               `gorm:"primaryKey" json:"id"`
	Email         string               `gorm:"unique;not null" json:"email"`
	PasswordHash  string               `json:"-"`
	Name          string               `json:"name"`
	Phone         string               `json:"phone"`
	Picture       string               `json:"picture"`
	Notifications NotificationSettings `gorm:"embedded;embeddedPrefix:notify_" json:"notifications"`
	Addresses     []Address            `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"addresses,omitempty"`
	Cart          Cart                 `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart,omitempty"`
	Orders        []Order              `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"orders,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
}

// NotificationSettings are the toggles from the account settings screen,
// embedded in the user row.
type NotificationSettings struct {
	OrderUpdates bool `json:"order_updates"`
	Promotions   bool `json:"promotions"`
	Newsletter   bool `json:"newsletter"`
}

type Address struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	UserID     string    `gorm:"index;not null" json:"user_id"`
	Label      string    `json:"label"` // e.g. "Home", "Work"
	Street     string    `json:"street"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	PostalCode string    `json:"postal_code"`
	Country    string    `json:"country"`
	IsDefault  bool      `json:"is_default"`
	CreatedAt  time.Time `json:"created_at"`
}

func (a *Address) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// PaymentMethod stores only what the UI needs to render a saved card.
// The full card number never reaches this table: handlers reduce it to the
// last four digits before saving.
type PaymentMethod struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	UserID     string    `gorm:"index;not null" json:"user_id"`
	Brand      string    `json:"brand"` // e.g. "visa", "mastercard"
	Last4      string    `json:"last4"`
	ExpiryMM   int       `json:"expiry_mm"`
	ExpiryYY   int       `json:"expiry_yy"`
	HolderName string    `json:"holder_name"`
	IsDefault  bool      `json:"is_default"`
	CreatedAt  time.Time `json:"created_at"`
}

func (p *PaymentMethod) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
