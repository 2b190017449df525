package entity

import (
	"time"

	"github.com/google/uuid"
)

// Supplier represents a resolved supplier record.
type Supplier struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   *string   `json:"address,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Customer represents a resolved customer record.
type Customer struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	BillingAddress  *string   `json:"billing_address,omitempty"`
	ShippingAddress *string   `json:"shipping_address,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
