package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a seller-listed catalog item. Seller products require admin
// approval before they become sellable or eligible for Penny Prime coupons.
type Product struct {
	ID           uuid.UUID `json:"id"`
	SellerID     uuid.UUID `json:"seller_id"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	MRP          float64   `json:"mrp"`
	PurchaseRate float64   `json:"purchase_rate"` // Cost basis, used for report COGS.
	Stock        int       `json:"stock"`
	Category     string    `json:"category,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`
	IsApproved   bool      `json:"is_approved"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Sellable reports whether the product can be sold or attached to a coupon.
func (p *Product) Sellable() bool {
	return p.IsApproved && p.IsActive
}
