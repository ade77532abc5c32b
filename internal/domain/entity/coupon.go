package entity

import (
	"time"

	"github.com/google/uuid"
)

// Coupon represents a seller's standing Penny Prime offer on one of their products.
// Agents collab against the coupon to mint personalized referral codes.
type Coupon struct {
	ID               uuid.UUID      `json:"id"`                // The unique identifier for the coupon.
	SellerID         uuid.UUID      `json:"seller_id"`         // The seller who owns the offer.
	ProductID        uuid.UUID      `json:"product_id"`        // The product the offer applies to.
	Code             string         `json:"code"`              // The seller-chosen code, stored uppercase, unique system-wide.
	CustomerDiscount DiscountPolicy `json:"customer_discount"` // What the customer saves at checkout.
	AgentMargin      DiscountPolicy `json:"agent_margin"`      // What the referring agent earns per redemption.
	IsActive         bool           `json:"is_active"`         // Whether the coupon is currently open for collabs and redemptions.
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// CouponListing is a Coupon enriched with product and seller display data
// for the storefront browse page.
type CouponListing struct {
	Coupon

	ProductName     string  `json:"product_name"`
	ProductPrice    float64 `json:"product_price"`
	ProductMRP      float64 `json:"product_mrp"`
	ProductImageURL string  `json:"product_image_url,omitempty"`
	SellerName      string  `json:"seller_name"`
}
