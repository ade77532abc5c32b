package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order statuses relevant to reporting. The checkout flow itself lives outside
// this service; orders are read here for analytics only.
const (
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// OrderItem is one line item inside an order's item list.
type OrderItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
}

// Order is a customer order as seen by the reporting module.
type Order struct {
	ID        uuid.UUID   `json:"id"`
	UserID    *uuid.UUID  `json:"user_id,omitempty"`
	SellerID  *uuid.UUID  `json:"seller_id,omitempty"`
	Status    string      `json:"status"`
	Total     float64     `json:"total"`
	Items     []OrderItem `json:"items"`
	CreatedAt time.Time   `json:"created_at"`
}
