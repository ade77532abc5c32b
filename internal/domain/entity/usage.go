package entity

import (
	"time"

	"github.com/google/uuid"
)

// CouponUsage records one redemption of a collaboration's code in an order.
// The margin amount is computed at redemption time against the live coupon
// policy and frozen here, so later policy changes never alter earned amounts.
type CouponUsage struct {
	ID              uuid.UUID  `json:"id"`
	CollaborationID uuid.UUID  `json:"collaboration_id"`
	OrderID         *uuid.UUID `json:"order_id,omitempty"`
	MarginAmount    float64    `json:"margin_amount"`
	UsedAt          time.Time  `json:"used_at"`
}
