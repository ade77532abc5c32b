package model

import (
	"time"

	"github.com/google/uuid"
)

// PrimeCouponUseModel is the GORM-specific struct for the 'penny_prime_coupon_uses' table.
// Rows are append-only; the margin amount is frozen at redemption time.
type PrimeCouponUseModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CollaborationID uuid.UUID  `gorm:"type:uuid;not null;index"`
	OrderID         *uuid.UUID `gorm:"type:uuid"`
	MarginAmount    float64    `gorm:"type:decimal(10,2);not null"`
	UsedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (PrimeCouponUseModel) TableName() string {
	return "penny_prime_coupon_uses"
}
