package model

import (
	"time"

	"github.com/google/uuid"
)

// PrimeCollabModel is the GORM-specific struct for the 'penny_prime_collabs' table.
// The collab code carries the unique index that backs race-safe idempotent minting.
// Collabs intentionally have no soft-delete column: payout history must survive
// deletion of the parent coupon.
type PrimeCollabModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CouponID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	AgentUserID  *uuid.UUID `gorm:"type:uuid;index"`
	AgentMobile  string     `gorm:"type:varchar(15);not null"`
	CollabCode   string     `gorm:"type:varchar(30);not null;uniqueIndex"`
	MarginStatus string     `gorm:"type:varchar(10);not null;default:'pending';index"`
	MarginPaidAt *time.Time
	MarginPaidBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PrimeCollabModel) TableName() string {
	return "penny_prime_collabs"
}
