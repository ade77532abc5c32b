package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PrimeCouponModel is the GORM-specific struct for the 'penny_prime_coupons' table.
// It represents a seller's standing discount+margin offer on one product.
type PrimeCouponModel struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SellerID              uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID             uuid.UUID `gorm:"type:uuid;not null;index"`
	Code                  string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	CustomerDiscountType  string    `gorm:"type:varchar(10);not null"`
	CustomerDiscountValue float64   `gorm:"type:decimal(10,2);not null"`
	AgentMarginType       string    `gorm:"type:varchar(10);not null"`
	AgentMarginValue      float64   `gorm:"type:decimal(10,2);not null"`
	IsActive              bool      `gorm:"not null;default:true"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PrimeCouponModel) TableName() string {
	return "penny_prime_coupons"
}
