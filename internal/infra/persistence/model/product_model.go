package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SellerProductModel is the GORM-specific struct for the 'seller_products' table.
type SellerProductModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SellerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Price        float64   `gorm:"type:decimal(10,2);not null"`
	MRP          float64   `gorm:"type:decimal(10,2);not null"`
	PurchaseRate float64   `gorm:"type:decimal(10,2);not null;default:0"`
	Stock        int       `gorm:"not null;default:0"`
	Category     string    `gorm:"type:varchar(100)"`
	ImageURL     string    `gorm:"type:text"`
	IsApproved   bool      `gorm:"not null;default:false"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (SellerProductModel) TableName() string {
	return "seller_products"
}
