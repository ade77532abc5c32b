package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderModel is the GORM-specific struct for the 'orders' table. Line items are
// stored as a JSONB array, matching how the checkout flow writes them.
type OrderModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    *uuid.UUID     `gorm:"type:uuid;index"`
	SellerID  *uuid.UUID     `gorm:"type:uuid;index"`
	Status    string         `gorm:"type:varchar(30);not null;index"`
	Total     float64        `gorm:"type:decimal(12,2);not null"`
	Items     datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
