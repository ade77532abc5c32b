package model

import (
	"time"

	"github.com/google/uuid"
)

// WalletModel is the GORM-specific struct for the 'customer_wallets' table.
// One wallet per owner identity, created lazily on first credit.
type WalletModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Balance   float64   `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WalletModel) TableName() string {
	return "customer_wallets"
}

// WalletTransactionModel is the GORM-specific struct for the
// 'customer_wallet_transactions' table. Entries are append-only.
type WalletTransactionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	WalletID    uuid.UUID `gorm:"type:uuid;not null;index"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind        string    `gorm:"type:varchar(10);not null"`
	Amount      float64   `gorm:"type:decimal(12,2);not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (WalletTransactionModel) TableName() string {
	return "customer_wallet_transactions"
}
