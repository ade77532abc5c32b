package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionKind distinguishes wallet credits from debits.
type TransactionKind string

const (
	TransactionCredit TransactionKind = "credit"
	TransactionDebit  TransactionKind = "debit"
)

// Wallet is a running balance owned by one agent identity.
// It is created lazily on the first settlement credit.
type Wallet struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WalletTransaction is one append-only entry in a wallet's transaction log.
// The wallet balance equals the sum of credits minus the sum of debits.
type WalletTransaction struct {
	ID          uuid.UUID       `json:"id"`
	WalletID    uuid.UUID       `json:"wallet_id"`
	OwnerID     uuid.UUID       `json:"owner_id"`
	Kind        TransactionKind `json:"kind"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}
