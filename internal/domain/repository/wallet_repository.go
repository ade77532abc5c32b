package repository

import (
	"context"

	"pennyekart/internal/domain/entity"
	"pennyekart/internal/errors"

	"github.com/google/uuid"
)

// ErrWalletNotFound is returned when an agent has no wallet yet.
var ErrWalletNotFound = errors.New("wallet not found")

// WalletRepository defines the interface for agent wallet operations.
type WalletRepository interface {
	// FindWalletByOwner retrieves the wallet owned by the given identity.
	FindWalletByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Wallet, error)

	// CreateWallet persists a new wallet, typically with the initial credit as
	// its opening balance.
	CreateWallet(ctx context.Context, wallet *entity.Wallet) error

	// CreditWallet atomically increments the wallet balance. The increment runs
	// as a single UPDATE so concurrent settlements for the same agent cannot
	// lose updates.
	CreditWallet(ctx context.Context, walletID uuid.UUID, amount float64) error

	// AppendTransaction appends one entry to the wallet's transaction log.
	AppendTransaction(ctx context.Context, txn *entity.WalletTransaction) error

	// ListTransactionsByOwner retrieves an owner's transaction log, newest first.
	ListTransactionsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.WalletTransaction, error)
}
