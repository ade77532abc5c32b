package usecase

import (
	"context"

	"pennyekart/internal/domain/entity"

	"github.com/google/uuid"
)

// WalletUsecase defines the interface for agent wallet read use cases
type WalletUsecase interface {
	// GetWallet retrieves the wallet owned by the given identity
	GetWallet(ctx context.Context, ownerID uuid.UUID) (*entity.Wallet, error)

	// ListTransactions retrieves an owner's wallet transaction log, newest first
	ListTransactions(ctx context.Context, ownerID uuid.UUID) ([]*entity.WalletTransaction, error)
}
