package impl

import (
	"context"

	"pennyekart/internal/domain/entity"
	domainerrors "pennyekart/internal/domain/errors"
	"pennyekart/internal/domain/repository"
	"pennyekart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type walletService struct {
	walletRepo repository.WalletRepository
}

// WalletServiceParams holds dependencies for WalletService, injected by Fx.
type WalletServiceParams struct {
	fx.In

	WalletRepo repository.WalletRepository
}

// NewWalletService creates a new wallet service instance
func NewWalletService(params WalletServiceParams) usecase.WalletUsecase {
	return &walletService{
		walletRepo: params.WalletRepo,
	}
}

// GetWallet retrieves the wallet owned by the given identity
func (s *walletService) GetWallet(ctx context.Context, ownerID uuid.UUID) (*entity.Wallet, error) {
	wallet, err := s.walletRepo.FindWalletByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrWalletNotFound) {
			return nil, domainerrors.ErrWalletNotFound
		}

		return nil, errors.Wrap(err, "failed to find wallet")
	}

	return wallet, nil
}

// ListTransactions retrieves an owner's wallet transaction log, newest first
func (s *walletService) ListTransactions(ctx context.Context, ownerID uuid.UUID) ([]*entity.WalletTransaction, error) {
	txns, err := s.walletRepo.ListTransactionsByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wallet transactions")
	}

	return txns, nil
}
