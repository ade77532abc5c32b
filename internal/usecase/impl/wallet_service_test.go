package impl

import (
	"context"
	"testing"

	"pennyekart/internal/domain/entity"
	domainerrors "pennyekart/internal/domain/errors"
	"pennyekart/internal/domain/repository"
	mockRepo "pennyekart/internal/mocks/repository"
	"pennyekart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// walletServiceFixtures holds all test dependencies for wallet service tests.
type walletServiceFixtures struct {
	service    usecase.WalletUsecase
	walletRepo *mockRepo.MockWalletRepository
}

func createTestWalletService(t *testing.T) walletServiceFixtures {
	walletRepo := mockRepo.NewMockWalletRepository(t)

	service := NewWalletService(WalletServiceParams{
		WalletRepo: walletRepo,
	})

	return walletServiceFixtures{
		service:    service,
		walletRepo: walletRepo,
	}
}

func TestWalletService_GetWallet_Success(t *testing.T) {
	fx := createTestWalletService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	wallet := &entity.Wallet{ID: uuid.New(), OwnerID: ownerID, Balance: 125}

	fx.walletRepo.EXPECT().FindWalletByOwner(ctx, ownerID).Return(wallet, nil)

	result, err := fx.service.GetWallet(ctx, ownerID)

	require.NoError(t, err)
	assert.Equal(t, wallet, result)
}

func TestWalletService_GetWallet_NotFound(t *testing.T) {
	fx := createTestWalletService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.walletRepo.EXPECT().
		FindWalletByOwner(ctx, ownerID).
		Return(nil, repository.ErrWalletNotFound)

	result, err := fx.service.GetWallet(ctx, ownerID)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrWalletNotFound))
}

func TestWalletService_ListTransactions_Success(t *testing.T) {
	fx := createTestWalletService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	txns := []*entity.WalletTransaction{
		{ID: uuid.New(), OwnerID: ownerID, Kind: entity.TransactionCredit, Amount: 50},
	}

	fx.walletRepo.EXPECT().ListTransactionsByOwner(ctx, ownerID).Return(txns, nil)

	result, err := fx.service.ListTransactions(ctx, ownerID)

	require.NoError(t, err)
	assert.Equal(t, txns, result)
}
