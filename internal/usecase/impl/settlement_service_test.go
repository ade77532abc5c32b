package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pennyekart/internal/domain/entity"
	domainerrors "pennyekart/internal/domain/errors"
	"pennyekart/internal/domain/repository"
	"pennyekart/internal/domain/service"
	mockRepo "pennyekart/internal/mocks/repository"
	mockSvc "pennyekart/internal/mocks/service"
	"pennyekart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// settlementServiceFixtures holds all test dependencies for settlement service tests.
type settlementServiceFixtures struct {
	service    usecase.SettlementUsecase
	collabRepo *mockRepo.MockCollabRepository
	couponRepo *mockRepo.MockCouponRepository
	txManager  *mockRepo.MockTransactionManager
	publisher  *mockSvc.MockEventPublisher
}

func createTestSettlementService(t *testing.T) settlementServiceFixtures {
	collabRepo := mockRepo.NewMockCollabRepository(t)
	couponRepo := mockRepo.NewMockCouponRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewSettlementService(SettlementServiceParams{
		CollabRepo:     collabRepo,
		CouponRepo:     couponRepo,
		TxManager:      txManager,
		EventPublisher: publisher,
		Logger:         logger,
	})

	return settlementServiceFixtures{
		service:    service,
		collabRepo: collabRepo,
		couponRepo: couponRepo,
		txManager:  txManager,
		publisher:  publisher,
	}
}

// onExecute wires the transaction manager mock to run the settlement callback
// against a factory prepared by setup, propagating the callback's error.
func (fx settlementServiceFixtures) onExecute(t *testing.T, ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		})
}

func pendingCollab(agentID *uuid.UUID) *entity.Collaboration {
	return &entity.Collaboration{
		ID:           uuid.New(),
		CouponID:     uuid.New(),
		AgentUserID:  agentID,
		AgentMobile:  "9876543210",
		Code:         "JOYSTORE20-9810",
		MarginStatus: entity.MarginPending,
	}
}

func TestSettlementService_Settle_CreditsExistingWallet(t *testing.T) {
	fx := createTestSettlementService(t)

	ctx := context.Background()
	agentID := uuid.New()
	operatorID := uuid.New()
	collab := pendingCollab(&agentID)
	coupon := &entity.Coupon{
		ID:          collab.CouponID,
		AgentMargin: entity.DiscountPolicy{Kind: entity.PolicyAmount, Value: 50},
	}
	wallet := &entity.Wallet{ID: uuid.New(), OwnerID: agentID, Balance: 10}

	fx.collabRepo.EXPECT().FindCollabByID(ctx, collab.ID).Return(collab, nil)
	fx.couponRepo.EXPECT().FindCouponByID(ctx, collab.CouponID).Return(coupon, nil)

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUsageRepo := mockRepo.NewMockUsageRepository(t)
		mockWalletRepo := mockRepo.NewMockWalletRepository(t)
		mockCollabRepo := mockRepo.NewMockCollabRepository(t)

		factory.EXPECT().NewUsageRepository().Return(mockUsageRepo)
		factory.EXPECT().NewWalletRepository().Return(mockWalletRepo)
		factory.EXPECT().NewCollabRepository().Return(mockCollabRepo)

		mockUsageRepo.EXPECT().
			ListUsagesByCollab(ctx, collab.ID).
			Return([]*entity.CouponUsage{
				{MarginAmount: 30},
				{MarginAmount: 45},
			}, nil)

		mockWalletRepo.EXPECT().FindWalletByOwner(ctx, agentID).Return(wallet, nil)
		mockWalletRepo.EXPECT().CreditWallet(ctx, wallet.ID, 75.0).Return(nil)

		mockWalletRepo.EXPECT().
			AppendTransaction(ctx, mock.AnythingOfType("*entity.WalletTransaction")).
			Run(func(ctx context.Context, txn *entity.WalletTransaction) {
				assert.Equal(t, wallet.ID, txn.WalletID)
				assert.Equal(t, entity.TransactionCredit, txn.Kind)
				assert.InDelta(t, 75.0, txn.Amount, 0.001)
				assert.Contains(t, txn.Description, collab.Code)
			}).
			Return(nil)

		mockCollabRepo.EXPECT().
			MarkCollabPaid(ctx, collab.ID, operatorID, mock.AnythingOfType("time.Time")).
			Return(nil)
	})

	fx.publisher.EXPECT().
		PublishPrimeEvent(ctx, mock.AnythingOfType("*service.PrimeEvent")).
		Run(func(ctx context.Context, event *service.PrimeEvent) {
			assert.Equal(t, service.EventMarginSettled, event.Type)
			assert.Equal(t, collab.Code, event.CollabCode)
			assert.InDelta(t, 75.0, event.Amount, 0.001)
		}).
		Return(nil)

	result, err := fx.service.Settle(ctx, collab.ID, operatorID, false)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, collab.ID, result.CollabID)
	assert.InDelta(t, 75.0, result.AmountCredited, 0.001)
	assert.Empty(t, result.Warning)
}

func TestSettlementService_Settle_CreatesWalletOnFirstPayout(t *testing.T) {
	fx := createTestSettlementService(t)

	ctx := context.Background()
	agentID := uuid.New()
	operatorID := uuid.New()
	collab := pendingCollab(&agentID)
	coupon := &entity.Coupon{
		ID:          collab.CouponID,
		AgentMargin: entity.DiscountPolicy{Kind: entity.PolicyAmount, Value: 50},
	}

	fx.collabRepo.EXPECT().FindCollabByID(ctx, collab.ID).Return(collab, nil)
	fx.couponRepo.EXPECT().FindCouponByID(ctx, collab.CouponID).Return(coupon, nil)

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUsageRepo := mockRepo.NewMockUsageRepository(t)
		mockWalletRepo := mockRepo.NewMockWalletRepository(t)
		mockCollabRepo := mockRepo.NewMockCollabRepository(t)

		factory.EXPECT().NewUsageRepository().Return(mockUsageRepo)
		factory.EXPECT().NewWalletRepository().Return(mockWalletRepo)
		factory.EXPECT().NewCollabRepository().Return(mockCollabRepo)

		// Never redeemed: the flat margin value is owed.
		mockUsageRepo.EXPECT().
			ListUsagesByCollab(ctx, collab.ID).
			Return([]*entity.CouponUsage{}, nil)

		mockWalletRepo.EXPECT().
			FindWalletByOwner(ctx, agentID).
			Return(nil, repository.ErrWalletNotFound)

		mockWalletRepo.EXPECT().
			CreateWallet(ctx, mock.AnythingOfType("*entity.Wallet")).
			Run(func(ctx context.Context, wallet *entity.Wallet) {
				wallet.ID = uuid.New()
				assert.Equal(t, agentID, wallet.OwnerID)
				assert.InDelta(t, 50.0, wallet.Balance, 0.001)
			}).
			Return(nil)

		mockWalletRepo.EXPECT().
			AppendTransaction(ctx, mock.AnythingOfType("*entity.WalletTransaction")).
			Return(nil)

		mockCollabRepo.EXPECT().
			MarkCollabPaid(ctx, collab.ID, operatorID, mock.AnythingOfType("time.Time")).
			Return(nil)
	})

	fx.publisher.EXPECT().
		PublishPrimeEvent(ctx, mock.AnythingOfType("*service.PrimeEvent")).
		Return(nil)

	result, err := fx.service.Settle(ctx, collab.ID, operatorID, false)

	require.NoError(t, err)
	assert.InDelta(t, 50.0, result.AmountCredited, 0.001)
}

func TestSettlementService_Settle_AlreadyPaid(t *testing.T) {
	fx := createTestSettlementService(t)

	ctx := context.Background()
	agentID := uuid.New()
	collab := pendingCollab(&agentID)
	collab.MarginStatus = entity.MarginPaid

	fx.collabRepo.EXPECT().FindCollabByID(ctx, collab.ID).Return(collab, nil)

	result, err := fx.service.Settle(ctx, collab.ID, uuid.New(), false)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrCollabAlreadyPaid))
}

func TestSettlementService_Settle_UnlinkedAgentRefused(t *testing.T) {
	fx := createTestSettlementService(t)

	ctx := context.Background()
	collab := pendingCollab(nil)

	fx.collabRepo.EXPECT().FindCollabByID(ctx, collab.ID).Return(collab, nil)

	result, err := fx.service.Settle(ctx, collab.ID, uuid.New(), false)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrUnlinkedAgent))
}

func TestSettlementService_Settle_UnlinkedAgentOverride(t *testing.T) {
	fx := createTestSettlementService(t)

	ctx := context.Background()
	operatorID := uuid.New()
	collab := pendingCollab(nil)
	coupon := &entity.Coupon{
		ID:          collab.CouponID,
		AgentMargin: entity.DiscountPolicy{Kind: entity.PolicyAmount, Value: 50},
	}

	fx.collabRepo.EXPECT().FindCollabByID(ctx, collab.ID).Return(collab, nil)
	fx.couponRepo.EXPECT().FindCouponByID(ctx, collab.CouponID).Return(coupon, nil)

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUsageRepo := mockRepo.NewMockUsageRepository(t)
		mockCollabRepo := mockRepo.NewMockCollabRepository(t)

		factory.EXPECT().NewUsageRepository().Return(mockUsageRepo)
		factory.EXPECT().NewCollabRepository().Return(mockCollabRepo)

		mockUsageRepo.EXPECT().
			ListUsagesByCollab(ctx, collab.ID).
			Return([]*entity.CouponUsage{}, nil)

		// No wallet calls: the status flips without a credit.
		mockCollabRepo.EXPECT().
			MarkCollabPaid(ctx, collab.ID, operatorID, mock.AnythingOfType("time.Time")).
			Return(nil)
	})

	fx.publisher.EXPECT().
		PublishPrimeEvent(ctx, mock.AnythingOfType("*service.PrimeEvent")).
		Return(nil)

	result, err := fx.service.Settle(ctx, collab.ID, operatorID, true)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Zero(t, result.AmountCredited)
	assert.NotEmpty(t, result.Warning)
}

func TestSettlementService_Settle_LostRaceMapsToAlreadyPaid(t *testing.T) {
	fx := createTestSettlementService(t)

	ctx := context.Background()
	agentID := uuid.New()
	operatorID := uuid.New()
	collab := pendingCollab(&agentID)
	coupon := &entity.Coupon{
		ID:          collab.CouponID,
		AgentMargin: entity.DiscountPolicy{Kind: entity.PolicyAmount, Value: 50},
	}
	wallet := &entity.Wallet{ID: uuid.New(), OwnerID: agentID}

	fx.collabRepo.EXPECT().FindCollabByID(ctx, collab.ID).Return(collab, nil)
	fx.couponRepo.EXPECT().FindCouponByID(ctx, collab.CouponID).Return(coupon, nil)

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUsageRepo := mockRepo.NewMockUsageRepository(t)
		mockWalletRepo := mockRepo.NewMockWalletRepository(t)
		mockCollabRepo := mockRepo.NewMockCollabRepository(t)

		factory.EXPECT().NewUsageRepository().Return(mockUsageRepo)
		factory.EXPECT().NewWalletRepository().Return(mockWalletRepo)
		factory.EXPECT().NewCollabRepository().Return(mockCollabRepo)

		mockUsageRepo.EXPECT().
			ListUsagesByCollab(ctx, collab.ID).
			Return([]*entity.CouponUsage{}, nil)

		mockWalletRepo.EXPECT().FindWalletByOwner(ctx, agentID).Return(wallet, nil)
		mockWalletRepo.EXPECT().CreditWallet(ctx, wallet.ID, 50.0).Return(nil)
		mockWalletRepo.EXPECT().
			AppendTransaction(ctx, mock.AnythingOfType("*entity.WalletTransaction")).
			Return(nil)

		// A concurrent settlement flipped the status first.
		mockCollabRepo.EXPECT().
			MarkCollabPaid(ctx, collab.ID, operatorID, mock.AnythingOfType("time.Time")).
			Return(repository.ErrCollabNotPending)
	})

	result, err := fx.service.Settle(ctx, collab.ID, operatorID, false)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrCollabAlreadyPaid))
}

func TestSettlementService_Settle_CollabNotFound(t *testing.T) {
	fx := createTestSettlementService(t)

	ctx := context.Background()
	collabID := uuid.New()

	fx.collabRepo.EXPECT().
		FindCollabByID(ctx, collabID).
		Return(nil, repository.ErrCollabNotFound)

	result, err := fx.service.Settle(ctx, collabID, uuid.New(), false)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrCollabNotFound))
}
