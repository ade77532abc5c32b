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

// ledgerServiceFixtures holds all test dependencies for ledger service tests.
type ledgerServiceFixtures struct {
	service    usecase.LedgerUsecase
	collabRepo *mockRepo.MockCollabRepository
	couponRepo *mockRepo.MockCouponRepository
	usageRepo  *mockRepo.MockUsageRepository
	publisher  *mockSvc.MockEventPublisher
}

func createTestLedgerService(t *testing.T) ledgerServiceFixtures {
	collabRepo := mockRepo.NewMockCollabRepository(t)
	couponRepo := mockRepo.NewMockCouponRepository(t)
	usageRepo := mockRepo.NewMockUsageRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewLedgerService(LedgerServiceParams{
		CollabRepo:     collabRepo,
		CouponRepo:     couponRepo,
		UsageRepo:      usageRepo,
		EventPublisher: publisher,
		Logger:         logger,
	})

	return ledgerServiceFixtures{
		service:    service,
		collabRepo: collabRepo,
		couponRepo: couponRepo,
		usageRepo:  usageRepo,
		publisher:  publisher,
	}
}

func TestLedgerService_RecordUsage_FreezesPercentMargin(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()
	collab := &entity.Collaboration{
		ID:       uuid.New(),
		CouponID: uuid.New(),
		Code:     "JOYSTORE20-9810",
	}
	coupon := &entity.Coupon{
		ID:               collab.CouponID,
		IsActive:         true,
		CustomerDiscount: entity.DiscountPolicy{Kind: entity.PolicyPercent, Value: 20},
		AgentMargin:      entity.DiscountPolicy{Kind: entity.PolicyPercent, Value: 10},
	}
	orderID := uuid.New()
	input := &usecase.RecordUsageInput{
		CollabCode:     "JOYSTORE20-9810",
		OrderID:        &orderID,
		OrderItemPrice: 1299,
	}

	fx.collabRepo.EXPECT().FindCollabByCode(ctx, input.CollabCode).Return(collab, nil)
	fx.couponRepo.EXPECT().FindCouponByID(ctx, collab.CouponID).Return(coupon, nil)

	fx.usageRepo.EXPECT().
		CreateUsage(ctx, mock.AnythingOfType("*entity.CouponUsage")).
		Run(func(ctx context.Context, usage *entity.CouponUsage) {
			usage.ID = uuid.New()
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishPrimeEvent(ctx, mock.AnythingOfType("*service.PrimeEvent")).
		Run(func(ctx context.Context, event *service.PrimeEvent) {
			assert.Equal(t, service.EventCouponUsed, event.Type)
			assert.Equal(t, collab.Code, event.CollabCode)
		}).
		Return(nil)

	result, err := fx.service.RecordUsage(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, collab.ID, result.Usage.CollaborationID)
	assert.Equal(t, &orderID, result.Usage.OrderID)
	assert.InDelta(t, 129.9, result.Usage.MarginAmount, 0.001)
	assert.InDelta(t, 259.8, result.CustomerDiscount, 0.001)
}

func TestLedgerService_RecordUsage_FlatMarginIgnoresPrice(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()
	collab := &entity.Collaboration{
		ID:       uuid.New(),
		CouponID: uuid.New(),
		Code:     "JOYSTORE20-9810",
	}
	coupon := &entity.Coupon{
		ID:               collab.CouponID,
		IsActive:         true,
		CustomerDiscount: entity.DiscountPolicy{Kind: entity.PolicyAmount, Value: 100},
		AgentMargin:      entity.DiscountPolicy{Kind: entity.PolicyAmount, Value: 50},
	}
	input := &usecase.RecordUsageInput{
		CollabCode:     "JOYSTORE20-9810",
		OrderItemPrice: 9999,
	}

	fx.collabRepo.EXPECT().FindCollabByCode(ctx, input.CollabCode).Return(collab, nil)
	fx.couponRepo.EXPECT().FindCouponByID(ctx, collab.CouponID).Return(coupon, nil)
	fx.usageRepo.EXPECT().
		CreateUsage(ctx, mock.AnythingOfType("*entity.CouponUsage")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishPrimeEvent(ctx, mock.AnythingOfType("*service.PrimeEvent")).
		Return(nil)

	result, err := fx.service.RecordUsage(ctx, input)

	require.NoError(t, err)
	assert.InDelta(t, 50.0, result.Usage.MarginAmount, 0.001)
	assert.InDelta(t, 100.0, result.CustomerDiscount, 0.001)
}

func TestLedgerService_RecordUsage_CollabNotFound(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()
	input := &usecase.RecordUsageInput{CollabCode: "MISSING-0000"}

	fx.collabRepo.EXPECT().
		FindCollabByCode(ctx, "MISSING-0000").
		Return(nil, repository.ErrCollabNotFound)

	result, err := fx.service.RecordUsage(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrCollabNotFound))
}

func TestLedgerService_RecordUsage_CouponInactive(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()
	collab := &entity.Collaboration{
		ID:       uuid.New(),
		CouponID: uuid.New(),
		Code:     "JOYSTORE20-9810",
	}
	coupon := &entity.Coupon{
		ID:       collab.CouponID,
		IsActive: false,
	}
	input := &usecase.RecordUsageInput{CollabCode: "JOYSTORE20-9810"}

	fx.collabRepo.EXPECT().FindCollabByCode(ctx, input.CollabCode).Return(collab, nil)
	fx.couponRepo.EXPECT().FindCouponByID(ctx, collab.CouponID).Return(coupon, nil)

	result, err := fx.service.RecordUsage(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrCouponInactive))
}

func TestLedgerService_RecordUsage_PublishFailureDoesNotFail(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()
	collab := &entity.Collaboration{
		ID:       uuid.New(),
		CouponID: uuid.New(),
		Code:     "JOYSTORE20-9810",
	}
	coupon := &entity.Coupon{
		ID:          collab.CouponID,
		IsActive:    true,
		AgentMargin: entity.DiscountPolicy{Kind: entity.PolicyAmount, Value: 50},
	}
	input := &usecase.RecordUsageInput{CollabCode: "JOYSTORE20-9810"}

	fx.collabRepo.EXPECT().FindCollabByCode(ctx, input.CollabCode).Return(collab, nil)
	fx.couponRepo.EXPECT().FindCouponByID(ctx, collab.CouponID).Return(coupon, nil)
	fx.usageRepo.EXPECT().
		CreateUsage(ctx, mock.AnythingOfType("*entity.CouponUsage")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishPrimeEvent(ctx, mock.AnythingOfType("*service.PrimeEvent")).
		Return(errors.New("broker unavailable"))

	result, err := fx.service.RecordUsage(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestLedgerService_ListCollabUsages_Success(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()
	collabID := uuid.New()
	usages := []*entity.CouponUsage{
		{ID: uuid.New(), CollaborationID: collabID, MarginAmount: 30},
		{ID: uuid.New(), CollaborationID: collabID, MarginAmount: 45},
	}

	fx.usageRepo.EXPECT().ListUsagesByCollab(ctx, collabID).Return(usages, nil)

	result, err := fx.service.ListCollabUsages(ctx, collabID)

	require.NoError(t, err)
	assert.Equal(t, usages, result)
}
