package impl

import (
	"context"
	"testing"

	"pennyekart/internal/domain/entity"
	domainerrors "pennyekart/internal/domain/errors"
	"pennyekart/internal/domain/repository"
	mockRepo "pennyekart/internal/mocks/repository"
	mockSvc "pennyekart/internal/mocks/service"
	"pennyekart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// collabServiceFixtures holds all test dependencies for collab service tests.
type collabServiceFixtures struct {
	service    usecase.CollabUsecase
	collabRepo *mockRepo.MockCollabRepository
	couponRepo *mockRepo.MockCouponRepository
	qrService  *mockSvc.MockQRCodeService
}

func createTestCollabService(t *testing.T) collabServiceFixtures {
	collabRepo := mockRepo.NewMockCollabRepository(t)
	couponRepo := mockRepo.NewMockCouponRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)

	service := NewCollabService(CollabServiceParams{
		CollabRepo:    collabRepo,
		CouponRepo:    couponRepo,
		QRCodeService: qrService,
	})

	return collabServiceFixtures{
		service:    service,
		collabRepo: collabRepo,
		couponRepo: couponRepo,
		qrService:  qrService,
	}
}

func TestCollabService_RequestCollab_MintsNewCode(t *testing.T) {
	fx := createTestCollabService(t)

	ctx := context.Background()
	agentID := uuid.New()
	coupon := &entity.Coupon{
		ID:       uuid.New(),
		Code:     "JOYSTORE20",
		IsActive: true,
	}
	input := &usecase.RequestCollabInput{
		CouponCode:  "JOYSTORE20",
		AgentMobile: "98765 43210",
		AgentUserID: &agentID,
	}

	fx.couponRepo.EXPECT().
		FindCouponByCode(ctx, "JOYSTORE20").
		Return(coupon, nil)

	fx.collabRepo.EXPECT().
		FindCollabByCode(ctx, "JOYSTORE20-9810").
		Return(nil, repository.ErrCollabNotFound)

	fx.collabRepo.EXPECT().
		CreateCollab(ctx, mock.AnythingOfType("*entity.Collaboration")).
		Run(func(ctx context.Context, collab *entity.Collaboration) {
			collab.ID = uuid.New()
		}).
		Return(nil)

	collab, err := fx.service.RequestCollab(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, collab)
	assert.Equal(t, "JOYSTORE20-9810", collab.Code)
	assert.Equal(t, "9876543210", collab.AgentMobile)
	assert.Equal(t, coupon.ID, collab.CouponID)
	assert.Equal(t, &agentID, collab.AgentUserID)
	assert.Equal(t, entity.MarginPending, collab.MarginStatus)
}

func TestCollabService_RequestCollab_ReturnsExistingCollab(t *testing.T) {
	fx := createTestCollabService(t)

	ctx := context.Background()
	coupon := &entity.Coupon{
		ID:       uuid.New(),
		Code:     "JOYSTORE20",
		IsActive: true,
	}
	existing := &entity.Collaboration{
		ID:           uuid.New(),
		CouponID:     coupon.ID,
		AgentMobile:  "9876543210",
		Code:         "JOYSTORE20-9810",
		MarginStatus: entity.MarginPending,
	}
	input := &usecase.RequestCollabInput{
		CouponCode:  "JOYSTORE20",
		AgentMobile: "9876543210",
	}

	fx.couponRepo.EXPECT().
		FindCouponByCode(ctx, "JOYSTORE20").
		Return(coupon, nil)

	fx.collabRepo.EXPECT().
		FindCollabByCode(ctx, "JOYSTORE20-9810").
		Return(existing, nil)

	collab, err := fx.service.RequestCollab(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, existing, collab)
}

func TestCollabService_RequestCollab_DuplicateRaceRefetches(t *testing.T) {
	fx := createTestCollabService(t)

	ctx := context.Background()
	coupon := &entity.Coupon{
		ID:       uuid.New(),
		Code:     "JOYSTORE20",
		IsActive: true,
	}
	winner := &entity.Collaboration{
		ID:           uuid.New(),
		CouponID:     coupon.ID,
		AgentMobile:  "9876543210",
		Code:         "JOYSTORE20-9810",
		MarginStatus: entity.MarginPending,
	}
	input := &usecase.RequestCollabInput{
		CouponCode:  "JOYSTORE20",
		AgentMobile: "9876543210",
	}

	fx.couponRepo.EXPECT().
		FindCouponByCode(ctx, "JOYSTORE20").
		Return(coupon, nil)

	fx.collabRepo.EXPECT().
		FindCollabByCode(ctx, "JOYSTORE20-9810").
		Return(nil, repository.ErrCollabNotFound).
		Once()

	fx.collabRepo.EXPECT().
		CreateCollab(ctx, mock.AnythingOfType("*entity.Collaboration")).
		Return(repository.ErrDuplicateCollabCode)

	fx.collabRepo.EXPECT().
		FindCollabByCode(ctx, "JOYSTORE20-9810").
		Return(winner, nil).
		Once()

	collab, err := fx.service.RequestCollab(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, winner, collab)
}

func TestCollabService_RequestCollab_InvalidMobile(t *testing.T) {
	fx := createTestCollabService(t)

	ctx := context.Background()
	input := &usecase.RequestCollabInput{
		CouponCode:  "JOYSTORE20",
		AgentMobile: "12345",
	}

	collab, err := fx.service.RequestCollab(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, collab)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidMobile))
}

func TestCollabService_RequestCollab_CouponNotFound(t *testing.T) {
	fx := createTestCollabService(t)

	ctx := context.Background()
	input := &usecase.RequestCollabInput{
		CouponCode:  "MISSING",
		AgentMobile: "9876543210",
	}

	fx.couponRepo.EXPECT().
		FindCouponByCode(ctx, "MISSING").
		Return(nil, repository.ErrCouponNotFound)

	collab, err := fx.service.RequestCollab(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, collab)
	assert.True(t, errors.Is(err, domainerrors.ErrCouponNotFound))
}

func TestCollabService_RequestCollab_CouponInactive(t *testing.T) {
	fx := createTestCollabService(t)

	ctx := context.Background()
	coupon := &entity.Coupon{
		ID:       uuid.New(),
		Code:     "JOYSTORE20",
		IsActive: false,
	}
	input := &usecase.RequestCollabInput{
		CouponCode:  "JOYSTORE20",
		AgentMobile: "9876543210",
	}

	fx.couponRepo.EXPECT().
		FindCouponByCode(ctx, "JOYSTORE20").
		Return(coupon, nil)

	collab, err := fx.service.RequestCollab(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, collab)
	assert.True(t, errors.Is(err, domainerrors.ErrCouponInactive))
}

func TestCollabService_GenerateCollabQR_Success(t *testing.T) {
	fx := createTestCollabService(t)

	ctx := context.Background()
	collab := &entity.Collaboration{
		ID:   uuid.New(),
		Code: "JOYSTORE20-9810",
	}
	qrBytes := []byte("png-data")

	fx.collabRepo.EXPECT().
		FindCollabByCode(ctx, "JOYSTORE20-9810").
		Return(collab, nil)

	fx.qrService.EXPECT().
		GenerateCollabQR("JOYSTORE20-9810").
		Return(qrBytes, nil)

	result, err := fx.service.GenerateCollabQR(ctx, "JOYSTORE20-9810")

	require.NoError(t, err)
	assert.Equal(t, qrBytes, result)
}

func TestCollabService_GenerateCollabQR_NotFound(t *testing.T) {
	fx := createTestCollabService(t)

	ctx := context.Background()

	fx.collabRepo.EXPECT().
		FindCollabByCode(ctx, "MISSING-0000").
		Return(nil, repository.ErrCollabNotFound)

	result, err := fx.service.GenerateCollabQR(ctx, "MISSING-0000")

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrCollabNotFound))
}

func TestCollabService_ListCollabs_FiltersByStatus(t *testing.T) {
	fx := createTestCollabService(t)

	ctx := context.Background()
	status := entity.MarginPending
	details := []*entity.CollabDetail{
		{Collaboration: entity.Collaboration{ID: uuid.New(), MarginStatus: entity.MarginPending}},
	}

	fx.collabRepo.EXPECT().
		ListCollabDetails(ctx, &status).
		Return(details, nil)

	result, err := fx.service.ListCollabs(ctx, &status)

	require.NoError(t, err)
	assert.Equal(t, details, result)
}

func TestCollabService_Overview_AggregatesMargins(t *testing.T) {
	fx := createTestCollabService(t)

	ctx := context.Background()
	details := []*entity.CollabDetail{
		{
			Collaboration: entity.Collaboration{MarginStatus: entity.MarginPending},
			AgentMargin:   entity.DiscountPolicy{Kind: entity.PolicyAmount, Value: 50},
			Usages: []*entity.CouponUsage{
				{MarginAmount: 30},
				{MarginAmount: 45},
			},
		},
		{
			Collaboration: entity.Collaboration{MarginStatus: entity.MarginPending},
			AgentMargin:   entity.DiscountPolicy{Kind: entity.PolicyAmount, Value: 50},
		},
		{
			Collaboration: entity.Collaboration{MarginStatus: entity.MarginPaid},
			AgentMargin:   entity.DiscountPolicy{Kind: entity.PolicyAmount, Value: 20},
			Usages: []*entity.CouponUsage{
				{MarginAmount: 60},
			},
		},
	}

	fx.collabRepo.EXPECT().
		ListCollabDetails(ctx, (*entity.MarginStatus)(nil)).
		Return(details, nil)

	overview, err := fx.service.Overview(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, overview.TotalCollabs)
	assert.Equal(t, 2, overview.PendingCollabs)
	assert.Equal(t, 1, overview.PaidCollabs)
	assert.InDelta(t, 125.0, overview.TotalMarginOwed, 0.001)
	assert.InDelta(t, 60.0, overview.TotalMarginPaid, 0.001)
}
