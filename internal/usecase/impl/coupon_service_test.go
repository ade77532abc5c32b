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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// couponServiceFixtures holds all test dependencies for coupon service tests.
type couponServiceFixtures struct {
	service     usecase.CouponUsecase
	couponRepo  *mockRepo.MockCouponRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestCouponService(t *testing.T) couponServiceFixtures {
	couponRepo := mockRepo.NewMockCouponRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewCouponService(CouponServiceParams{
		CouponRepo:  couponRepo,
		ProductRepo: productRepo,
	})

	return couponServiceFixtures{
		service:     service,
		couponRepo:  couponRepo,
		productRepo: productRepo,
	}
}

func approvedProduct(sellerID uuid.UUID) *entity.Product {
	return &entity.Product{
		ID:         uuid.New(),
		SellerID:   sellerID,
		Name:       "Wireless Earbuds",
		Price:      1299,
		MRP:        1999,
		IsApproved: true,
		IsActive:   true,
	}
}

func TestCouponService_CreateCoupon_Success(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	product := approvedProduct(sellerID)
	input := &usecase.CreateCouponInput{
		SellerID:         sellerID,
		ProductID:        product.ID,
		Code:             "  joystore20 ",
		CustomerDiscount: entity.DiscountPolicy{Kind: entity.PolicyPercent, Value: 20},
		AgentMargin:      entity.DiscountPolicy{Kind: entity.PolicyAmount, Value: 50},
	}

	fx.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)

	fx.couponRepo.EXPECT().
		CreateCoupon(ctx, mock.AnythingOfType("*entity.Coupon")).
		Run(func(ctx context.Context, coupon *entity.Coupon) {
			coupon.ID = uuid.New()
		}).
		Return(nil)

	coupon, err := fx.service.CreateCoupon(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, coupon)
	assert.Equal(t, "JOYSTORE20", coupon.Code)
	assert.Equal(t, sellerID, coupon.SellerID)
	assert.Equal(t, product.ID, coupon.ProductID)
	assert.True(t, coupon.IsActive)
}

func TestCouponService_CreateCoupon_BlankCode(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	input := &usecase.CreateCouponInput{
		SellerID:         uuid.New(),
		ProductID:        uuid.New(),
		Code:             "   ",
		CustomerDiscount: entity.DiscountPolicy{Kind: entity.PolicyPercent, Value: 20},
		AgentMargin:      entity.DiscountPolicy{Kind: entity.PolicyAmount, Value: 50},
	}

	coupon, err := fx.service.CreateCoupon(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, coupon)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCouponService_CreateCoupon_PercentMarginOutOfBounds(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	input := &usecase.CreateCouponInput{
		SellerID:         uuid.New(),
		ProductID:        uuid.New(),
		Code:             "JOYSTORE20",
		CustomerDiscount: entity.DiscountPolicy{Kind: entity.PolicyPercent, Value: 20},
		AgentMargin:      entity.DiscountPolicy{Kind: entity.PolicyPercent, Value: 150},
	}

	coupon, err := fx.service.CreateCoupon(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, coupon)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCouponService_CreateCoupon_ProductOwnershipViolation(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	product := approvedProduct(uuid.New())
	input := &usecase.CreateCouponInput{
		SellerID:         uuid.New(), // Not the product's seller.
		ProductID:        product.ID,
		Code:             "JOYSTORE20",
		CustomerDiscount: entity.DiscountPolicy{Kind: entity.PolicyPercent, Value: 20},
		AgentMargin:      entity.DiscountPolicy{Kind: entity.PolicyAmount, Value: 50},
	}

	fx.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)

	coupon, err := fx.service.CreateCoupon(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, coupon)
	assert.True(t, errors.Is(err, domainerrors.ErrProductOwnership))
}

func TestCouponService_CreateCoupon_ProductNotSellable(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	product := approvedProduct(sellerID)
	product.IsApproved = false
	input := &usecase.CreateCouponInput{
		SellerID:         sellerID,
		ProductID:        product.ID,
		Code:             "JOYSTORE20",
		CustomerDiscount: entity.DiscountPolicy{Kind: entity.PolicyPercent, Value: 20},
		AgentMargin:      entity.DiscountPolicy{Kind: entity.PolicyAmount, Value: 50},
	}

	fx.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)

	coupon, err := fx.service.CreateCoupon(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, coupon)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotSellable))
}

func TestCouponService_CreateCoupon_DuplicateCode(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	product := approvedProduct(sellerID)
	input := &usecase.CreateCouponInput{
		SellerID:         sellerID,
		ProductID:        product.ID,
		Code:             "JOYSTORE20",
		CustomerDiscount: entity.DiscountPolicy{Kind: entity.PolicyPercent, Value: 20},
		AgentMargin:      entity.DiscountPolicy{Kind: entity.PolicyAmount, Value: 50},
	}

	fx.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	fx.couponRepo.EXPECT().
		CreateCoupon(ctx, mock.AnythingOfType("*entity.Coupon")).
		Return(repository.ErrDuplicateCouponCode)

	coupon, err := fx.service.CreateCoupon(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, coupon)
	assert.True(t, errors.Is(err, domainerrors.ErrCouponCodeExists))
}

func TestCouponService_ToggleCouponActive_NotFound(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	couponID := uuid.New()

	fx.couponRepo.EXPECT().
		UpdateCouponActive(ctx, couponID, false).
		Return(repository.ErrCouponNotFound)

	err := fx.service.ToggleCouponActive(ctx, couponID, false)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCouponNotFound))
}

func TestCouponService_DeleteCoupon_Success(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	couponID := uuid.New()

	fx.couponRepo.EXPECT().DeleteCoupon(ctx, couponID).Return(nil)

	err := fx.service.DeleteCoupon(ctx, couponID)

	require.NoError(t, err)
}

func TestCouponService_ListActiveCoupons_Success(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	listings := []*entity.CouponListing{
		{
			Coupon:      entity.Coupon{ID: uuid.New(), Code: "JOYSTORE20", IsActive: true},
			ProductName: "Wireless Earbuds",
			SellerName:  "Joy Store",
		},
	}

	fx.couponRepo.EXPECT().ListActiveCoupons(ctx).Return(listings, nil)

	result, err := fx.service.ListActiveCoupons(ctx)

	require.NoError(t, err)
	assert.Equal(t, listings, result)
}
