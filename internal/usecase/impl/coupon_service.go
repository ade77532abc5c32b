// Package impl contains the concrete implementations of the use case interfaces.
package impl

import (
	"context"
	"strings"

	"pennyekart/internal/domain/entity"
	domainerrors "pennyekart/internal/domain/errors"
	"pennyekart/internal/domain/repository"
	"pennyekart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type couponService struct {
	couponRepo  repository.CouponRepository
	productRepo repository.ProductRepository
}

// CouponServiceParams holds dependencies for CouponService, injected by Fx.
type CouponServiceParams struct {
	fx.In

	CouponRepo  repository.CouponRepository
	ProductRepo repository.ProductRepository
}

// NewCouponService creates a new coupon service instance
func NewCouponService(params CouponServiceParams) usecase.CouponUsecase {
	return &couponService{
		couponRepo:  params.CouponRepo,
		productRepo: params.ProductRepo,
	}
}

// CreateCoupon validates and persists a new coupon for a seller's product
func (s *couponService) CreateCoupon(ctx context.Context, input *usecase.CreateCouponInput) (*entity.Coupon, error) {
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if code == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("coupon code is required")
	}
	if !input.CustomerDiscount.Validate() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("customer discount value is out of bounds")
	}
	if !input.AgentMargin.Validate() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("agent margin value is out of bounds")
	}

	product, err := s.productRepo.FindProductByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product for coupon")
	}

	if product.SellerID != input.SellerID {
		return nil, domainerrors.ErrProductOwnership
	}
	if !product.Sellable() {
		return nil, domainerrors.ErrProductNotSellable
	}

	coupon := &entity.Coupon{
		SellerID:         input.SellerID,
		ProductID:        input.ProductID,
		Code:             code,
		CustomerDiscount: input.CustomerDiscount,
		AgentMargin:      input.AgentMargin,
		IsActive:         true,
	}

	if err := s.couponRepo.CreateCoupon(ctx, coupon); err != nil {
		if errors.Is(err, repository.ErrDuplicateCouponCode) {
			return nil, domainerrors.ErrCouponCodeExists
		}

		return nil, errors.Wrap(err, "failed to create coupon")
	}

	return coupon, nil
}

// ListActiveCoupons retrieves the storefront view of all active coupons
func (s *couponService) ListActiveCoupons(ctx context.Context) ([]*entity.CouponListing, error) {
	listings, err := s.couponRepo.ListActiveCoupons(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active coupons")
	}

	return listings, nil
}

// ListSellerCoupons retrieves all coupons belonging to one seller
func (s *couponService) ListSellerCoupons(ctx context.Context, sellerID uuid.UUID) ([]*entity.CouponListing, error) {
	listings, err := s.couponRepo.ListCouponsBySeller(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller coupons")
	}

	return listings, nil
}

// ToggleCouponActive flips the active flag of a coupon
func (s *couponService) ToggleCouponActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	if err := s.couponRepo.UpdateCouponActive(ctx, id, isActive); err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return domainerrors.ErrCouponNotFound
		}

		return errors.Wrap(err, "failed to toggle coupon active flag")
	}

	return nil
}

// DeleteCoupon soft-deletes a coupon; collabs and usage history survive
func (s *couponService) DeleteCoupon(ctx context.Context, id uuid.UUID) error {
	if err := s.couponRepo.DeleteCoupon(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return domainerrors.ErrCouponNotFound
		}

		return errors.Wrap(err, "failed to delete coupon")
	}

	return nil
}
