// Package usecase defines the application's use case interfaces.
package usecase

import (
	"context"

	"pennyekart/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCouponInput carries the fields a seller submits to create a coupon.
type CreateCouponInput struct {
	SellerID         uuid.UUID
	ProductID        uuid.UUID
	Code             string
	CustomerDiscount entity.DiscountPolicy
	AgentMargin      entity.DiscountPolicy
}

// CouponUsecase defines the interface for coupon management use cases
type CouponUsecase interface {
	// CreateCoupon validates and persists a new coupon for a seller's product
	CreateCoupon(ctx context.Context, input *CreateCouponInput) (*entity.Coupon, error)

	// ListActiveCoupons retrieves the storefront view of all active coupons
	ListActiveCoupons(ctx context.Context) ([]*entity.CouponListing, error)

	// ListSellerCoupons retrieves all coupons belonging to one seller
	ListSellerCoupons(ctx context.Context, sellerID uuid.UUID) ([]*entity.CouponListing, error)

	// ToggleCouponActive flips the active flag of a coupon
	ToggleCouponActive(ctx context.Context, id uuid.UUID, isActive bool) error

	// DeleteCoupon soft-deletes a coupon; collabs and usage history survive
	DeleteCoupon(ctx context.Context, id uuid.UUID) error
}
