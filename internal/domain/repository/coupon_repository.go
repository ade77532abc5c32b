// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pennyekart/internal/domain/entity"
	"pennyekart/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for coupon persistence.
var (
	// ErrCouponNotFound is returned when a coupon is not found.
	ErrCouponNotFound = errors.New("coupon not found")
	// ErrDuplicateCouponCode is returned when a coupon code already exists.
	ErrDuplicateCouponCode = errors.New("coupon code already exists")
)

// CouponRepository defines the interface for coupon-related database operations.
type CouponRepository interface {
	// CreateCoupon persists a new coupon. The code column carries a unique
	// index; a violation surfaces as ErrDuplicateCouponCode.
	CreateCoupon(ctx context.Context, coupon *entity.Coupon) error

	// FindCouponByID retrieves a coupon by its unique ID. Soft-deleted coupons
	// are still resolvable so settlement of surviving collabs can read the
	// margin policy.
	FindCouponByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error)

	// FindCouponByCode retrieves a live coupon by its code.
	FindCouponByCode(ctx context.Context, code string) (*entity.Coupon, error)

	// ListActiveCoupons retrieves all active coupons enriched with product and
	// seller display data, newest first.
	ListActiveCoupons(ctx context.Context) ([]*entity.CouponListing, error)

	// ListCouponsBySeller retrieves all of a seller's coupons, newest first.
	ListCouponsBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.CouponListing, error)

	// UpdateCouponActive updates the active flag of a coupon.
	UpdateCouponActive(ctx context.Context, id uuid.UUID, isActive bool) error

	// DeleteCoupon removes a coupon by its ID (soft delete). Collaborations and
	// usages referencing the coupon are intentionally left untouched.
	DeleteCoupon(ctx context.Context, id uuid.UUID) error
}
