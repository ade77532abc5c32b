package repository

import (
	"context"

	"pennyekart/internal/domain/entity"

	"github.com/google/uuid"
)

// UsageRepository defines the interface for coupon usage ledger operations.
// Usage rows are append-only; nothing in this service mutates or deletes them.
type UsageRepository interface {
	// CreateUsage appends a redemption record with its frozen margin amount.
	CreateUsage(ctx context.Context, usage *entity.CouponUsage) error

	// ListUsagesByCollab retrieves all usages for a collaboration.
	ListUsagesByCollab(ctx context.Context, collabID uuid.UUID) ([]*entity.CouponUsage, error)
}
