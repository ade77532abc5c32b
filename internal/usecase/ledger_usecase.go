package usecase

import (
	"context"

	"pennyekart/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordUsageInput carries the fields the checkout flow reports when a collab
// code is redeemed on an order.
type RecordUsageInput struct {
	CollabCode     string
	OrderID        *uuid.UUID
	OrderItemPrice float64
}

// RecordUsageResult carries the frozen usage row plus the customer discount
// the checkout flow should apply to the order item.
type RecordUsageResult struct {
	Usage            *entity.CouponUsage `json:"usage"`
	CustomerDiscount float64             `json:"customer_discount"`
}

// LedgerUsecase defines the interface for the coupon usage ledger
type LedgerUsecase interface {
	// RecordUsage appends a redemption row for a collab code. The agent margin
	// is computed from the coupon's live policy and frozen into the row.
	RecordUsage(ctx context.Context, input *RecordUsageInput) (*RecordUsageResult, error)

	// ListCollabUsages retrieves all redemptions of one collaboration
	ListCollabUsages(ctx context.Context, collabID uuid.UUID) ([]*entity.CouponUsage, error)
}
