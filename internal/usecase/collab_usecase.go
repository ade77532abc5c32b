package usecase

import (
	"context"

	"pennyekart/internal/domain/entity"

	"github.com/google/uuid"
)

// RequestCollabInput carries the fields an agent submits to mint a collab code.
type RequestCollabInput struct {
	CouponCode  string
	AgentMobile string
	AgentUserID *uuid.UUID // Nil when the agent has no account yet.
}

// CollabOverview aggregates payout state across all collaborations for the
// admin dashboard.
type CollabOverview struct {
	TotalCollabs    int     `json:"total_collabs"`
	PendingCollabs  int     `json:"pending_collabs"`
	PaidCollabs     int     `json:"paid_collabs"`
	TotalMarginOwed float64 `json:"total_margin_owed"`
	TotalMarginPaid float64 `json:"total_margin_paid"`
}

// CollabUsecase defines the interface for collaboration minting and listing use cases
type CollabUsecase interface {
	// RequestCollab mints an agent's personal collab code for a coupon.
	// Minting is idempotent: the same coupon and mobile always resolve to the
	// same collaboration, whether it already exists or is created here.
	RequestCollab(ctx context.Context, input *RequestCollabInput) (*entity.Collaboration, error)

	// GenerateCollabQR generates a shareable QR code image for a collab code
	GenerateCollabQR(ctx context.Context, collabCode string) ([]byte, error)

	// ListCollabs retrieves enriched collaborations, optionally filtered by margin status
	ListCollabs(ctx context.Context, status *entity.MarginStatus) ([]*entity.CollabDetail, error)

	// Overview aggregates collaboration counts and owed/paid margin totals
	Overview(ctx context.Context) (*CollabOverview, error)
}
