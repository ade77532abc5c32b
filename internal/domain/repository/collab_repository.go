package repository

import (
	"context"
	"time"

	"pennyekart/internal/domain/entity"
	"pennyekart/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for collaboration persistence.
var (
	// ErrCollabNotFound is returned when a collaboration is not found.
	ErrCollabNotFound = errors.New("collaboration not found")
	// ErrDuplicateCollabCode is returned when a collab code already exists.
	// Minting treats this as "already minted" and re-fetches the existing row.
	ErrDuplicateCollabCode = errors.New("collab code already exists")
	// ErrCollabNotPending is returned when a conditional status transition
	// finds the collaboration no longer pending.
	ErrCollabNotPending = errors.New("collaboration is not pending")
)

// CollabRepository defines the interface for collaboration-related database operations.
type CollabRepository interface {
	// CreateCollab persists a new collaboration. The collab code column carries
	// a unique index; a violation surfaces as ErrDuplicateCollabCode so the
	// minting service can recover by lookup.
	CreateCollab(ctx context.Context, collab *entity.Collaboration) error

	// FindCollabByID retrieves a collaboration by its unique ID.
	FindCollabByID(ctx context.Context, id uuid.UUID) (*entity.Collaboration, error)

	// FindCollabByCode retrieves a collaboration by its derived collab code.
	FindCollabByCode(ctx context.Context, code string) (*entity.Collaboration, error)

	// ListCollabDetails retrieves collaborations enriched with coupon, product,
	// seller and usage data, newest first. A nil status lists everything.
	ListCollabDetails(ctx context.Context, status *entity.MarginStatus) ([]*entity.CollabDetail, error)

	// MarkCollabPaid flips margin_status from pending to paid, recording the
	// settlement time and operator. The update is conditional on the current
	// status being pending; ErrCollabNotPending is returned otherwise, which is
	// the serialization point for concurrent settlement attempts.
	MarkCollabPaid(ctx context.Context, id uuid.UUID, operatorID uuid.UUID, paidAt time.Time) error
}
