package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SettlementResult describes the outcome of settling one collaboration.
type SettlementResult struct {
	CollabID       uuid.UUID `json:"collab_id"`
	AmountCredited float64   `json:"amount_credited"`
	Warning        string    `json:"warning,omitempty"`
}

// SettlementUsecase defines the interface for margin settlement use cases
type SettlementUsecase interface {
	// Settle pays out a pending collaboration's margin to the agent wallet and
	// flips the margin status to paid, atomically. A collaboration with no
	// linked agent account is refused unless allowUnlinked is set, in which
	// case the status flips without a wallet credit and a warning is returned.
	Settle(ctx context.Context, collabID, operatorID uuid.UUID, allowUnlinked bool) (*SettlementResult, error)
}
