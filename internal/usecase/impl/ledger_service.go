package impl

import (
	"context"
	"log/slog"

	deliverycontext "pennyekart/internal/delivery/context"
	"pennyekart/internal/domain/entity"
	domainerrors "pennyekart/internal/domain/errors"
	"pennyekart/internal/domain/repository"
	"pennyekart/internal/domain/service"
	"pennyekart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type ledgerService struct {
	collabRepo     repository.CollabRepository
	couponRepo     repository.CouponRepository
	usageRepo      repository.UsageRepository
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// LedgerServiceParams holds dependencies for LedgerService, injected by Fx.
type LedgerServiceParams struct {
	fx.In

	CollabRepo     repository.CollabRepository
	CouponRepo     repository.CouponRepository
	UsageRepo      repository.UsageRepository
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewLedgerService creates a new usage ledger service instance
func NewLedgerService(params LedgerServiceParams) usecase.LedgerUsecase {
	return &ledgerService{
		collabRepo:     params.CollabRepo,
		couponRepo:     params.CouponRepo,
		usageRepo:      params.UsageRepo,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

// RecordUsage appends a redemption row for a collab code. The agent margin is
// resolved from the coupon's policy at redemption time and frozen into the row,
// so later policy edits never rewrite history.
func (s *ledgerService) RecordUsage(ctx context.Context, input *usecase.RecordUsageInput) (*usecase.RecordUsageResult, error) {
	collab, err := s.collabRepo.FindCollabByCode(ctx, input.CollabCode)
	if err != nil {
		if errors.Is(err, repository.ErrCollabNotFound) {
			return nil, domainerrors.ErrCollabNotFound
		}

		return nil, errors.Wrap(err, "failed to find collaboration by code")
	}

	coupon, err := s.couponRepo.FindCouponByID(ctx, collab.CouponID)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return nil, domainerrors.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon for collaboration")
	}
	if !coupon.IsActive {
		return nil, domainerrors.ErrCouponInactive
	}

	usage := &entity.CouponUsage{
		CollaborationID: collab.ID,
		OrderID:         input.OrderID,
		MarginAmount:    coupon.AgentMargin.AmountFor(input.OrderItemPrice),
	}

	if err := s.usageRepo.CreateUsage(ctx, usage); err != nil {
		return nil, errors.Wrap(err, "failed to record coupon usage")
	}

	s.publishUsageEvent(ctx, collab, usage)

	return &usecase.RecordUsageResult{
		Usage:            usage,
		CustomerDiscount: coupon.CustomerDiscount.AmountFor(input.OrderItemPrice),
	}, nil
}

// ListCollabUsages retrieves all redemptions of one collaboration
func (s *ledgerService) ListCollabUsages(ctx context.Context, collabID uuid.UUID) ([]*entity.CouponUsage, error) {
	usages, err := s.usageRepo.ListUsagesByCollab(ctx, collabID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list collaboration usages")
	}

	return usages, nil
}

// publishUsageEvent notifies downstream consumers of a redemption. Publishing
// is best effort: the usage row is already committed.
func (s *ledgerService) publishUsageEvent(ctx context.Context, collab *entity.Collaboration, usage *entity.CouponUsage) {
	event := &service.PrimeEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       service.EventCouponUsed,
		CollabID:   collab.ID.String(),
		CollabCode: collab.Code,
		Amount:     usage.MarginAmount,
	}
	if collab.AgentUserID != nil {
		event.AgentUserID = collab.AgentUserID.String()
	}

	if err := s.eventPublisher.PublishPrimeEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish coupon usage event",
			slog.String("collab_code", collab.Code),
			slog.String("error", err.Error()),
		)
	}
}
