package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

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

const unlinkedSettlementWarning = "no linked agent account; margin marked paid without wallet credit"

type settlementService struct {
	collabRepo     repository.CollabRepository
	couponRepo     repository.CouponRepository
	txManager      repository.TransactionManager
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// SettlementServiceParams holds dependencies for SettlementService, injected by Fx.
type SettlementServiceParams struct {
	fx.In

	CollabRepo     repository.CollabRepository
	CouponRepo     repository.CouponRepository
	TxManager      repository.TransactionManager
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewSettlementService creates a new settlement service instance
func NewSettlementService(params SettlementServiceParams) usecase.SettlementUsecase {
	return &settlementService{
		collabRepo:     params.CollabRepo,
		couponRepo:     params.CouponRepo,
		txManager:      params.TxManager,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

// Settle pays out a pending collaboration's margin. The wallet credit, the
// transaction log entry and the status flip commit or roll back together. The
// conditional status flip inside the transaction is what makes concurrent
// settlements of the same collab safe: the loser sees zero affected rows.
func (s *settlementService) Settle(ctx context.Context, collabID, operatorID uuid.UUID, allowUnlinked bool) (*usecase.SettlementResult, error) {
	collab, err := s.collabRepo.FindCollabByID(ctx, collabID)
	if err != nil {
		if errors.Is(err, repository.ErrCollabNotFound) {
			return nil, domainerrors.ErrCollabNotFound
		}

		return nil, errors.Wrap(err, "failed to find collaboration")
	}

	if collab.MarginStatus == entity.MarginPaid {
		return nil, domainerrors.ErrCollabAlreadyPaid
	}

	if collab.AgentUserID == nil && !allowUnlinked {
		return nil, domainerrors.ErrUnlinkedAgent
	}

	coupon, err := s.couponRepo.FindCouponByID(ctx, collab.CouponID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find coupon for settlement")
	}

	result := &usecase.SettlementResult{CollabID: collab.ID}

	txErr := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		amount, err := s.resolveOwedAmount(ctx, factory, collab.ID, coupon.AgentMargin)
		if err != nil {
			return err
		}

		if collab.AgentUserID != nil {
			if err := s.creditAgentWallet(ctx, factory, collab, amount); err != nil {
				return err
			}
			result.AmountCredited = amount
		} else {
			result.Warning = unlinkedSettlementWarning
		}

		if err := factory.NewCollabRepository().MarkCollabPaid(ctx, collab.ID, operatorID, time.Now()); err != nil {
			return err
		}

		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, repository.ErrCollabNotPending) {
			return nil, domainerrors.ErrCollabAlreadyPaid
		}
		if errors.Is(txErr, repository.ErrCollabNotFound) {
			return nil, domainerrors.ErrCollabNotFound
		}

		return nil, domainerrors.ErrSettlementFailed.WrapMessage(txErr.Error())
	}

	s.publishSettlementEvent(ctx, collab, result.AmountCredited)

	return result, nil
}

// resolveOwedAmount sums the frozen per-usage margins inside the transaction.
// A never-redeemed collab falls back to the coupon's flat margin value.
func (s *settlementService) resolveOwedAmount(ctx context.Context, factory repository.RepositoryFactory, collabID uuid.UUID, margin entity.DiscountPolicy) (float64, error) {
	usages, err := factory.NewUsageRepository().ListUsagesByCollab(ctx, collabID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list usages for settlement")
	}

	if len(usages) == 0 {
		return margin.Value, nil
	}

	var total float64
	for _, usage := range usages {
		total += usage.MarginAmount
	}

	return total, nil
}

// creditAgentWallet credits the margin to the agent's wallet, creating the
// wallet on first settlement, and appends the audit log entry.
func (s *settlementService) creditAgentWallet(ctx context.Context, factory repository.RepositoryFactory, collab *entity.Collaboration, amount float64) error {
	walletRepo := factory.NewWalletRepository()

	wallet, err := walletRepo.FindWalletByOwner(ctx, *collab.AgentUserID)
	if err != nil {
		if !errors.Is(err, repository.ErrWalletNotFound) {
			return errors.Wrap(err, "failed to find agent wallet")
		}

		wallet = &entity.Wallet{
			OwnerID: *collab.AgentUserID,
			Balance: amount,
		}
		if err := walletRepo.CreateWallet(ctx, wallet); err != nil {
			return errors.Wrap(err, "failed to create agent wallet")
		}
	} else {
		if err := walletRepo.CreditWallet(ctx, wallet.ID, amount); err != nil {
			return errors.Wrap(err, "failed to credit agent wallet")
		}
	}

	txn := &entity.WalletTransaction{
		WalletID:    wallet.ID,
		OwnerID:     wallet.OwnerID,
		Kind:        entity.TransactionCredit,
		Amount:      amount,
		Description: fmt.Sprintf("Penny Prime agent margin for code: %s", collab.Code),
	}
	if err := walletRepo.AppendTransaction(ctx, txn); err != nil {
		return errors.Wrap(err, "failed to append wallet transaction")
	}

	return nil
}

// publishSettlementEvent notifies downstream consumers that a margin was paid.
// Publishing is best effort: the settlement is already committed.
func (s *settlementService) publishSettlementEvent(ctx context.Context, collab *entity.Collaboration, amount float64) {
	event := &service.PrimeEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       service.EventMarginSettled,
		CollabID:   collab.ID.String(),
		CollabCode: collab.Code,
		Amount:     amount,
	}
	if collab.AgentUserID != nil {
		event.AgentUserID = collab.AgentUserID.String()
	}

	if err := s.eventPublisher.PublishPrimeEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish margin settlement event",
			slog.String("collab_code", collab.Code),
			slog.String("error", err.Error()),
		)
	}
}
