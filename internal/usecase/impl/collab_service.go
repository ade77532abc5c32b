package impl

import (
	"context"

	"pennyekart/internal/domain/entity"
	domainerrors "pennyekart/internal/domain/errors"
	"pennyekart/internal/domain/repository"
	"pennyekart/internal/domain/service"
	"pennyekart/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minMobileDigits = 10

type collabService struct {
	collabRepo    repository.CollabRepository
	couponRepo    repository.CouponRepository
	qrcodeService service.QRCodeService
}

// CollabServiceParams holds dependencies for CollabService, injected by Fx.
type CollabServiceParams struct {
	fx.In

	CollabRepo    repository.CollabRepository
	CouponRepo    repository.CouponRepository
	QRCodeService service.QRCodeService
}

// NewCollabService creates a new collaboration service instance
func NewCollabService(params CollabServiceParams) usecase.CollabUsecase {
	return &collabService{
		collabRepo:    params.CollabRepo,
		couponRepo:    params.CouponRepo,
		qrcodeService: params.QRCodeService,
	}
}

// RequestCollab mints an agent's personal collab code for a coupon. The code is
// a pure function of (coupon code, agent mobile), so repeated requests resolve
// to the same collaboration: first by lookup, and on a lost insert race by
// re-fetching the row that won.
func (s *collabService) RequestCollab(ctx context.Context, input *usecase.RequestCollabInput) (*entity.Collaboration, error) {
	mobile := entity.NormalizeMobile(input.AgentMobile)
	if len(mobile) < minMobileDigits {
		return nil, domainerrors.ErrInvalidMobile
	}

	coupon, err := s.couponRepo.FindCouponByCode(ctx, input.CouponCode)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return nil, domainerrors.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon by code")
	}
	if !coupon.IsActive {
		return nil, domainerrors.ErrCouponInactive
	}

	collabCode := entity.DeriveCollabCode(coupon.Code, mobile)

	existing, err := s.collabRepo.FindCollabByCode(ctx, collabCode)
	if err != nil && !errors.Is(err, repository.ErrCollabNotFound) {
		return nil, errors.Wrap(err, "failed to find collaboration by code")
	}
	if existing != nil {
		return existing, nil
	}

	collab := &entity.Collaboration{
		CouponID:     coupon.ID,
		AgentUserID:  input.AgentUserID,
		AgentMobile:  mobile,
		Code:         collabCode,
		MarginStatus: entity.MarginPending,
	}

	if err := s.collabRepo.CreateCollab(ctx, collab); err != nil {
		if errors.Is(err, repository.ErrDuplicateCollabCode) {
			// A concurrent request minted the same code first.
			return s.collabRepo.FindCollabByCode(ctx, collabCode)
		}

		return nil, errors.Wrap(err, "failed to create collaboration")
	}

	return collab, nil
}

// GenerateCollabQR generates a shareable QR code image for a collab code
func (s *collabService) GenerateCollabQR(ctx context.Context, collabCode string) ([]byte, error) {
	collab, err := s.collabRepo.FindCollabByCode(ctx, collabCode)
	if err != nil {
		if errors.Is(err, repository.ErrCollabNotFound) {
			return nil, domainerrors.ErrCollabNotFound
		}

		return nil, errors.Wrap(err, "failed to find collaboration by code")
	}

	qrCode, err := s.qrcodeService.GenerateCollabQR(collab.Code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate collab QR")
	}

	return qrCode, nil
}

// ListCollabs retrieves enriched collaborations, optionally filtered by margin status
func (s *collabService) ListCollabs(ctx context.Context, status *entity.MarginStatus) ([]*entity.CollabDetail, error) {
	details, err := s.collabRepo.ListCollabDetails(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list collaborations")
	}

	return details, nil
}

// Overview aggregates collaboration counts and owed/paid margin totals
func (s *collabService) Overview(ctx context.Context) (*usecase.CollabOverview, error) {
	details, err := s.collabRepo.ListCollabDetails(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list collaborations for overview")
	}

	overview := &usecase.CollabOverview{
		TotalCollabs: len(details),
	}
	for _, detail := range details {
		switch detail.MarginStatus {
		case entity.MarginPaid:
			overview.PaidCollabs++
			overview.TotalMarginPaid += detail.MarginOwed()
		default:
			overview.PendingCollabs++
			overview.TotalMarginOwed += detail.MarginOwed()
		}
	}

	return overview, nil
}
