package postgres

import (
	"context"

	"pennyekart/internal/domain/entity"
	domainerrors "pennyekart/internal/domain/errors"
	"pennyekart/internal/domain/repository"
	"pennyekart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// usageRepository implements the repository.UsageRepository interface.
type usageRepository struct {
	db *gorm.DB
}

// NewUsageRepository is the constructor for usageRepository.
func NewUsageRepository(db *gorm.DB) repository.UsageRepository {
	return &usageRepository{
		db: db,
	}
}

// CreateUsage appends a redemption row. The margin amount is frozen at the
// value computed when the order was placed.
func (repo *usageRepository) CreateUsage(ctx context.Context, usage *entity.CouponUsage) error {
	usageM := fromUsageDomain(usage)

	if err := repo.db.WithContext(ctx).Create(usageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid collaboration reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record coupon usage")
	}

	usage.ID = usageM.ID
	usage.UsedAt = usageM.UsedAt

	return nil
}

// ListUsagesByCollab retrieves all redemptions of a collaboration, oldest first.
func (repo *usageRepository) ListUsagesByCollab(ctx context.Context, collabID uuid.UUID) ([]*entity.CouponUsage, error) {
	var usageMs []*model.PrimeCouponUseModel

	if err := repo.db.WithContext(ctx).
		Where("collaboration_id = ?", collabID).
		Order("used_at ASC").
		Find(&usageMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list usages by collaboration")
	}

	usages := make([]*entity.CouponUsage, 0, len(usageMs))
	for _, usageM := range usageMs {
		usages = append(usages, toUsageDomain(usageM))
	}

	return usages, nil
}

// --- Mapper Functions ---

// toUsageDomain converts a GORM PrimeCouponUseModel to a domain CouponUsage entity.
func toUsageDomain(data *model.PrimeCouponUseModel) *entity.CouponUsage {
	if data == nil {
		return nil
	}

	return &entity.CouponUsage{
		ID:              data.ID,
		CollaborationID: data.CollaborationID,
		OrderID:         data.OrderID,
		MarginAmount:    data.MarginAmount,
		UsedAt:          data.UsedAt,
	}
}

// fromUsageDomain converts a domain CouponUsage entity to a GORM PrimeCouponUseModel.
func fromUsageDomain(data *entity.CouponUsage) *model.PrimeCouponUseModel {
	if data == nil {
		return nil
	}

	return &model.PrimeCouponUseModel{
		ID:              data.ID,
		CollaborationID: data.CollaborationID,
		OrderID:         data.OrderID,
		MarginAmount:    data.MarginAmount,
		UsedAt:          data.UsedAt,
	}
}
