package postgres

import (
	"context"
	"time"

	"pennyekart/internal/domain/entity"
	domainerrors "pennyekart/internal/domain/errors"
	"pennyekart/internal/domain/repository"
	"pennyekart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// collabRepository implements the repository.CollabRepository interface.
type collabRepository struct {
	db *gorm.DB
}

// NewCollabRepository is the constructor for collabRepository.
func NewCollabRepository(db *gorm.DB) repository.CollabRepository {
	return &collabRepository{
		db: db,
	}
}

// CreateCollab persists a new collaboration. A unique violation on the collab
// code means another request minted the same code first.
func (repo *collabRepository) CreateCollab(ctx context.Context, collab *entity.Collaboration) error {
	collabM := fromCollabDomain(collab)

	if err := repo.db.WithContext(ctx).Create(collabM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCollabCode
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid coupon reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create collaboration")
	}

	collab.ID = collabM.ID
	collab.CreatedAt = collabM.CreatedAt

	return nil
}

// FindCollabByID retrieves a collaboration by its unique ID.
func (repo *collabRepository) FindCollabByID(ctx context.Context, id uuid.UUID) (*entity.Collaboration, error) {
	var collabM model.PrimeCollabModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&collabM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCollabNotFound
		}

		return nil, errors.Wrap(err, "failed to find collaboration by ID")
	}

	return toCollabDomain(&collabM), nil
}

// FindCollabByCode retrieves a collaboration by its derived collab code.
func (repo *collabRepository) FindCollabByCode(ctx context.Context, code string) (*entity.Collaboration, error) {
	var collabM model.PrimeCollabModel

	if err := repo.db.WithContext(ctx).
		Where("collab_code = ?", code).
		First(&collabM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCollabNotFound
		}

		return nil, errors.Wrap(err, "failed to find collaboration by code")
	}

	return toCollabDomain(&collabM), nil
}

// collabDetailRow is the scan target for the collaboration listing join query.
type collabDetailRow struct {
	model.PrimeCollabModel
	CouponCode       string
	AgentMarginType  string
	AgentMarginValue float64
	ProductName      string
	SellerName       string
}

// ListCollabDetails retrieves collaborations enriched with coupon, product,
// seller and usage data, newest first. Deleted coupons are still joined so
// payout history stays complete.
func (repo *collabRepository) ListCollabDetails(ctx context.Context, status *entity.MarginStatus) ([]*entity.CollabDetail, error) {
	var rows []*collabDetailRow

	query := `
	SELECT cl.*,
	       c.code AS coupon_code,
	       c.agent_margin_type AS agent_margin_type,
	       c.agent_margin_value AS agent_margin_value,
	       COALESCE(p.name, '') AS product_name,
	       COALESCE(NULLIF(pr.company_name, ''), pr.full_name, 'Seller') AS seller_name
	FROM penny_prime_collabs cl
	JOIN penny_prime_coupons c ON c.id = cl.coupon_id
	LEFT JOIN seller_products p ON p.id = c.product_id
	LEFT JOIN profiles pr ON pr.user_id = c.seller_id
	`
	args := make([]any, 0, 1)
	if status != nil {
		query += " WHERE cl.margin_status = ?"
		args = append(args, string(*status))
	}
	query += " ORDER BY cl.created_at DESC"

	if err := repo.db.WithContext(ctx).
		Raw(query, args...).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list collaboration details")
	}

	details := make([]*entity.CollabDetail, 0, len(rows))
	collabIDs := make([]uuid.UUID, 0, len(rows))
	byID := make(map[uuid.UUID]*entity.CollabDetail, len(rows))

	for _, row := range rows {
		detail := &entity.CollabDetail{
			Collaboration: *toCollabDomain(&row.PrimeCollabModel),
			CouponCode:    row.CouponCode,
			AgentMargin: entity.DiscountPolicy{
				Kind:  entity.PolicyKind(row.AgentMarginType),
				Value: row.AgentMarginValue,
			},
			ProductName: row.ProductName,
			SellerName:  row.SellerName,
		}
		details = append(details, detail)
		collabIDs = append(collabIDs, detail.ID)
		byID[detail.ID] = detail
	}

	if len(collabIDs) == 0 {
		return details, nil
	}

	// Batch-load usages instead of one query per collaboration.
	var usageMs []*model.PrimeCouponUseModel
	if err := repo.db.WithContext(ctx).
		Where("collaboration_id IN ?", collabIDs).
		Order("used_at ASC").
		Find(&usageMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load collaboration usages")
	}

	for _, usageM := range usageMs {
		if detail, ok := byID[usageM.CollaborationID]; ok {
			detail.Usages = append(detail.Usages, toUsageDomain(usageM))
		}
	}

	return details, nil
}

// MarkCollabPaid flips margin_status from pending to paid. The WHERE clause on
// the current status makes concurrent settlements serialize on the row: only
// one update reports an affected row.
func (repo *collabRepository) MarkCollabPaid(ctx context.Context, id uuid.UUID, operatorID uuid.UUID, paidAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PrimeCollabModel{}).
		Where("id = ? AND margin_status = ?", id, string(entity.MarginPending)).
		Updates(map[string]any{
			"margin_status":  string(entity.MarginPaid),
			"margin_paid_at": paidAt,
			"margin_paid_by": operatorID,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark collaboration paid")
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing row from a lost settlement race.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.PrimeCollabModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check collaboration existence")
		}
		if count == 0 {
			return repository.ErrCollabNotFound
		}

		return repository.ErrCollabNotPending
	}

	return nil
}

// --- Mapper Functions ---

// toCollabDomain converts a GORM PrimeCollabModel to a domain Collaboration entity.
func toCollabDomain(data *model.PrimeCollabModel) *entity.Collaboration {
	if data == nil {
		return nil
	}

	return &entity.Collaboration{
		ID:           data.ID,
		CouponID:     data.CouponID,
		AgentUserID:  data.AgentUserID,
		AgentMobile:  data.AgentMobile,
		Code:         data.CollabCode,
		MarginStatus: entity.MarginStatus(data.MarginStatus),
		MarginPaidAt: data.MarginPaidAt,
		MarginPaidBy: data.MarginPaidBy,
		CreatedAt:    data.CreatedAt,
	}
}

// fromCollabDomain converts a domain Collaboration entity to a GORM PrimeCollabModel.
func fromCollabDomain(data *entity.Collaboration) *model.PrimeCollabModel {
	if data == nil {
		return nil
	}

	return &model.PrimeCollabModel{
		ID:           data.ID,
		CouponID:     data.CouponID,
		AgentUserID:  data.AgentUserID,
		AgentMobile:  data.AgentMobile,
		CollabCode:   data.Code,
		MarginStatus: string(data.MarginStatus),
		MarginPaidAt: data.MarginPaidAt,
		MarginPaidBy: data.MarginPaidBy,
		CreatedAt:    data.CreatedAt,
	}
}
