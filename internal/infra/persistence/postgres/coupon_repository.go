// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// couponRepository implements the repository.CouponRepository interface.
type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository is the constructor for couponRepository.
func NewCouponRepository(db *gorm.DB) repository.CouponRepository {
	return &couponRepository{
		db: db,
	}
}

// CreateCoupon persists a new coupon.
func (repo *couponRepository) CreateCoupon(ctx context.Context, coupon *entity.Coupon) error {
	couponM := fromCouponDomain(coupon)

	if err := repo.db.WithContext(ctx).Create(couponM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCouponCode
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid seller or product reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required coupon information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create coupon")
	}

	// Update the entity with generated values
	coupon.ID = couponM.ID
	coupon.CreatedAt = couponM.CreatedAt
	coupon.UpdatedAt = couponM.UpdatedAt

	return nil
}

// FindCouponByID retrieves a coupon by its unique ID. The lookup is unscoped:
// collabs outlive coupon deletion and settlement still needs the margin policy.
func (repo *couponRepository) FindCouponByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error) {
	var couponM model.PrimeCouponModel

	if err := repo.db.WithContext(ctx).
		Unscoped().
		Where("id = ?", id).
		First(&couponM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon by ID")
	}

	return toCouponDomain(&couponM), nil
}

// FindCouponByCode retrieves a live coupon by its code.
func (repo *couponRepository) FindCouponByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	var couponM model.PrimeCouponModel

	if err := repo.db.WithContext(ctx).
		Where("code = ?", code).
		First(&couponM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon by code")
	}

	return toCouponDomain(&couponM), nil
}

// couponListingRow is the scan target for the coupon listing join query.
type couponListingRow struct {
	model.PrimeCouponModel
	ProductName     string
	ProductPrice    float64
	ProductMRP      float64
	ProductImageURL string
	SellerName      string
}

const couponListingSelect = `
	SELECT c.*,
	       p.name AS product_name,
	       p.price AS product_price,
	       p.mrp AS product_mrp,
	       COALESCE(p.image_url, '') AS product_image_url,
	       COALESCE(NULLIF(pr.company_name, ''), pr.full_name, 'Seller') AS seller_name
	FROM penny_prime_coupons c
	JOIN seller_products p ON p.id = c.product_id
	LEFT JOIN profiles pr ON pr.user_id = c.seller_id
`

// ListActiveCoupons retrieves all active coupons enriched with product and seller
// display data for the storefront, newest first.
func (repo *couponRepository) ListActiveCoupons(ctx context.Context) ([]*entity.CouponListing, error) {
	var rows []*couponListingRow

	query := couponListingSelect + `
	WHERE c.is_active = true
	  AND c.deleted_at IS NULL
	ORDER BY c.created_at DESC
	`

	if err := repo.db.WithContext(ctx).
		Raw(query).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active coupons")
	}

	return toCouponListings(rows), nil
}

// ListCouponsBySeller retrieves all of a seller's coupons, newest first.
func (repo *couponRepository) ListCouponsBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.CouponListing, error) {
	var rows []*couponListingRow

	query := couponListingSelect + `
	WHERE c.seller_id = ?
	  AND c.deleted_at IS NULL
	ORDER BY c.created_at DESC
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, sellerID).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list coupons by seller")
	}

	return toCouponListings(rows), nil
}

// UpdateCouponActive updates the active flag of a coupon.
func (repo *couponRepository) UpdateCouponActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PrimeCouponModel{}).
		Where("id = ?", id).
		Update("is_active", isActive)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update coupon active flag")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCouponNotFound
	}

	return nil
}

// DeleteCoupon removes a coupon by its ID (soft delete). Collaborations and
// usages are left untouched so payout history survives.
func (repo *couponRepository) DeleteCoupon(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PrimeCouponModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete coupon")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCouponNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCouponDomain converts a GORM PrimeCouponModel to a domain Coupon entity.
func toCouponDomain(data *model.PrimeCouponModel) *entity.Coupon {
	if data == nil {
		return nil
	}

	return &entity.Coupon{
		ID:        data.ID,
		SellerID:  data.SellerID,
		ProductID: data.ProductID,
		Code:      data.Code,
		CustomerDiscount: entity.DiscountPolicy{
			Kind:  entity.PolicyKind(data.CustomerDiscountType),
			Value: data.CustomerDiscountValue,
		},
		AgentMargin: entity.DiscountPolicy{
			Kind:  entity.PolicyKind(data.AgentMarginType),
			Value: data.AgentMarginValue,
		},
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCouponDomain converts a domain Coupon entity to a GORM PrimeCouponModel.
func fromCouponDomain(data *entity.Coupon) *model.PrimeCouponModel {
	if data == nil {
		return nil
	}

	return &model.PrimeCouponModel{
		ID:                    data.ID,
		SellerID:              data.SellerID,
		ProductID:             data.ProductID,
		Code:                  data.Code,
		CustomerDiscountType:  string(data.CustomerDiscount.Kind),
		CustomerDiscountValue: data.CustomerDiscount.Value,
		AgentMarginType:       string(data.AgentMargin.Kind),
		AgentMarginValue:      data.AgentMargin.Value,
		IsActive:              data.IsActive,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

func toCouponListings(rows []*couponListingRow) []*entity.CouponListing {
	listings := make([]*entity.CouponListing, 0, len(rows))
	for _, row := range rows {
		listings = append(listings, &entity.CouponListing{
			Coupon:          *toCouponDomain(&row.PrimeCouponModel),
			ProductName:     row.ProductName,
			ProductPrice:    row.ProductPrice,
			ProductMRP:      row.ProductMRP,
			ProductImageURL: row.ProductImageURL,
			SellerName:      row.SellerName,
		})
	}

	return listings
}
