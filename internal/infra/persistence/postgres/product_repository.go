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

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// CreateProduct persists a new product.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindProductByID retrieves a product by its unique ID.
func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.SellerProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// ListProducts retrieves all products, newest first.
func (repo *productRepository) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	var productMs []*model.SellerProductModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductDomains(productMs), nil
}

// ListProductsBySeller retrieves a seller's products, newest first.
func (repo *productRepository) ListProductsBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error) {
	var productMs []*model.SellerProductModel

	if err := repo.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products by seller")
	}

	return toProductDomains(productMs), nil
}

// UpdateProduct persists changes to an existing product.
func (repo *productRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.SellerProductModel{}).
		Where("id = ?", productM.ID).
		Updates(map[string]any{
			"name":          productM.Name,
			"price":         productM.Price,
			"mrp":           productM.MRP,
			"purchase_rate": productM.PurchaseRate,
			"stock":         productM.Stock,
			"category":      productM.Category,
			"image_url":     productM.ImageURL,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// UpdateProductApproval updates the admin moderation flag.
func (repo *productRepository) UpdateProductApproval(ctx context.Context, id uuid.UUID, approved bool) error {
	return repo.updateFlag(ctx, id, "is_approved", approved)
}

// UpdateProductActive updates the active flag.
func (repo *productRepository) UpdateProductActive(ctx context.Context, id uuid.UUID, active bool) error {
	return repo.updateFlag(ctx, id, "is_active", active)
}

func (repo *productRepository) updateFlag(ctx context.Context, id uuid.UUID, column string, value bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SellerProductModel{}).
		Where("id = ?", id).
		Update(column, value)

	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to update product %s", column)
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DeleteProduct removes a product by its ID (soft delete).
func (repo *productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SellerProductModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.SellerProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:           data.ID,
		SellerID:     data.SellerID,
		Name:         data.Name,
		Price:        data.Price,
		MRP:          data.MRP,
		PurchaseRate: data.PurchaseRate,
		Stock:        data.Stock,
		Category:     data.Category,
		ImageURL:     data.ImageURL,
		IsApproved:   data.IsApproved,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toProductDomains(data []*model.SellerProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for _, productM := range data {
		products = append(products, toProductDomain(productM))
	}

	return products
}

func fromProductDomain(data *entity.Product) *model.SellerProductModel {
	if data == nil {
		return nil
	}

	return &model.SellerProductModel{
		ID:           data.ID,
		SellerID:     data.SellerID,
		Name:         data.Name,
		Price:        data.Price,
		MRP:          data.MRP,
		PurchaseRate: data.PurchaseRate,
		Stock:        data.Stock,
		Category:     data.Category,
		ImageURL:     data.ImageURL,
		IsApproved:   data.IsApproved,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
