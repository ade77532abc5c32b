package impl

import (
	"context"
	"strings"

	"pennyekart/internal/domain/entity"
	domainerrors "pennyekart/internal/domain/errors"
	"pennyekart/internal/domain/repository"
	"pennyekart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	productRepo repository.ProductRepository
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
	}
}

func validateProductInput(input *usecase.ProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("product name is required")
	}
	if input.Price <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("product price must be positive")
	}
	if input.MRP < input.Price {
		return domainerrors.ErrValidationFailed.WithDetails("MRP cannot be below the selling price")
	}
	if input.PurchaseRate < 0 || input.Stock < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("purchase rate and stock cannot be negative")
	}

	return nil
}

// CreateProduct persists a new product; it stays unapproved until moderated
func (s *catalogService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product := &entity.Product{
		SellerID:     input.SellerID,
		Name:         strings.TrimSpace(input.Name),
		Price:        input.Price,
		MRP:          input.MRP,
		PurchaseRate: input.PurchaseRate,
		Stock:        input.Stock,
		Category:     input.Category,
		ImageURL:     input.ImageURL,
		IsApproved:   false,
		IsActive:     true,
	}

	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

// GetProduct retrieves a product by its ID
func (s *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// ListProducts retrieves all products for the admin catalog view
func (s *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// ListSellerProducts retrieves one seller's products
func (s *catalogService) ListSellerProducts(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error) {
	products, err := s.productRepo.ListProductsBySeller(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller products")
	}

	return products, nil
}

// UpdateProduct persists changes to a seller's product
func (s *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if product.SellerID != input.SellerID {
		return nil, domainerrors.ErrProductOwnership
	}

	product.Name = strings.TrimSpace(input.Name)
	product.Price = input.Price
	product.MRP = input.MRP
	product.PurchaseRate = input.PurchaseRate
	product.Stock = input.Stock
	product.Category = input.Category
	product.ImageURL = input.ImageURL

	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// ApproveProduct sets the admin moderation flag
func (s *catalogService) ApproveProduct(ctx context.Context, id uuid.UUID, approved bool) error {
	if err := s.productRepo.UpdateProductApproval(ctx, id, approved); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to update product approval")
	}

	return nil
}

// ToggleProductActive flips the product's active flag
func (s *catalogService) ToggleProductActive(ctx context.Context, id uuid.UUID, active bool) error {
	if err := s.productRepo.UpdateProductActive(ctx, id, active); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to update product active flag")
	}

	return nil
}

// DeleteProduct soft-deletes a product
func (s *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}
