package usecase

import (
	"context"

	"pennyekart/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductInput carries the fields a seller submits to create or update a product.
type ProductInput struct {
	SellerID     uuid.UUID
	Name         string
	Price        float64
	MRP          float64
	PurchaseRate float64
	Stock        int
	Category     string
	ImageURL     string
}

// CatalogUsecase defines the interface for product catalog use cases
type CatalogUsecase interface {
	// CreateProduct persists a new product; it stays unapproved until moderated
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)

	// GetProduct retrieves a product by its ID
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListProducts retrieves all products for the admin catalog view
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// ListSellerProducts retrieves one seller's products
	ListSellerProducts(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error)

	// UpdateProduct persists changes to a seller's product
	UpdateProduct(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Product, error)

	// ApproveProduct sets the admin moderation flag
	ApproveProduct(ctx context.Context, id uuid.UUID, approved bool) error

	// ToggleProductActive flips the product's active flag
	ToggleProductActive(ctx context.Context, id uuid.UUID, active bool) error

	// DeleteProduct soft-deletes a product
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
