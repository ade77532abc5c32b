package repository

import (
	"context"

	"pennyekart/internal/domain/entity"
	"pennyekart/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for catalog product operations.
type ProductRepository interface {
	// CreateProduct persists a new product.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// FindProductByID retrieves a product by its unique ID.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListProducts retrieves all products, newest first.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// ListProductsBySeller retrieves a seller's products, newest first.
	ListProductsBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error)

	// UpdateProduct persists changes to an existing product.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// UpdateProductApproval updates the admin moderation flag.
	UpdateProductApproval(ctx context.Context, id uuid.UUID, approved bool) error

	// UpdateProductActive updates the active flag.
	UpdateProductActive(ctx context.Context, id uuid.UUID, active bool) error

	// DeleteProduct removes a product by its ID (soft delete).
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
