package impl

import (
	"context"
	"testing"

	"pennyekart/internal/domain/entity"
	domainerrors "pennyekart/internal/domain/errors"
	"pennyekart/internal/domain/repository"
	mockRepo "pennyekart/internal/mocks/repository"
	"pennyekart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockRepo.MockProductRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
	})

	return catalogServiceFixtures{
		service:     service,
		productRepo: productRepo,
	}
}

func validProductInput(sellerID uuid.UUID) *usecase.ProductInput {
	return &usecase.ProductInput{
		SellerID:     sellerID,
		Name:         "Wireless Earbuds",
		Price:        1299,
		MRP:          1999,
		PurchaseRate: 900,
		Stock:        25,
		Category:     "electronics",
	}
}

func TestCatalogService_CreateProduct_StartsUnapproved(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	input := validProductInput(sellerID)

	fx.productRepo.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			product.ID = uuid.New()
		}).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, sellerID, product.SellerID)
	assert.False(t, product.IsApproved)
	assert.True(t, product.IsActive)
}

func TestCatalogService_CreateProduct_MRPBelowPrice(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := validProductInput(uuid.New())
	input.MRP = input.Price - 1

	product, err := fx.service.CreateProduct(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, product)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCatalogService_UpdateProduct_OwnershipViolation(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	product := &entity.Product{
		ID:       uuid.New(),
		SellerID: uuid.New(),
		Name:     "Wireless Earbuds",
		Price:    1299,
		MRP:      1999,
	}
	input := validProductInput(uuid.New()) // Different seller.

	fx.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)

	updated, err := fx.service.UpdateProduct(ctx, product.ID, input)

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrProductOwnership))
}

func TestCatalogService_UpdateProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	product := &entity.Product{
		ID:       uuid.New(),
		SellerID: sellerID,
		Name:     "Old Name",
		Price:    999,
		MRP:      1499,
	}
	input := validProductInput(sellerID)

	fx.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().UpdateProduct(ctx, product).Return(nil)

	updated, err := fx.service.UpdateProduct(ctx, product.ID, input)

	require.NoError(t, err)
	assert.Equal(t, "Wireless Earbuds", updated.Name)
	assert.InDelta(t, 1299.0, updated.Price, 0.001)
	assert.Equal(t, 25, updated.Stock)
}

func TestCatalogService_ApproveProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		UpdateProductApproval(ctx, productID, true).
		Return(repository.ErrProductNotFound)

	err := fx.service.ApproveProduct(ctx, productID, true)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCatalogService_ToggleProductActive_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().UpdateProductActive(ctx, productID, false).Return(nil)

	err := fx.service.ToggleProductActive(ctx, productID, false)

	require.NoError(t, err)
}
