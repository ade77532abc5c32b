package impl

import (
	"context"
	"testing"
	"time"

	"pennyekart/internal/domain/entity"
	mockRepo "pennyekart/internal/mocks/repository"
	"pennyekart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reportServiceFixtures holds all test dependencies for report service tests.
type reportServiceFixtures struct {
	service     usecase.ReportUsecase
	orderRepo   *mockRepo.MockOrderRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestReportService(t *testing.T) reportServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewReportService(ReportServiceParams{
		OrderRepo:   orderRepo,
		ProductRepo: productRepo,
	})

	return reportServiceFixtures{
		service:     service,
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

func TestReportService_MonthlyReports_AggregatesByMonth(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	productA := &entity.Product{ID: uuid.New(), PurchaseRate: 300}
	productB := &entity.Product{ID: uuid.New(), PurchaseRate: 200}

	july := time.Date(2025, time.July, 15, 10, 0, 0, 0, time.UTC)
	august := time.Date(2025, time.August, 3, 9, 30, 0, 0, time.UTC)

	orders := []*entity.Order{
		{
			ID:        uuid.New(),
			Status:    entity.OrderDelivered,
			Total:     1000,
			Items:     []entity.OrderItem{{ProductID: productA.ID, Quantity: 2, Price: 500}},
			CreatedAt: july,
		},
		{
			ID:        uuid.New(),
			Status:    entity.OrderCancelled,
			Total:     750,
			CreatedAt: july,
		},
		{
			ID:        uuid.New(),
			Status:    entity.OrderDelivered,
			Total:     500,
			Items:     []entity.OrderItem{{ProductID: productB.ID, Quantity: 1, Price: 500}},
			CreatedAt: august,
		},
	}

	fx.orderRepo.EXPECT().ListOrders(ctx).Return(orders, nil)
	fx.productRepo.EXPECT().
		ListProducts(ctx).
		Return([]*entity.Product{productA, productB}, nil)

	reports, err := fx.service.MonthlyReports(ctx)

	require.NoError(t, err)
	require.Len(t, reports, 2)

	// Newest month first.
	assert.Equal(t, "2025-08", reports[0].Month)
	assert.Equal(t, 1, reports[0].OrdersDelivered)
	assert.Equal(t, 0, reports[0].OrdersCancelled)
	assert.InDelta(t, 500.0, reports[0].Revenue, 0.001)
	assert.InDelta(t, 200.0, reports[0].COGS, 0.001)
	assert.InDelta(t, 300.0, reports[0].Profit, 0.001)

	assert.Equal(t, "2025-07", reports[1].Month)
	assert.Equal(t, 1, reports[1].OrdersDelivered)
	assert.Equal(t, 1, reports[1].OrdersCancelled)
	assert.InDelta(t, 1000.0, reports[1].Revenue, 0.001)
	assert.InDelta(t, 600.0, reports[1].COGS, 0.001)
	assert.InDelta(t, 400.0, reports[1].Profit, 0.001)
}

func TestReportService_MonthlyReports_UnknownProductContributesZeroCost(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	orders := []*entity.Order{
		{
			ID:        uuid.New(),
			Status:    entity.OrderDelivered,
			Total:     400,
			Items:     []entity.OrderItem{{ProductID: uuid.New(), Quantity: 3, Price: 100}},
			CreatedAt: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	fx.orderRepo.EXPECT().ListOrders(ctx).Return(orders, nil)
	fx.productRepo.EXPECT().ListProducts(ctx).Return([]*entity.Product{}, nil)

	reports, err := fx.service.MonthlyReports(ctx)

	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.InDelta(t, 400.0, reports[0].Revenue, 0.001)
	assert.Zero(t, reports[0].COGS)
	assert.InDelta(t, 400.0, reports[0].Profit, 0.001)
}

func TestReportService_MonthlyReports_Empty(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().ListOrders(ctx).Return([]*entity.Order{}, nil)
	fx.productRepo.EXPECT().ListProducts(ctx).Return([]*entity.Product{}, nil)

	reports, err := fx.service.MonthlyReports(ctx)

	require.NoError(t, err)
	assert.Empty(t, reports)
}
