package impl

import (
	"context"
	"sort"

	"pennyekart/internal/domain/entity"
	"pennyekart/internal/domain/repository"
	"pennyekart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const monthLayout = "2006-01"

type reportService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
}

// NewReportService creates a new report service instance
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		orderRepo:   params.OrderRepo,
		productRepo: params.ProductRepo,
	}
}

// MonthlyReports aggregates delivered and cancelled orders per calendar month.
// Revenue counts delivered orders only. COGS multiplies each line item's
// quantity by the product's purchase rate; items whose product no longer
// exists contribute zero cost.
func (s *reportService) MonthlyReports(ctx context.Context) ([]*usecase.MonthlyReport, error) {
	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders for reporting")
	}

	purchaseRates, err := s.loadPurchaseRates(ctx)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[string]*usecase.MonthlyReport)
	for _, order := range orders {
		month := order.CreatedAt.Format(monthLayout)
		report, ok := byMonth[month]
		if !ok {
			report = &usecase.MonthlyReport{Month: month}
			byMonth[month] = report
		}

		switch order.Status {
		case entity.OrderDelivered:
			report.OrdersDelivered++
			report.Revenue += order.Total
			report.COGS += orderCOGS(order, purchaseRates)
		case entity.OrderCancelled:
			report.OrdersCancelled++
		}
	}

	reports := make([]*usecase.MonthlyReport, 0, len(byMonth))
	for _, report := range byMonth {
		report.Profit = report.Revenue - report.COGS
		reports = append(reports, report)
	}

	// Newest month first.
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Month > reports[j].Month
	})

	return reports, nil
}

func (s *reportService) loadPurchaseRates(ctx context.Context) (map[uuid.UUID]float64, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products for reporting")
	}

	rates := make(map[uuid.UUID]float64, len(products))
	for _, product := range products {
		rates[product.ID] = product.PurchaseRate
	}

	return rates, nil
}

func orderCOGS(order *entity.Order, purchaseRates map[uuid.UUID]float64) float64 {
	var cogs float64
	for _, item := range order.Items {
		cogs += purchaseRates[item.ProductID] * float64(item.Quantity)
	}

	return cogs
}
