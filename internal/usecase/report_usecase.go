package usecase

import (
	"context"
)

// MonthlyReport aggregates one calendar month of order economics.
type MonthlyReport struct {
	Month           string  `json:"month"` // YYYY-MM
	OrdersDelivered int     `json:"orders_delivered"`
	OrdersCancelled int     `json:"orders_cancelled"`
	Revenue         float64 `json:"revenue"`
	COGS            float64 `json:"cogs"`
	Profit          float64 `json:"profit"`
}

// ReportUsecase defines the interface for reporting use cases
type ReportUsecase interface {
	// MonthlyReports aggregates delivered and cancelled orders per month.
	// Revenue counts delivered orders only; COGS is derived from each line
	// item's product purchase rate.
	MonthlyReports(ctx context.Context) ([]*MonthlyReport, error)
}
