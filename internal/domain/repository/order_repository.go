package repository

import (
	"context"

	"pennyekart/internal/domain/entity"
)

// OrderRepository exposes read-only access to orders for reporting. Order
// writes belong to the checkout flow, which lives outside this service.
type OrderRepository interface {
	// ListOrders retrieves all orders, newest first.
	ListOrders(ctx context.Context) ([]*entity.Order, error)
}
