package crm

import (
	"context"

	"github.com/google/uuid"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// FindByID finds an order by its ID, with customer and products loaded
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindAll finds all orders matching the filter, with customer and
	// products loaded
	FindAll(ctx context.Context, filter OrderFilter) ([]Order, error)

	// Create persists the order, its product links, and its total in a
	// single transaction. Either everything commits or nothing does; a
	// concurrent reader never observes an order without its products or
	// with a stale total.
	Create(ctx context.Context, order *Order) error
}
