package crm

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByIDs finds the products whose IDs appear in the given list.
	// Missing IDs are simply absent from the result; the caller decides
	// how to report them.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)

	// FindAll finds all products matching the filter
	FindAll(ctx context.Context, filter ProductFilter) ([]Product, error)

	// FindBelowStock finds products with stock strictly below the threshold
	FindBelowStock(ctx context.Context, threshold int) ([]Product, error)

	// Create persists a new product
	Create(ctx context.Context, product *Product) error

	// Save updates an existing product
	Save(ctx context.Context, product *Product) error
}
