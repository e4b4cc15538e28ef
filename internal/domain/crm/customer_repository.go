package crm

import (
	"context"

	"github.com/google/uuid"
)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	// FindByID finds a customer by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindAll finds all customers matching the filter
	FindAll(ctx context.Context, filter CustomerFilter) ([]Customer, error)

	// ExistsByEmail checks whether a customer with the given email exists,
	// comparing case-insensitively
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create persists a new customer in its own transaction
	Create(ctx context.Context, customer *Customer) error
}
