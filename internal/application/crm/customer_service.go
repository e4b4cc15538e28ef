package crm

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ab-Ezekiel/alx-backend-graphql-crm/internal/domain/crm"
	"github.com/Ab-Ezekiel/alx-backend-graphql-crm/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo crm.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo crm.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// Create validates and persists a single customer. Business failures are
// reported in the result, not as an error; the error return is reserved for
// infrastructure problems.
func (s *CustomerService) Create(ctx context.Context, input CustomerInput) (*CreateCustomerResult, error) {
	customer, err := crm.NewCustomer(input.Name, input.Email, input.Phone)
	if err != nil {
		return &CreateCustomerResult{Errors: []string{domainMessage(err)}}, nil
	}

	exists, err := s.customerRepo.ExistsByEmail(ctx, customer.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return &CreateCustomerResult{Errors: []string{"Email already exists"}}, nil
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return &CreateCustomerResult{
		Customer: customer,
		Success:  true,
		Message:  "Customer created successfully",
	}, nil
}

// BulkCreate creates customers row by row. Each row validates and commits
// independently so one bad row never blocks the others; the row number in
// each error message is 1-based.
func (s *CustomerService) BulkCreate(ctx context.Context, inputs []CustomerInput) (*BulkCreateCustomersResult, error) {
	result := &BulkCreateCustomersResult{}

	for i, input := range inputs {
		row := i + 1

		customer, err := crm.NewCustomer(input.Name, input.Email, input.Phone)
		if err != nil {
			if isInvalidEmail(err) {
				result.Errors = append(result.Errors, fmt.Sprintf("Row %d: Invalid email '%s'", row, input.Email))
			} else {
				result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %s", row, domainMessage(err)))
			}
			continue
		}

		exists, err := s.customerRepo.ExistsByEmail(ctx, customer.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: Email '%s' already exists", row, input.Email))
			continue
		}

		if err := s.customerRepo.Create(ctx, customer); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: Failed to create customer '%s': %s", row, input.Email, err.Error()))
			continue
		}

		result.Customers = append(result.Customers, *customer)
	}

	return result, nil
}

// GetByID returns a single customer by ID
func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*crm.Customer, error) {
	return s.customerRepo.FindByID(ctx, id)
}

// List returns all customers matching the filter
func (s *CustomerService) List(ctx context.Context, filter crm.CustomerFilter) ([]crm.Customer, error) {
	return s.customerRepo.FindAll(ctx, filter)
}

// domainMessage extracts the human-readable message from a domain error,
// falling back to the raw error text.
func domainMessage(err error) string {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}
	return err.Error()
}

func isInvalidEmail(err error) bool {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == shared.CodeInvalidFormat && domainErr.Message == "Invalid email format"
	}
	return false
}
