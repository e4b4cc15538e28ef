package crm

import (
	"fmt"

	"github.com/Ab-Ezekiel/alx-backend-graphql-crm/internal/domain/shared"
)

// Customer represents a customer in the CRM context.
// Email is unique across all customers, compared case-insensitively.
type Customer struct {
	shared.BaseEntity
	Name  string
	Email string
	Phone string
}

// NewCustomer creates a new customer after validating its fields.
// Phone may be empty; CreatedAt is set once and never changes.
func NewCustomer(name, email, phone string) (*Customer, error) {
	if name == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidFormat, "Name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError(shared.CodeInvalidFormat, "Name cannot exceed 100 characters")
	}
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := ValidatePhone(phone); err != nil {
		return nil, err
	}

	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Email:      email,
		Phone:      phone,
	}, nil
}

// String implements fmt.Stringer
func (c *Customer) String() string {
	return fmt.Sprintf("%s <%s>", c.Name, c.Email)
}
