package crm

import (
	"time"

	"github.com/Ab-Ezekiel/alx-backend-graphql-crm/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order links a customer to one or more products. TotalAmount is computed
// from the product prices at creation time and is not recomputed when
// prices change later.
type Order struct {
	shared.BaseEntity
	CustomerID  uuid.UUID
	Customer    *Customer
	Products    []Product
	TotalAmount decimal.Decimal
	OrderDate   time.Time
}

// NewOrder creates an order for the given customer and products. The
// product list must be non-empty; the total is the exact decimal sum of the
// product prices. A zero orderDate means "now".
func NewOrder(customer *Customer, products []Product, orderDate time.Time) (*Order, error) {
	if customer == nil {
		return nil, shared.NewDomainError(shared.CodeNotFound, "Customer is required")
	}
	if len(products) == 0 {
		return nil, shared.NewDomainError(shared.CodeEmptySelection, "At least one product must be selected")
	}
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	return &Order{
		BaseEntity:  shared.NewBaseEntity(),
		CustomerID:  customer.ID,
		Customer:    customer,
		Products:    products,
		TotalAmount: TotalOf(products),
		OrderDate:   orderDate,
	}, nil
}

// TotalOf returns the exact sum of the given products' prices.
func TotalOf(products []Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price)
	}
	return total
}
