package crm

import (
	"time"

	"github.com/Ab-Ezekiel/alx-backend-graphql-crm/internal/domain/crm"
)

// CustomerInput carries the fields for creating a customer
type CustomerInput struct {
	Name  string
	Email string
	Phone string
}

// CreateCustomerResult is the outcome of a single customer creation
type CreateCustomerResult struct {
	Customer *crm.Customer
	Success  bool
	Message  string
	Errors   []string
}

// BulkCreateCustomersResult is the outcome of a bulk customer creation.
// Customers holds the rows that were created; Errors holds one message per
// rejected row, prefixed with its 1-based position in the input.
type BulkCreateCustomersResult struct {
	Customers []crm.Customer
	Errors    []string
}

// ProductInput carries the fields for creating a product. Price arrives as
// a string so decimal values survive transport without float rounding.
type ProductInput struct {
	Name  string
	Price string
	Stock *int
}

// CreateProductResult is the outcome of a product creation
type CreateProductResult struct {
	Product *crm.Product
	Success bool
	Errors  []string
}

// OrderInput carries the fields for creating an order. IDs arrive as opaque
// strings; parse failures surface as invalid-ID errors, not transport errors.
type OrderInput struct {
	CustomerID string
	ProductIDs []string
	OrderDate  *time.Time
}

// CreateOrderResult is the outcome of an order creation
type CreateOrderResult struct {
	Order   *crm.Order
	Success bool
	Errors  []string
}

// UpdateLowStockResult is the outcome of the low-stock restock operation
type UpdateLowStockResult struct {
	UpdatedProducts []crm.Product
	Success         bool
	Message         string
}
