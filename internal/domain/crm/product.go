package crm

import (
	"github.com/Ab-Ezekiel/alx-backend-graphql-crm/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// LowStockThreshold is the stock level below which a product qualifies for
// automatic replenishment.
const LowStockThreshold = 10

// RestockIncrement is the amount added to a low-stock product on each
// replenishment pass.
const RestockIncrement = 10

// Product represents a sellable product. Price is always strictly positive
// and stock never goes negative.
type Product struct {
	shared.BaseEntity
	Name  string
	Price decimal.Decimal
	Stock int
}

// NewProduct creates a new product after validating price and stock.
func NewProduct(name string, price decimal.Decimal, stock int) (*Product, error) {
	if name == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidFormat, "Name cannot be empty")
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError(shared.CodeOutOfRange, "Price must be positive")
	}
	if stock < 0 {
		return nil, shared.NewDomainError(shared.CodeOutOfRange, "Stock cannot be negative")
	}

	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Price:      price,
		Stock:      stock,
	}, nil
}

// IsLowStock returns true if the product qualifies for replenishment.
func (p *Product) IsLowStock() bool {
	return p.Stock < LowStockThreshold
}

// Restock increments the stock by the replenishment amount.
func (p *Product) Restock() {
	p.Stock += RestockIncrement
}
