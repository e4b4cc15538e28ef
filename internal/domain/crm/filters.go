package crm

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerFilter holds the filter options for listing customers.
// String matches are case-insensitive substring matches; PhonePrefix is a
// case-sensitive prefix match (so "+1" matches literally).
type CustomerFilter struct {
	NameContains  string
	EmailContains string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	PhonePrefix   string
	OrderBy       string
}

// ProductFilter holds the filter options for listing products.
// StockBelow selects products with stock strictly less than the value.
type ProductFilter struct {
	NameContains string
	PriceMin     *decimal.Decimal
	PriceMax     *decimal.Decimal
	StockMin     *int
	StockMax     *int
	StockBelow   *int
	OrderBy      string
}

// OrderFilter holds the filter options for listing orders. CustomerName and
// ProductName match against the related rows; ProductID selects orders that
// include the given product.
type OrderFilter struct {
	TotalMin      *decimal.Decimal
	TotalMax      *decimal.Decimal
	OrderedAfter  *time.Time
	OrderedBefore *time.Time
	CustomerName  string
	ProductName   string
	ProductID     *uuid.UUID
	OrderBy       string
}
