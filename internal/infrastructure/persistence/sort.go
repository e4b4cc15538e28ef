package persistence

import (
	"strings"

	"gorm.io/gorm"
)

// CustomerSortFields maps allowed customer sort fields to their columns
var CustomerSortFields = map[string]string{
	"id":         "id",
	"name":       "name",
	"email":      "email",
	"phone":      "phone",
	"created_at": "created_at",
}

// ProductSortFields maps allowed product sort fields to their columns
var ProductSortFields = map[string]string{
	"id":         "id",
	"name":       "name",
	"price":      "price",
	"stock":      "stock",
	"created_at": "created_at",
}

// OrderSortFields maps allowed order sort fields to their columns. Columns
// are table-qualified because order queries may join customers and products.
var OrderSortFields = map[string]string{
	"id":           "orders.id",
	"order_date":   "orders.order_date",
	"total_amount": "orders.total_amount",
	"created_at":   "orders.created_at",
}

// ApplyOrdering applies a comma-separated ordering expression to the query.
// Each entry is a field name, optionally prefixed with "-" for descending
// order, and entries are applied in sequence (primary, secondary, ...).
// Fields not in the whitelist are skipped; if nothing applies, the default
// clause is used.
func ApplyOrdering(db *gorm.DB, orderBy string, allowed map[string]string, defaultClause string) *gorm.DB {
	applied := false
	for _, part := range strings.Split(orderBy, ",") {
		field := strings.TrimSpace(part)
		if field == "" {
			continue
		}
		dir := "ASC"
		if strings.HasPrefix(field, "-") {
			dir = "DESC"
			field = field[1:]
		}
		column, ok := allowed[field]
		if !ok {
			continue
		}
		db = db.Order(column + " " + dir)
		applied = true
	}
	if !applied && defaultClause != "" {
		db = db.Order(defaultClause)
	}
	return db
}
