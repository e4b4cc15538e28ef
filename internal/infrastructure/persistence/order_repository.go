package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/Ab-Ezekiel/alx-backend-graphql-crm/internal/domain/crm"
	"github.com/Ab-Ezekiel/alx-backend-graphql-crm/internal/domain/shared"
	"github.com/Ab-Ezekiel/alx-backend-graphql-crm/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements crm.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order by its ID with customer and products preloaded
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*crm.Order, error) {
	var model models.OrderModel
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Products").
		First(&model, "orders.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all orders matching the filter, with customer and products
// preloaded
func (r *GormOrderRepository) FindAll(ctx context.Context, filter crm.OrderFilter) ([]crm.Order, error) {
	query := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Preload("Customer").
		Preload("Products")

	if filter.TotalMin != nil {
		query = query.Where("orders.total_amount >= ?", *filter.TotalMin)
	}
	if filter.TotalMax != nil {
		query = query.Where("orders.total_amount <= ?", *filter.TotalMax)
	}
	if filter.OrderedAfter != nil {
		query = query.Where("orders.order_date >= ?", *filter.OrderedAfter)
	}
	if filter.OrderedBefore != nil {
		query = query.Where("orders.order_date <= ?", *filter.OrderedBefore)
	}
	if filter.CustomerName != "" {
		query = query.
			Joins("JOIN customers ON customers.id = orders.customer_id").
			Where("LOWER(customers.name) LIKE ?", "%"+strings.ToLower(filter.CustomerName)+"%")
	}
	if filter.ProductName != "" || filter.ProductID != nil {
		query = query.
			Joins("JOIN order_products ON order_products.order_id = orders.id").
			Joins("JOIN products ON products.id = order_products.product_id").
			Distinct("orders.*")
		if filter.ProductName != "" {
			query = query.Where("LOWER(products.name) LIKE ?", "%"+strings.ToLower(filter.ProductName)+"%")
		}
		if filter.ProductID != nil {
			query = query.Where("products.id = ?", *filter.ProductID)
		}
	}
	query = ApplyOrdering(query, filter.OrderBy, OrderSortFields, "orders.created_at ASC")

	var orderModels []models.OrderModel
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, err
	}

	orders := make([]crm.Order, len(orderModels))
	for i, model := range orderModels {
		orders[i] = *model.ToDomain()
	}
	return orders, nil
}

// Create persists a new order together with its product links in a single
// transaction. The products themselves are never modified; only the join
// rows are written. If any write fails the whole order is rolled back.
func (r *GormOrderRepository) Create(ctx context.Context, order *crm.Order) error {
	model := models.OrderModelFromDomain(order)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Products.*").Create(model).Error
	})
}
