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

// GormProductRepository implements crm.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*crm.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDs finds the products matching the given IDs. IDs without a
// matching row are simply absent from the result; callers compare the
// lengths to detect missing products.
func (r *GormProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]crm.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var productModels []models.ProductModel
	if err := r.db.WithContext(ctx).Find(&productModels, "id IN ?", ids).Error; err != nil {
		return nil, err
	}
	products := make([]crm.Product, len(productModels))
	for i, model := range productModels {
		products[i] = *model.ToDomain()
	}
	return products, nil
}

// FindAll finds all products matching the filter
func (r *GormProductRepository) FindAll(ctx context.Context, filter crm.ProductFilter) ([]crm.Product, error) {
	query := r.db.WithContext(ctx).Model(&models.ProductModel{})

	if filter.NameContains != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.NameContains)+"%")
	}
	if filter.PriceMin != nil {
		query = query.Where("price >= ?", *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		query = query.Where("price <= ?", *filter.PriceMax)
	}
	if filter.StockMin != nil {
		query = query.Where("stock >= ?", *filter.StockMin)
	}
	if filter.StockMax != nil {
		query = query.Where("stock <= ?", *filter.StockMax)
	}
	if filter.StockBelow != nil {
		query = query.Where("stock < ?", *filter.StockBelow)
	}
	query = ApplyOrdering(query, filter.OrderBy, ProductSortFields, "created_at ASC")

	var productModels []models.ProductModel
	if err := query.Find(&productModels).Error; err != nil {
		return nil, err
	}

	products := make([]crm.Product, len(productModels))
	for i, model := range productModels {
		products[i] = *model.ToDomain()
	}
	return products, nil
}

// FindBelowStock finds all products whose stock is strictly below the threshold
func (r *GormProductRepository) FindBelowStock(ctx context.Context, threshold int) ([]crm.Product, error) {
	var productModels []models.ProductModel
	err := r.db.WithContext(ctx).
		Where("stock < ?", threshold).
		Order("created_at ASC").
		Find(&productModels).Error
	if err != nil {
		return nil, err
	}
	products := make([]crm.Product, len(productModels))
	for i, model := range productModels {
		products[i] = *model.ToDomain()
	}
	return products, nil
}

// Create persists a new product
func (r *GormProductRepository) Create(ctx context.Context, product *crm.Product) error {
	model := models.ProductModelFromDomain(product)
	return r.db.WithContext(ctx).Create(model).Error
}

// Save updates an existing product
func (r *GormProductRepository) Save(ctx context.Context, product *crm.Product) error {
	model := models.ProductModelFromDomain(product)
	return r.db.WithContext(ctx).Save(model).Error
}
