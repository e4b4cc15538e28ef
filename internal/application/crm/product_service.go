package crm

import (
	"context"
	"fmt"

	"github.com/Ab-Ezekiel/alx-backend-graphql-crm/internal/domain/crm"
	"github.com/google/uuid"
)

// ProductService handles product-related business operations
type ProductService struct {
	productRepo crm.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo crm.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// Create validates and persists a single product
func (s *ProductService) Create(ctx context.Context, input ProductInput) (*CreateProductResult, error) {
	price, err := crm.ValidatePrice(input.Price)
	if err != nil {
		return &CreateProductResult{Errors: []string{domainMessage(err)}}, nil
	}
	stock, err := crm.ValidateStock(input.Stock)
	if err != nil {
		return &CreateProductResult{Errors: []string{domainMessage(err)}}, nil
	}

	product, err := crm.NewProduct(input.Name, price, stock)
	if err != nil {
		return &CreateProductResult{Errors: []string{domainMessage(err)}}, nil
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return &CreateProductResult{Product: product, Success: true}, nil
}

// UpdateLowStock restocks every product whose stock is below the threshold
// and reports how many were touched. Products at or above the threshold are
// left untouched.
func (s *ProductService) UpdateLowStock(ctx context.Context) (*UpdateLowStockResult, error) {
	lowStock, err := s.productRepo.FindBelowStock(ctx, crm.LowStockThreshold)
	if err != nil {
		return nil, err
	}

	if len(lowStock) == 0 {
		return &UpdateLowStockResult{
			Success: true,
			Message: "No low-stock products found",
		}, nil
	}

	updated := make([]crm.Product, 0, len(lowStock))
	for i := range lowStock {
		product := lowStock[i]
		product.Restock()
		if err := s.productRepo.Save(ctx, &product); err != nil {
			return nil, err
		}
		updated = append(updated, product)
	}

	return &UpdateLowStockResult{
		UpdatedProducts: updated,
		Success:         true,
		Message:         fmt.Sprintf("Updated %d products", len(updated)),
	}, nil
}

// GetByID returns a single product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*crm.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

// List returns all products matching the filter
func (s *ProductService) List(ctx context.Context, filter crm.ProductFilter) ([]crm.Product, error) {
	return s.productRepo.FindAll(ctx, filter)
}
