package crm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Ab-Ezekiel/alx-backend-graphql-crm/internal/domain/crm"
	"github.com/Ab-Ezekiel/alx-backend-graphql-crm/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderService handles order-related business operations
type OrderService struct {
	orderRepo    crm.OrderRepository
	customerRepo crm.CustomerRepository
	productRepo  crm.ProductRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo crm.OrderRepository,
	customerRepo crm.CustomerRepository,
	productRepo crm.ProductRepository,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
	}
}

// Create validates and persists a new order. The customer must exist, every
// product ID must resolve, and the total is computed server-side from the
// resolved product prices. Any failure leaves the database untouched.
func (s *OrderService) Create(ctx context.Context, input OrderInput) (*CreateOrderResult, error) {
	customerID, err := uuid.Parse(input.CustomerID)
	if err != nil {
		return &CreateOrderResult{Errors: []string{fmt.Sprintf("Invalid customer ID: %s", input.CustomerID)}}, nil
	}

	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return &CreateOrderResult{Errors: []string{fmt.Sprintf("Invalid customer ID: %s", input.CustomerID)}}, nil
		}
		return nil, err
	}

	if len(input.ProductIDs) == 0 {
		return &CreateOrderResult{Errors: []string{"At least one product must be selected"}}, nil
	}

	type productRef struct {
		raw string
		id  uuid.UUID
	}
	refs := make([]productRef, 0, len(input.ProductIDs))
	var invalidIDs []string
	for _, raw := range input.ProductIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			invalidIDs = append(invalidIDs, raw)
			continue
		}
		refs = append(refs, productRef{raw: raw, id: id})
	}

	ids := make([]uuid.UUID, len(refs))
	for i, ref := range refs {
		ids[i] = ref.id
	}
	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// Collect every ID that resolved to nothing so the caller sees all
	// mistakes at once instead of fixing them one by one.
	found := make(map[uuid.UUID]bool, len(products))
	for _, p := range products {
		found[p.ID] = true
	}
	for _, ref := range refs {
		if !found[ref.id] {
			invalidIDs = append(invalidIDs, ref.raw)
		}
	}
	if len(invalidIDs) > 0 {
		return &CreateOrderResult{Errors: []string{fmt.Sprintf("Invalid product ID(s): %s", strings.Join(invalidIDs, ", "))}}, nil
	}

	var orderDate time.Time
	if input.OrderDate != nil {
		orderDate = *input.OrderDate
	}
	order, err := crm.NewOrder(customer, products, orderDate)
	if err != nil {
		return &CreateOrderResult{Errors: []string{domainMessage(err)}}, nil
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return &CreateOrderResult{Errors: []string{fmt.Sprintf("Failed to create order: %s", err.Error())}}, nil
	}

	return &CreateOrderResult{Order: order, Success: true}, nil
}

// GetByID returns a single order by ID with customer and products loaded
func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*crm.Order, error) {
	return s.orderRepo.FindByID(ctx, id)
}

// List returns all orders matching the filter
func (s *OrderService) List(ctx context.Context, filter crm.OrderFilter) ([]crm.Order, error) {
	return s.orderRepo.FindAll(ctx, filter)
}
