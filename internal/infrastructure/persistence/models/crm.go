package models

import (
	"time"

	"github.com/Ab-Ezekiel/alx-backend-graphql-crm/internal/domain/crm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerModel is the persistence model for the Customer domain entity.
// Email carries a unique index; case-insensitive uniqueness is enforced by
// the repository's existence check at write time.
type CustomerModel struct {
	BaseModel
	Name  string `gorm:"type:varchar(100);not null"`
	Email string `gorm:"type:varchar(254);not null;uniqueIndex"`
	Phone string `gorm:"type:varchar(20)"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *crm.Customer {
	return &crm.Customer{
		BaseEntity: m.ToBaseEntity(),
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
	}
}

// CustomerModelFromDomain creates a persistence model from a domain Customer.
func CustomerModelFromDomain(c *crm.Customer) *CustomerModel {
	m := &CustomerModel{
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
	}
	m.FromBaseEntity(c.BaseEntity)
	return m
}

// ProductModel is the persistence model for the Product domain entity.
type ProductModel struct {
	BaseModel
	Name  string          `gorm:"type:varchar(100);not null"`
	Price decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Stock int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *crm.Product {
	return &crm.Product{
		BaseEntity: m.ToBaseEntity(),
		Name:       m.Name,
		Price:      m.Price,
		Stock:      m.Stock,
	}
}

// ProductModelFromDomain creates a persistence model from a domain Product.
func ProductModelFromDomain(p *crm.Product) *ProductModel {
	m := &ProductModel{
		Name:  p.Name,
		Price: p.Price,
		Stock: p.Stock,
	}
	m.FromBaseEntity(p.BaseEntity)
	return m
}

// OrderModel is the persistence model for the Order domain entity. The
// product links live in the order_products join table.
type OrderModel struct {
	BaseModel
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Customer    *CustomerModel  `gorm:"foreignKey:CustomerID"`
	Products    []ProductModel  `gorm:"many2many:order_products;joinForeignKey:OrderID;joinReferences:ProductID"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	OrderDate   time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order entity.
func (m *OrderModel) ToDomain() *crm.Order {
	order := &crm.Order{
		BaseEntity:  m.ToBaseEntity(),
		CustomerID:  m.CustomerID,
		TotalAmount: m.TotalAmount,
		OrderDate:   m.OrderDate,
	}
	if m.Customer != nil {
		order.Customer = m.Customer.ToDomain()
	}
	if len(m.Products) > 0 {
		order.Products = make([]crm.Product, len(m.Products))
		for i, p := range m.Products {
			order.Products[i] = *p.ToDomain()
		}
	}
	return order
}

// OrderModelFromDomain creates a persistence model from a domain Order.
func OrderModelFromDomain(o *crm.Order) *OrderModel {
	m := &OrderModel{
		CustomerID:  o.CustomerID,
		TotalAmount: o.TotalAmount,
		OrderDate:   o.OrderDate,
	}
	m.FromBaseEntity(o.BaseEntity)
	if len(o.Products) > 0 {
		m.Products = make([]ProductModel, len(o.Products))
		for i, p := range o.Products {
			m.Products[i] = *ProductModelFromDomain(&p)
		}
	}
	return m
}

// All returns every model registered for auto-migration.
func All() []any {
	return []any{
		&CustomerModel{},
		&ProductModel{},
		&OrderModel{},
	}
}
