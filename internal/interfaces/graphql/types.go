package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/Ab-Ezekiel/alx-backend-graphql-crm/internal/domain/crm"
)

// customerType exposes the Customer entity. IDs serialize as strings and
// timestamps as RFC3339 via the DateTime scalar.
var customerType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Customer",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.ID),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return customerOf(p.Source).ID.String(), nil
			},
		},
		"name": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return customerOf(p.Source).Name, nil
			},
		},
		"email": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return customerOf(p.Source).Email, nil
			},
		},
		"phone": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return customerOf(p.Source).Phone, nil
			},
		},
		"createdAt": &graphql.Field{
			Type: graphql.DateTime,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return customerOf(p.Source).CreatedAt, nil
			},
		},
	},
})

// productType exposes the Product entity. Price serializes as a string to
// keep the exact decimal representation.
var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.ID),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return productOf(p.Source).ID.String(), nil
			},
		},
		"name": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return productOf(p.Source).Name, nil
			},
		},
		"price": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return productOf(p.Source).Price.String(), nil
			},
		},
		"stock": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return productOf(p.Source).Stock, nil
			},
		},
		"createdAt": &graphql.Field{
			Type: graphql.DateTime,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return productOf(p.Source).CreatedAt, nil
			},
		},
	},
})

var orderType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Order",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.ID),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return orderOf(p.Source).ID.String(), nil
			},
		},
		"customer": &graphql.Field{
			Type: customerType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				order := orderOf(p.Source)
				if order.Customer == nil {
					return nil, nil
				}
				return *order.Customer, nil
			},
		},
		"products": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(productType)),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return orderOf(p.Source).Products, nil
			},
		},
		"totalAmount": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return orderOf(p.Source).TotalAmount.String(), nil
			},
		},
		"orderDate": &graphql.Field{
			Type: graphql.DateTime,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return orderOf(p.Source).OrderDate, nil
			},
		},
		"createdAt": &graphql.Field{
			Type: graphql.DateTime,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return orderOf(p.Source).CreatedAt, nil
			},
		},
	},
})

// Sources arrive either as values (from list resolvers) or pointers (from
// mutation payloads).

func customerOf(source interface{}) *crm.Customer {
	switch v := source.(type) {
	case crm.Customer:
		return &v
	case *crm.Customer:
		return v
	}
	return &crm.Customer{}
}

func productOf(source interface{}) *crm.Product {
	switch v := source.(type) {
	case crm.Product:
		return &v
	case *crm.Product:
		return v
	}
	return &crm.Product{}
}

func orderOf(source interface{}) *crm.Order {
	switch v := source.(type) {
	case crm.Order:
		return &v
	case *crm.Order:
		return v
	}
	return &crm.Order{}
}
