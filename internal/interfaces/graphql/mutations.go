package graphql

import (
	"time"

	"github.com/graphql-go/graphql"

	appcrm "github.com/Ab-Ezekiel/alx-backend-graphql-crm/internal/application/crm"
)

var customerInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CustomerInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"email": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"phone": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var productInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ProductInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		// Price is a string so exact decimal values survive JSON transport
		"price": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"stock": &graphql.InputObjectFieldConfig{Type: graphql.Int},
	},
})

var orderInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "OrderInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"customerId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		"productIds": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.ID)))},
		"orderDate":  &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
	},
})

var createCustomerPayload = graphql.NewObject(graphql.ObjectConfig{
	Name: "CreateCustomerPayload",
	Fields: graphql.Fields{
		"customer": &graphql.Field{
			Type: customerType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				result := p.Source.(*appcrm.CreateCustomerResult)
				if result.Customer == nil {
					return nil, nil
				}
				return result.Customer, nil
			},
		},
		"success": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*appcrm.CreateCustomerResult).Success, nil
			},
		},
		"message": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*appcrm.CreateCustomerResult).Message, nil
			},
		},
		"errors": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(graphql.String)),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*appcrm.CreateCustomerResult).Errors, nil
			},
		},
	},
})

var bulkCreateCustomersPayload = graphql.NewObject(graphql.ObjectConfig{
	Name: "BulkCreateCustomersPayload",
	Fields: graphql.Fields{
		"customers": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(customerType)),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*appcrm.BulkCreateCustomersResult).Customers, nil
			},
		},
		"errors": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(graphql.String)),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*appcrm.BulkCreateCustomersResult).Errors, nil
			},
		},
	},
})

var createProductPayload = graphql.NewObject(graphql.ObjectConfig{
	Name: "CreateProductPayload",
	Fields: graphql.Fields{
		"product": &graphql.Field{
			Type: productType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				result := p.Source.(*appcrm.CreateProductResult)
				if result.Product == nil {
					return nil, nil
				}
				return result.Product, nil
			},
		},
		"success": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*appcrm.CreateProductResult).Success, nil
			},
		},
		"errors": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(graphql.String)),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*appcrm.CreateProductResult).Errors, nil
			},
		},
	},
})

var createOrderPayload = graphql.NewObject(graphql.ObjectConfig{
	Name: "CreateOrderPayload",
	Fields: graphql.Fields{
		"order": &graphql.Field{
			Type: orderType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				result := p.Source.(*appcrm.CreateOrderResult)
				if result.Order == nil {
					return nil, nil
				}
				return result.Order, nil
			},
		},
		"success": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*appcrm.CreateOrderResult).Success, nil
			},
		},
		"errors": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(graphql.String)),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*appcrm.CreateOrderResult).Errors, nil
			},
		},
	},
})

var updateLowStockPayload = graphql.NewObject(graphql.ObjectConfig{
	Name: "UpdateLowStockProductsPayload",
	Fields: graphql.Fields{
		"updatedProducts": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(productType)),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*appcrm.UpdateLowStockResult).UpdatedProducts, nil
			},
		},
		"success": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*appcrm.UpdateLowStockResult).Success, nil
			},
		},
		"message": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*appcrm.UpdateLowStockResult).Message, nil
			},
		},
	},
})

func (r *Resolver) mutationType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createCustomer": &graphql.Field{
				Type: graphql.NewNonNull(createCustomerPayload),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(customerInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input := decodeCustomerInput(p.Args["input"])
					return r.Customers.Create(p.Context, input)
				},
			},
			"bulkCreateCustomers": &graphql.Field{
				Type: graphql.NewNonNull(bulkCreateCustomersPayload),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(customerInput)))},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					raw, _ := p.Args["input"].([]interface{})
					inputs := make([]appcrm.CustomerInput, 0, len(raw))
					for _, item := range raw {
						inputs = append(inputs, decodeCustomerInput(item))
					}
					return r.Customers.BulkCreate(p.Context, inputs)
				},
			},
			"createProduct": &graphql.Field{
				Type: graphql.NewNonNull(createProductPayload),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(productInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					fields, _ := p.Args["input"].(map[string]interface{})
					input := appcrm.ProductInput{
						Name:  stringArg(fields, "name"),
						Price: stringArg(fields, "price"),
						Stock: intArg(fields, "stock"),
					}
					return r.Products.Create(p.Context, input)
				},
			},
			"createOrder": &graphql.Field{
				Type: graphql.NewNonNull(createOrderPayload),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(orderInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					fields, _ := p.Args["input"].(map[string]interface{})
					input := appcrm.OrderInput{
						CustomerID: stringArg(fields, "customerId"),
					}
					if rawIDs, ok := fields["productIds"].([]interface{}); ok {
						for _, id := range rawIDs {
							if s, ok := id.(string); ok {
								input.ProductIDs = append(input.ProductIDs, s)
							}
						}
					}
					if date, ok := fields["orderDate"].(time.Time); ok {
						input.OrderDate = &date
					}
					return r.Orders.Create(p.Context, input)
				},
			},
			"updateLowStockProducts": &graphql.Field{
				Type: graphql.NewNonNull(updateLowStockPayload),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Products.UpdateLowStock(p.Context)
				},
			},
		},
	})
}

func decodeCustomerInput(raw interface{}) appcrm.CustomerInput {
	fields, _ := raw.(map[string]interface{})
	return appcrm.CustomerInput{
		Name:  stringArg(fields, "name"),
		Email: stringArg(fields, "email"),
		Phone: stringArg(fields, "phone"),
	}
}
