package graphql

import (
	"time"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
	"github.com/shopspring/decimal"

	appcrm "github.com/Ab-Ezekiel/alx-backend-graphql-crm/internal/application/crm"
	"github.com/Ab-Ezekiel/alx-backend-graphql-crm/internal/domain/crm"
)

// Resolver wires the GraphQL schema to the application services
type Resolver struct {
	Customers *appcrm.CustomerService
	Products  *appcrm.ProductService
	Orders    *appcrm.OrderService
}

// NewResolver creates a new Resolver
func NewResolver(customers *appcrm.CustomerService, products *appcrm.ProductService, orders *appcrm.OrderService) *Resolver {
	return &Resolver{Customers: customers, Products: products, Orders: orders}
}

var customerFilterInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CustomerFilterInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"nameIcontains":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"emailIcontains": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"createdAtGte":   &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"createdAtLte":   &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"phonePattern":   &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var productFilterInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ProductFilterInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"nameIcontains": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"priceGte":      &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"priceLte":      &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"stockGte":      &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"stockLte":      &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"stockLt":       &graphql.InputObjectFieldConfig{Type: graphql.Int},
	},
})

var orderFilterInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "OrderFilterInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"totalAmountGte": &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"totalAmountLte": &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"orderDateGte":   &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"orderDateLte":   &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"customerName":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"productName":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"productId":      &graphql.InputObjectFieldConfig{Type: graphql.ID},
	},
})

func (r *Resolver) queryType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"hello": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return "Hello, GraphQL!", nil
				},
			},
			"customers": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(customerType)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Customers.List(p.Context, crm.CustomerFilter{})
				},
			},
			"products": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(productType)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Products.List(p.Context, crm.ProductFilter{})
				},
			},
			"orders": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(orderType)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Orders.List(p.Context, crm.OrderFilter{})
				},
			},
			"allCustomers": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(customerType)),
				Args: graphql.FieldConfigArgument{
					"filter":  &graphql.ArgumentConfig{Type: customerFilterInput},
					"orderBy": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Customers.List(p.Context, buildCustomerFilter(p.Args))
				},
			},
			"allProducts": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(productType)),
				Args: graphql.FieldConfigArgument{
					"filter":  &graphql.ArgumentConfig{Type: productFilterInput},
					"orderBy": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Products.List(p.Context, buildProductFilter(p.Args))
				},
			},
			"allOrders": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(orderType)),
				Args: graphql.FieldConfigArgument{
					"filter":  &graphql.ArgumentConfig{Type: orderFilterInput},
					"orderBy": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Orders.List(p.Context, buildOrderFilter(p.Args))
				},
			},
		},
	})
}

func buildCustomerFilter(args map[string]interface{}) crm.CustomerFilter {
	filter := crm.CustomerFilter{OrderBy: stringArg(args, "orderBy")}
	f, ok := args["filter"].(map[string]interface{})
	if !ok {
		return filter
	}
	filter.NameContains = stringArg(f, "nameIcontains")
	filter.EmailContains = stringArg(f, "emailIcontains")
	filter.CreatedAfter = timeArg(f, "createdAtGte")
	filter.CreatedBefore = timeArg(f, "createdAtLte")
	filter.PhonePrefix = stringArg(f, "phonePattern")
	return filter
}

func buildProductFilter(args map[string]interface{}) crm.ProductFilter {
	filter := crm.ProductFilter{OrderBy: stringArg(args, "orderBy")}
	f, ok := args["filter"].(map[string]interface{})
	if !ok {
		return filter
	}
	filter.NameContains = stringArg(f, "nameIcontains")
	filter.PriceMin = decimalArg(f, "priceGte")
	filter.PriceMax = decimalArg(f, "priceLte")
	filter.StockMin = intArg(f, "stockGte")
	filter.StockMax = intArg(f, "stockLte")
	filter.StockBelow = intArg(f, "stockLt")
	return filter
}

func buildOrderFilter(args map[string]interface{}) crm.OrderFilter {
	filter := crm.OrderFilter{OrderBy: stringArg(args, "orderBy")}
	f, ok := args["filter"].(map[string]interface{})
	if !ok {
		return filter
	}
	filter.TotalMin = decimalArg(f, "totalAmountGte")
	filter.TotalMax = decimalArg(f, "totalAmountLte")
	filter.OrderedAfter = timeArg(f, "orderDateGte")
	filter.OrderedBefore = timeArg(f, "orderDateLte")
	filter.CustomerName = stringArg(f, "customerName")
	filter.ProductName = stringArg(f, "productName")
	if raw := stringArg(f, "productId"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filter.ProductID = &id
		}
	}
	return filter
}

func stringArg(args map[string]interface{}, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func intArg(args map[string]interface{}, key string) *int {
	if v, ok := args[key].(int); ok {
		return &v
	}
	return nil
}

func decimalArg(args map[string]interface{}, key string) *decimal.Decimal {
	if v, ok := args[key].(float64); ok {
		d := decimal.NewFromFloat(v)
		return &d
	}
	return nil
}

func timeArg(args map[string]interface{}, key string) *time.Time {
	if v, ok := args[key].(time.Time); ok {
		return &v
	}
	return nil
}
