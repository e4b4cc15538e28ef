package graphql

import "github.com/graphql-go/graphql"

// NewSchema builds the executable schema from the resolver
func NewSchema(r *Resolver) (graphql.Schema, error) {
	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    r.queryType(),
		Mutation: r.mutationType(),
	})
}
