package graph

import (
	"github.com/graphql-go/graphql"
)

// NewSchema wires the query and mutation roots against the resolver.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	idArg := graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.ID},
	}

	connectionArgs := func(filterType *graphql.InputObject) graphql.FieldConfigArgument {
		return graphql.FieldConfigArgument{
			"filter": &graphql.ArgumentConfig{Type: filterType},
			"first":  &graphql.ArgumentConfig{Type: graphql.Int},
			"after":  &graphql.ArgumentConfig{Type: graphql.String},
		}
	}

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"hello": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return "Hello, GraphQL!", nil
				},
			},

			"customer": &graphql.Field{Type: customerType, Args: idArg, Resolve: r.resolveCustomer},
			"product":  &graphql.Field{Type: productType, Args: idArg, Resolve: r.resolveProduct},
			"order":    &graphql.Field{Type: orderType, Args: idArg, Resolve: r.resolveOrder},

			"customersList": &graphql.Field{Type: graphql.NewList(customerType), Resolve: r.resolveCustomersList},
			"productsList":  &graphql.Field{Type: graphql.NewList(productType), Resolve: r.resolveProductsList},
			"ordersList":    &graphql.Field{Type: graphql.NewList(orderType), Resolve: r.resolveOrdersList},

			"allCustomers": &graphql.Field{
				Type:    customerConnectionType,
				Args:    connectionArgs(customerFilterInputType),
				Resolve: r.resolveAllCustomers,
			},
			"allProducts": &graphql.Field{
				Type:    productConnectionType,
				Args:    connectionArgs(productFilterInputType),
				Resolve: r.resolveAllProducts,
			},
			"allOrders": &graphql.Field{
				Type:    orderConnectionType,
				Args:    connectionArgs(orderFilterInputType),
				Resolve: r.resolveAllOrders,
			},

			"customerCount": &graphql.Field{Type: graphql.Int, Resolve: r.resolveCustomerCount},
			"productCount":  &graphql.Field{Type: graphql.Int, Resolve: r.resolveProductCount},
			"orderCount":    &graphql.Field{Type: graphql.Int, Resolve: r.resolveOrderCount},
			"totalRevenue":  &graphql.Field{Type: graphql.Float, Resolve: r.resolveTotalRevenue},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createCustomer": &graphql.Field{
				Type: createCustomerPayloadType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(customerInputType)},
				},
				Resolve: r.resolveCreateCustomer,
			},
			"bulkCreateCustomers": &graphql.Field{
				Type: bulkCreateCustomersPayloadType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(customerInputType)))},
				},
				Resolve: r.resolveBulkCreateCustomers,
			},
			"createProduct": &graphql.Field{
				Type: createProductPayloadType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(productInputType)},
				},
				Resolve: r.resolveCreateProduct,
			},
			"createOrder": &graphql.Field{
				Type: createOrderPayloadType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(orderInputType)},
				},
				Resolve: r.resolveCreateOrder,
			},
			"updateLowStockProducts": &graphql.Field{
				Type:    updateLowStockProductsPayloadType,
				Resolve: r.resolveUpdateLowStockProducts,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
