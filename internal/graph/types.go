// Package graph declares the CRM GraphQL schema by hand: explicit object
// types with per-field resolvers mapping onto the storage records, no
// reflective auto-derivation.
package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/example/crm/internal/models"
	"github.com/example/crm/internal/services"
)

var customerType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Customer",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.ID),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.Customer).ID.String(), nil
			},
		},
		"name": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.Customer).Name, nil
			},
		},
		"email": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.Customer).Email, nil
			},
		},
		"phone": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if phone := p.Source.(*models.Customer).Phone; phone != nil {
					return *phone, nil
				}
				return nil, nil
			},
		},
		"createdAt": &graphql.Field{
			Type: graphql.NewNonNull(graphql.DateTime),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.Customer).CreatedAt, nil
			},
		},
	},
})

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.ID),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.Product).ID.String(), nil
			},
		},
		"name": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.Product).Name, nil
			},
		},
		"price": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Float),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.Product).Price.InexactFloat64(), nil
			},
		},
		"stock": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.Product).Stock, nil
			},
		},
		"createdAt": &graphql.Field{
			Type: graphql.NewNonNull(graphql.DateTime),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.Product).CreatedAt, nil
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
				return p.Source.(*models.Order).ID.String(), nil
			},
		},
		"customer": &graphql.Field{
			Type: customerType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if customer := p.Source.(*models.Order).Customer; customer != nil {
					return customer, nil
				}
				return nil, nil
			},
		},
		"products": &graphql.Field{
			Type: graphql.NewList(productType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				products := p.Source.(*models.Order).Products
				out := make([]*models.Product, len(products))
				for i := range products {
					out[i] = &products[i]
				}
				return out, nil
			},
		},
		"totalAmount": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Float),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.Order).TotalAmount.InexactFloat64(), nil
			},
		},
		"orderDate": &graphql.Field{
			Type: graphql.NewNonNull(graphql.DateTime),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.Order).OrderDate, nil
			},
		},
		"createdAt": &graphql.Field{
			Type: graphql.NewNonNull(graphql.DateTime),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.Order).CreatedAt, nil
			},
		},
	},
})

var customerConnectionType = newConnectionType("Customer", customerType)
var productConnectionType = newConnectionType("Product", productType)
var orderConnectionType = newConnectionType("Order", orderType)

var createCustomerPayloadType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CreateCustomerPayload",
	Fields: graphql.Fields{
		"success": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*services.CustomerResult).Success, nil
			},
		},
		"customer": &graphql.Field{
			Type: customerType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if customer := p.Source.(*services.CustomerResult).Customer; customer != nil {
					return customer, nil
				}
				return nil, nil
			},
		},
		"message": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*services.CustomerResult).Message, nil
			},
		},
		"errors": &graphql.Field{
			Type: graphql.NewList(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*services.CustomerResult).Errors, nil
			},
		},
	},
})

var bulkCreateCustomersPayloadType = graphql.NewObject(graphql.ObjectConfig{
	Name: "BulkCreateCustomersPayload",
	Fields: graphql.Fields{
		"customers": &graphql.Field{
			Type: graphql.NewList(customerType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*services.BulkCustomersResult).Customers, nil
			},
		},
		"errors": &graphql.Field{
			Type: graphql.NewList(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*services.BulkCustomersResult).Errors, nil
			},
		},
		"successCount": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*services.BulkCustomersResult).SuccessCount, nil
			},
		},
		"totalCount": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*services.BulkCustomersResult).TotalCount, nil
			},
		},
	},
})

var createProductPayloadType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CreateProductPayload",
	Fields: graphql.Fields{
		"success": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*services.ProductResult).Success, nil
			},
		},
		"product": &graphql.Field{
			Type: productType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if product := p.Source.(*services.ProductResult).Product; product != nil {
					return product, nil
				}
				return nil, nil
			},
		},
		"message": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*services.ProductResult).Message, nil
			},
		},
		"errors": &graphql.Field{
			Type: graphql.NewList(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*services.ProductResult).Errors, nil
			},
		},
	},
})

var createOrderPayloadType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CreateOrderPayload",
	Fields: graphql.Fields{
		"success": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*services.OrderResult).Success, nil
			},
		},
		"order": &graphql.Field{
			Type: orderType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if order := p.Source.(*services.OrderResult).Order; order != nil {
					return order, nil
				}
				return nil, nil
			},
		},
		"message": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*services.OrderResult).Message, nil
			},
		},
		"errors": &graphql.Field{
			Type: graphql.NewList(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*services.OrderResult).Errors, nil
			},
		},
	},
})

var updateLowStockProductsPayloadType = graphql.NewObject(graphql.ObjectConfig{
	Name: "UpdateLowStockProductsPayload",
	Fields: graphql.Fields{
		"success": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*services.RestockResult).Success, nil
			},
		},
		"products": &graphql.Field{
			Type: graphql.NewList(productType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*services.RestockResult).Products, nil
			},
		},
		"message": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*services.RestockResult).Message, nil
			},
		},
	},
})
