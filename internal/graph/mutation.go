package graph

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"

	"github.com/example/crm/internal/services"
)

func (r *Resolver) resolveCreateCustomer(p graphql.ResolveParams) (interface{}, error) {
	values, ok := p.Args["input"].(map[string]interface{})
	if !ok {
		return &services.CustomerResult{
			Success: false,
			Errors:  []string{"Invalid input"},
			Message: "Customer creation failed",
		}, nil
	}
	return r.customers.Create(decodeCustomerInput(values)), nil
}

func (r *Resolver) resolveBulkCreateCustomers(p graphql.ResolveParams) (interface{}, error) {
	raw, ok := p.Args["input"].([]interface{})
	if !ok {
		return &services.BulkCustomersResult{Errors: []string{"Invalid input"}}, nil
	}
	inputs := make([]services.CustomerInput, 0, len(raw))
	for _, entry := range raw {
		if values, ok := entry.(map[string]interface{}); ok {
			inputs = append(inputs, decodeCustomerInput(values))
		}
	}
	return r.customers.BulkCreate(inputs), nil
}

func (r *Resolver) resolveCreateProduct(p graphql.ResolveParams) (interface{}, error) {
	values, ok := p.Args["input"].(map[string]interface{})
	if !ok {
		return &services.ProductResult{
			Success: false,
			Errors:  []string{"Invalid input"},
			Message: "Product creation failed",
		}, nil
	}
	return r.products.Create(decodeProductInput(values)), nil
}

func (r *Resolver) resolveCreateOrder(p graphql.ResolveParams) (interface{}, error) {
	values, ok := p.Args["input"].(map[string]interface{})
	if !ok {
		return &services.OrderResult{
			Success: false,
			Errors:  []string{"Invalid input"},
			Message: "Order creation failed",
		}, nil
	}

	rawCustomerID, _ := values["customerId"].(string)
	customerID, err := uuid.Parse(rawCustomerID)
	if err != nil {
		// An unparseable id cannot resolve to a row; same failure as unknown.
		return &services.OrderResult{
			Success: false,
			Errors:  []string{fmt.Sprintf("Customer with ID %s does not exist", rawCustomerID)},
			Message: "Order creation failed",
		}, nil
	}

	input := services.OrderInput{
		CustomerID: customerID,
		OrderDate:  timeArg(values, "orderDate"),
	}

	var malformed []string
	if rawIDs, ok := values["productIds"].([]interface{}); ok {
		for _, rawID := range rawIDs {
			raw, _ := rawID.(string)
			id, err := uuid.Parse(raw)
			if err != nil {
				malformed = append(malformed, raw)
				continue
			}
			input.ProductIDs = append(input.ProductIDs, id)
		}
	}
	if len(malformed) > 0 {
		return &services.OrderResult{
			Success: false,
			Errors:  []string{fmt.Sprintf("Products with IDs %v do not exist", malformed)},
			Message: "Order creation failed",
		}, nil
	}

	return r.orders.Create(input), nil
}

func (r *Resolver) resolveUpdateLowStockProducts(p graphql.ResolveParams) (interface{}, error) {
	result, err := r.products.RestockLowStock()
	if err != nil {
		return &services.RestockResult{
			Success: false,
			Message: fmt.Sprintf("Restock failed: %v", err),
		}, nil
	}
	return result, nil
}
