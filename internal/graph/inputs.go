package graph

import (
	"time"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
	"github.com/shopspring/decimal"

	"github.com/example/crm/internal/filters"
	"github.com/example/crm/internal/services"
)

var customerInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CustomerInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"email": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"phone": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var productInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ProductInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"price": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		"stock": &graphql.InputObjectFieldConfig{Type: graphql.Int},
	},
})

var orderInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "OrderInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"customerId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		"productIds": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.ID)))},
		"orderDate":  &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
	},
})

var customerFilterInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CustomerFilterInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":         &graphql.InputObjectFieldConfig{Type: graphql.String},
		"email":        &graphql.InputObjectFieldConfig{Type: graphql.String},
		"createdAtGte": &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"createdAtLte": &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"phonePattern": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var productFilterInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ProductFilterInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"priceGte":   &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"priceLte":   &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"stockGte":   &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"stockLte":   &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"stockExact": &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"lowStock":   &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
	},
})

var orderFilterInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "OrderFilterInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"totalAmountGte": &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"totalAmountLte": &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"orderDateGte":   &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"orderDateLte":   &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"customerName":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"customerEmail":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"productName":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"productId":      &graphql.InputObjectFieldConfig{Type: graphql.ID},
		"highValueOrder": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
	},
})

func stringArg(args map[string]interface{}, key string) *string {
	if value, ok := args[key].(string); ok {
		return &value
	}
	return nil
}

func floatArg(args map[string]interface{}, key string) *float64 {
	switch value := args[key].(type) {
	case float64:
		return &value
	case int:
		f := float64(value)
		return &f
	}
	return nil
}

func intArg(args map[string]interface{}, key string) *int {
	if value, ok := args[key].(int); ok {
		return &value
	}
	return nil
}

func boolArg(args map[string]interface{}, key string) *bool {
	if value, ok := args[key].(bool); ok {
		return &value
	}
	return nil
}

func timeArg(args map[string]interface{}, key string) *time.Time {
	if value, ok := args[key].(time.Time); ok {
		return &value
	}
	return nil
}

func decodeCustomerFilter(arg interface{}) *filters.CustomerFilter {
	values, ok := arg.(map[string]interface{})
	if !ok {
		return nil
	}
	return &filters.CustomerFilter{
		Name:         stringArg(values, "name"),
		Email:        stringArg(values, "email"),
		CreatedAtGte: timeArg(values, "createdAtGte"),
		CreatedAtLte: timeArg(values, "createdAtLte"),
		PhonePattern: stringArg(values, "phonePattern"),
	}
}

func decodeProductFilter(arg interface{}) *filters.ProductFilter {
	values, ok := arg.(map[string]interface{})
	if !ok {
		return nil
	}
	return &filters.ProductFilter{
		Name:       stringArg(values, "name"),
		PriceGte:   floatArg(values, "priceGte"),
		PriceLte:   floatArg(values, "priceLte"),
		StockGte:   intArg(values, "stockGte"),
		StockLte:   intArg(values, "stockLte"),
		StockExact: intArg(values, "stockExact"),
		LowStock:   boolArg(values, "lowStock"),
	}
}

func decodeOrderFilter(arg interface{}) *filters.OrderFilter {
	values, ok := arg.(map[string]interface{})
	if !ok {
		return nil
	}
	filter := &filters.OrderFilter{
		TotalAmountGte: floatArg(values, "totalAmountGte"),
		TotalAmountLte: floatArg(values, "totalAmountLte"),
		OrderDateGte:   timeArg(values, "orderDateGte"),
		OrderDateLte:   timeArg(values, "orderDateLte"),
		CustomerName:   stringArg(values, "customerName"),
		CustomerEmail:  stringArg(values, "customerEmail"),
		ProductName:    stringArg(values, "productName"),
		HighValueOrder: boolArg(values, "highValueOrder"),
	}
	if raw := stringArg(values, "productId"); raw != nil {
		if id, err := uuid.Parse(*raw); err == nil {
			filter.ProductID = &id
		}
	}
	return filter
}

func decodeCustomerInput(values map[string]interface{}) services.CustomerInput {
	input := services.CustomerInput{}
	if name, ok := values["name"].(string); ok {
		input.Name = name
	}
	if email, ok := values["email"].(string); ok {
		input.Email = email
	}
	input.Phone = stringArg(values, "phone")
	return input
}

func decodeProductInput(values map[string]interface{}) services.ProductInput {
	input := services.ProductInput{}
	if name, ok := values["name"].(string); ok {
		input.Name = name
	}
	if price := floatArg(values, "price"); price != nil {
		input.Price = decimal.NewFromFloat(*price)
	}
	input.Stock = intArg(values, "stock")
	return input
}
