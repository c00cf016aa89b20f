package graph

import (
	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
)

func (r *Resolver) resolveCustomer(p graphql.ResolveParams) (interface{}, error) {
	id, ok := parseID(p.Args["id"])
	if !ok {
		return nil, nil
	}
	customer, err := r.customers.Get(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	return customer, nil
}

func (r *Resolver) resolveProduct(p graphql.ResolveParams) (interface{}, error) {
	id, ok := parseID(p.Args["id"])
	if !ok {
		return nil, nil
	}
	product, err := r.products.Get(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return product, nil
}

func (r *Resolver) resolveOrder(p graphql.ResolveParams) (interface{}, error) {
	id, ok := parseID(p.Args["id"])
	if !ok {
		return nil, nil
	}
	order, err := r.orders.Get(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return order, nil
}

func (r *Resolver) resolveCustomersList(p graphql.ResolveParams) (interface{}, error) {
	return r.customers.List()
}

func (r *Resolver) resolveProductsList(p graphql.ResolveParams) (interface{}, error) {
	return r.products.List()
}

func (r *Resolver) resolveOrdersList(p graphql.ResolveParams) (interface{}, error) {
	return r.orders.List()
}

func (r *Resolver) resolveAllCustomers(p graphql.ResolveParams) (interface{}, error) {
	limit, offset, err := paginationArgs(p)
	if err != nil {
		return nil, err
	}
	customers, total, err := r.customers.Filtered(decodeCustomerFilter(p.Args["filter"]), limit, offset)
	if err != nil {
		return nil, err
	}
	nodes := make([]interface{}, len(customers))
	for i, customer := range customers {
		nodes[i] = customer
	}
	return newConnection(nodes, int(total), offset), nil
}

func (r *Resolver) resolveAllProducts(p graphql.ResolveParams) (interface{}, error) {
	limit, offset, err := paginationArgs(p)
	if err != nil {
		return nil, err
	}
	products, total, err := r.products.Filtered(decodeProductFilter(p.Args["filter"]), limit, offset)
	if err != nil {
		return nil, err
	}
	nodes := make([]interface{}, len(products))
	for i, product := range products {
		nodes[i] = product
	}
	return newConnection(nodes, int(total), offset), nil
}

func (r *Resolver) resolveAllOrders(p graphql.ResolveParams) (interface{}, error) {
	limit, offset, err := paginationArgs(p)
	if err != nil {
		return nil, err
	}
	orders, total, err := r.orders.Filtered(decodeOrderFilter(p.Args["filter"]), limit, offset)
	if err != nil {
		return nil, err
	}
	nodes := make([]interface{}, len(orders))
	for i, order := range orders {
		nodes[i] = order
	}
	return newConnection(nodes, int(total), offset), nil
}

func (r *Resolver) resolveCustomerCount(p graphql.ResolveParams) (interface{}, error) {
	count, err := r.customers.Count()
	return int(count), err
}

func (r *Resolver) resolveProductCount(p graphql.ResolveParams) (interface{}, error) {
	count, err := r.products.Count()
	return int(count), err
}

func (r *Resolver) resolveOrderCount(p graphql.ResolveParams) (interface{}, error) {
	count, err := r.orders.Count()
	return int(count), err
}

func (r *Resolver) resolveTotalRevenue(p graphql.ResolveParams) (interface{}, error) {
	return r.orders.TotalRevenue()
}

// parseID accepts the raw ID argument; a missing or malformed id is treated
// as "not found" rather than an error.
func parseID(arg interface{}) (uuid.UUID, bool) {
	raw, ok := arg.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
