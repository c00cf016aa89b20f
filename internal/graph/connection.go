package graph

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/graphql-go/graphql"
)

const cursorPrefix = "cursor:"

// Edge pairs a node with its opaque cursor.
type Edge struct {
	Node   interface{}
	Cursor string
}

// PageInfo carries the cursor-pagination metadata for a connection.
type PageInfo struct {
	HasNextPage     bool
	HasPreviousPage bool
	StartCursor     string
	EndCursor       string
}

// Connection is a cursor-paginated slice of query results.
type Connection struct {
	Edges      []Edge
	PageInfo   PageInfo
	TotalCount int
}

func encodeCursor(offset int) string {
	return base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("%s%d", cursorPrefix, offset)))
}

func decodeCursor(cursor string) (int, error) {
	raw, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return 0, fmt.Errorf("invalid cursor %q", cursor)
	}
	value := strings.TrimPrefix(string(raw), cursorPrefix)
	offset, err := strconv.Atoi(value)
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("invalid cursor %q", cursor)
	}
	return offset, nil
}

// paginationArgs reads the relay-style first/after arguments. A missing
// first means "no limit"; first: 0 asks for an empty page.
func paginationArgs(p graphql.ResolveParams) (limit, offset int, err error) {
	limit = -1
	if first, ok := p.Args["first"].(int); ok {
		if first < 0 {
			return 0, 0, fmt.Errorf("first must be non-negative")
		}
		limit = first
	}
	if after, ok := p.Args["after"].(string); ok && after != "" {
		start, err := decodeCursor(after)
		if err != nil {
			return 0, 0, err
		}
		offset = start + 1
	}
	return limit, offset, nil
}

// newConnection builds a connection from one fetched page. nodes holds the
// page starting at offset; total is the unpaginated match count.
func newConnection(nodes []interface{}, total, offset int) *Connection {
	conn := &Connection{
		Edges:      make([]Edge, 0, len(nodes)),
		TotalCount: total,
	}
	for i, node := range nodes {
		conn.Edges = append(conn.Edges, Edge{Node: node, Cursor: encodeCursor(offset + i)})
	}
	if len(conn.Edges) > 0 {
		conn.PageInfo.StartCursor = conn.Edges[0].Cursor
		conn.PageInfo.EndCursor = conn.Edges[len(conn.Edges)-1].Cursor
	}
	conn.PageInfo.HasPreviousPage = offset > 0
	conn.PageInfo.HasNextPage = offset+len(nodes) < total
	return conn
}

var pageInfoType = graphql.NewObject(graphql.ObjectConfig{
	Name: "PageInfo",
	Fields: graphql.Fields{
		"hasNextPage": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(PageInfo).HasNextPage, nil
			},
		},
		"hasPreviousPage": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(PageInfo).HasPreviousPage, nil
			},
		},
		"startCursor": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(PageInfo).StartCursor, nil
			},
		},
		"endCursor": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(PageInfo).EndCursor, nil
			},
		},
	},
})

// newConnectionType declares the relay edge and connection object types for
// one node type.
func newConnectionType(name string, nodeType *graphql.Object) *graphql.Object {
	edgeType := graphql.NewObject(graphql.ObjectConfig{
		Name: name + "Edge",
		Fields: graphql.Fields{
			"node": &graphql.Field{
				Type: nodeType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(Edge).Node, nil
				},
			},
			"cursor": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(Edge).Cursor, nil
				},
			},
		},
	})

	return graphql.NewObject(graphql.ObjectConfig{
		Name: name + "Connection",
		Fields: graphql.Fields{
			"edges": &graphql.Field{
				Type: graphql.NewList(edgeType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*Connection).Edges, nil
				},
			},
			"pageInfo": &graphql.Field{
				Type: graphql.NewNonNull(pageInfoType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*Connection).PageInfo, nil
				},
			},
			"totalCount": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*Connection).TotalCount, nil
				},
			},
		},
	})
}
