package graph

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
)

type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler returns the fiber handler executing GraphQL requests against the
// schema. Validation and resolver failures travel in the standard errors
// array with HTTP 200; only malformed transport requests get a 4xx.
func Handler(schema graphql.Schema) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req graphqlRequest

		switch c.Method() {
		case fiber.MethodGet:
			req.Query = c.Query("query")
			req.OperationName = c.Query("operationName")
			if raw := c.Query("variables"); raw != "" {
				if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
					return fiber.NewError(fiber.StatusBadRequest, "invalid variables")
				}
			}
		case fiber.MethodPost:
			if err := c.BodyParser(&req); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
			}
		default:
			return fiber.NewError(fiber.StatusMethodNotAllowed, "use GET or POST")
		}

		if req.Query == "" {
			return fiber.NewError(fiber.StatusBadRequest, "query is required")
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			OperationName:  req.OperationName,
			Context:        c.UserContext(),
		})

		return c.JSON(result)
	}
}
