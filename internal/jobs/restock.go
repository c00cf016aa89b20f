package jobs

import (
	"fmt"
	"time"

	"github.com/machinebox/graphql"
)

// RestockLowStock invokes the updateLowStockProducts mutation and logs every
// product the server restocked.
func RestockLowStock(client *graphql.Client, logPath string) error {
	ctx, cancel := jobContext()
	defer cancel()

	req := graphql.NewRequest(`
		mutation {
			updateLowStockProducts {
				success
				message
				products {
					name
					stock
				}
			}
		}`)

	var resp struct {
		UpdateLowStockProducts struct {
			Success  bool   `json:"success"`
			Message  string `json:"message"`
			Products []struct {
				Name  string `json:"name"`
				Stock int    `json:"stock"`
			} `json:"products"`
		} `json:"updateLowStockProducts"`
	}
	if err := client.Run(ctx, req, &resp); err != nil {
		return fmt.Errorf("restock mutation: %w", err)
	}

	stamp := logStamp(time.Now())
	for _, product := range resp.UpdateLowStockProducts.Products {
		line := fmt.Sprintf("%s - Restocked %s, new stock: %d", stamp, product.Name, product.Stock)
		if err := appendLog(logPath, line); err != nil {
			return err
		}
	}

	fmt.Println(resp.UpdateLowStockProducts.Message)
	return nil
}
