package jobs

import (
	"fmt"
	"time"

	"github.com/machinebox/graphql"
)

// reminderWindow is how far back the reminder job looks for orders.
const reminderWindow = 7 * 24 * time.Hour

// SendOrderReminders queries orders placed inside the reminder window and
// logs one line per order with the customer's email.
func SendOrderReminders(client *graphql.Client, logPath string) error {
	ctx, cancel := jobContext()
	defer cancel()

	req := graphql.NewRequest(`
		query recentOrders($date: DateTime) {
			allOrders(filter: {orderDateGte: $date}) {
				edges {
					node {
						id
						customer {
							email
						}
					}
				}
			}
		}`)
	req.Var("date", time.Now().Add(-reminderWindow).Format(time.RFC3339))

	var resp struct {
		AllOrders struct {
			Edges []struct {
				Node struct {
					ID       string `json:"id"`
					Customer struct {
						Email string `json:"email"`
					} `json:"customer"`
				} `json:"node"`
			} `json:"edges"`
		} `json:"allOrders"`
	}
	if err := client.Run(ctx, req, &resp); err != nil {
		return fmt.Errorf("recent orders query: %w", err)
	}

	stamp := logStamp(time.Now())
	for _, edge := range resp.AllOrders.Edges {
		line := fmt.Sprintf("%s - Order ID: %s, Customer Email: %s",
			stamp, edge.Node.ID, edge.Node.Customer.Email)
		if err := appendLog(logPath, line); err != nil {
			return err
		}
	}

	fmt.Println("Order reminders processed!")
	return nil
}
