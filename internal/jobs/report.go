package jobs

import (
	"fmt"
	"time"

	"github.com/machinebox/graphql"
)

// GenerateReport queries the aggregate counters and appends one summary line
// to the report log.
func GenerateReport(client *graphql.Client, logPath string) error {
	ctx, cancel := jobContext()
	defer cancel()

	req := graphql.NewRequest(`
		query {
			customerCount
			orderCount
			totalRevenue
		}`)

	var resp struct {
		CustomerCount int     `json:"customerCount"`
		OrderCount    int     `json:"orderCount"`
		TotalRevenue  float64 `json:"totalRevenue"`
	}
	if err := client.Run(ctx, req, &resp); err != nil {
		return fmt.Errorf("report query: %w", err)
	}

	line := fmt.Sprintf("%s - Report: %d customers, %d orders, %.2f revenue",
		logStamp(time.Now()), resp.CustomerCount, resp.OrderCount, resp.TotalRevenue)
	if err := appendLog(logPath, line); err != nil {
		return err
	}

	fmt.Println("CRM report generated:", line)
	return nil
}
