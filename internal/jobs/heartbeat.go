package jobs

import (
	"fmt"
	"time"

	"github.com/machinebox/graphql"
)

// LogHeartbeat appends a liveness line to the heartbeat log. When a client
// is given it first probes the hello field, so the line also vouches for the
// GraphQL endpoint being responsive.
func LogHeartbeat(client *graphql.Client, logPath string) error {
	message := "CRM is alive"

	if client != nil {
		ctx, cancel := jobContext()
		defer cancel()

		var resp struct {
			Hello string `json:"hello"`
		}
		if err := client.Run(ctx, graphql.NewRequest(`query { hello }`), &resp); err != nil {
			message = fmt.Sprintf("CRM heartbeat: GraphQL endpoint unreachable (%v)", err)
		}
	}

	return appendLog(logPath, fmt.Sprintf("%s %s", heartbeatStamp(time.Now()), message))
}
