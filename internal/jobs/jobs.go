// Package jobs implements the periodic CRM jobs. Each job opens one GraphQL
// request against the running server, appends its outcome to a fixed log
// file, and reports failures on stdout without crashing the scheduler.
package jobs

import (
	"context"
	"os"
	"time"

	"github.com/machinebox/graphql"
)

// requestTimeout bounds every job's single network operation.
const requestTimeout = 30 * time.Second

// NewClient builds the GraphQL client the jobs share.
func NewClient(endpoint string) *graphql.Client {
	return graphql.NewClient(endpoint)
}

func jobContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

// heartbeatStamp matches the DD/MM/YYYY-HH:MM:SS heartbeat log format.
func heartbeatStamp(t time.Time) string {
	return t.Format("02/01/2006-15:04:05")
}

// logStamp matches the YYYY-MM-DD HH:MM:SS format of the other job logs.
func logStamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

// appendLog appends one line to the job's log file, creating it on first use.
func appendLog(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(line + "\n")
	return err
}
