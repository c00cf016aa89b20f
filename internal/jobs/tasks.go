package jobs

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/machinebox/graphql"
)

// TypeGenerateReport is the task type for the weekly CRM report.
const TypeGenerateReport = "crm:generate_report"

// NewGenerateReportTask builds the report task; it carries no payload.
func NewGenerateReportTask() *asynq.Task {
	return asynq.NewTask(TypeGenerateReport, nil)
}

// ReportTaskHandler processes report tasks from the queue.
type ReportTaskHandler struct {
	client  *graphql.Client
	logPath string
}

// NewReportTaskHandler constructs ReportTaskHandler.
func NewReportTaskHandler(client *graphql.Client, logPath string) *ReportTaskHandler {
	return &ReportTaskHandler{client: client, logPath: logPath}
}

// ProcessTask runs one report. Failures are printed and swallowed: the job
// contract is non-fatal, no retry.
func (h *ReportTaskHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	if err := GenerateReport(h.client, h.logPath); err != nil {
		fmt.Println("Error generating CRM report:", err)
	}
	return nil
}
