package main

import (
	"log"

	"github.com/hibiken/asynq"

	"github.com/example/crm/internal/config"
	"github.com/example/crm/internal/jobs"
)

// reportCronSpec enqueues the weekly CRM report every Monday at 06:00.
const reportCronSpec = "0 6 * * 1"

func main() {
	cfg := config.Load()
	redisOpt := asynq.RedisClientOpt{Addr: cfg.RedisAddr}

	scheduler := asynq.NewScheduler(redisOpt, nil)
	if _, err := scheduler.Register(reportCronSpec, jobs.NewGenerateReportTask()); err != nil {
		log.Fatalf("failed to register report schedule: %v", err)
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			log.Fatalf("asynq scheduler stopped: %v", err)
		}
	}()

	server := asynq.NewServer(redisOpt, asynq.Config{Concurrency: 1})
	mux := asynq.NewServeMux()
	mux.Handle(jobs.TypeGenerateReport,
		jobs.NewReportTaskHandler(jobs.NewClient(cfg.GraphQLURL), cfg.ReportLogPath))

	log.Println("CRM worker started")
	if err := server.Run(mux); err != nil {
		log.Fatalf("asynq server stopped: %v", err)
	}
}
