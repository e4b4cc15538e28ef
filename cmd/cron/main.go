package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Ab-Ezekiel/alx-backend-graphql-crm/internal/infrastructure/config"
	"github.com/Ab-Ezekiel/alx-backend-graphql-crm/internal/infrastructure/jobs"
	"github.com/Ab-Ezekiel/alx-backend-graphql-crm/internal/infrastructure/logger"
)

func main() {
	once := flag.Bool("once", false, "run every job a single time and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting CRM job runner",
		zap.String("endpoint", cfg.GraphQL.Endpoint),
		zap.Bool("once", *once),
	)

	client := jobs.NewClient(cfg.GraphQL.Endpoint, cfg.Jobs.RequestTimeout)

	scheduler := jobs.NewScheduler(log)
	scheduler.Register(
		jobs.NewHeartbeatJob(client, cfg.Jobs.HeartbeatLogPath),
		jobs.Every(cfg.Jobs.HeartbeatInterval),
	)
	scheduler.Register(
		jobs.NewLowStockJob(client, cfg.Jobs.LowStockLogPath),
		jobs.DailyAt(jobs.DailyTime{Hour: 0, Minute: 0}, jobs.DailyTime{Hour: 12, Minute: 0}),
	)
	scheduler.Register(
		jobs.NewReportJob(client, cfg.Jobs.ReportLogPath),
		jobs.WeeklyAt(time.Monday, 6, 0),
	)
	scheduler.Register(
		jobs.NewRemindersJob(client, cfg.Jobs.RemindersLogPath),
		jobs.DailyAt(jobs.DailyTime{Hour: 8, Minute: 0}),
	)

	ctx := context.Background()

	if *once {
		scheduler.RunAll(ctx)
		return
	}

	if err := scheduler.Start(ctx); err != nil {
		log.Fatal("Failed to start scheduler", zap.Error(err))
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down job runner...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := scheduler.Stop(shutdownCtx); err != nil {
		log.Error("Scheduler forced to stop", zap.Error(err))
	}

	log.Info("Job runner exited gracefully")
}
