package main

import (
	"log/slog"
	"os"

	"github.com/hibiken/asynq"

	"github.com/speechify-bot/speechify/internal/artifact"
	"github.com/speechify-bot/speechify/internal/config"
	"github.com/speechify-bot/speechify/internal/queue"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	artifacts, err := artifact.NewStore(cfg.Artifacts.Dir, cfg.Artifacts.TTL)
	if err != nil {
		slog.Error("failed to open artifact store", "error", err)
		os.Exit(1)
	}

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			"default": 3,
			"low":     1,
		},
	})

	worker := queue.NewArtifactWorker(artifacts)
	mux := queue.NewMux(worker)

	// Hourly purge of aged artifacts.
	scheduler := asynq.NewScheduler(redisOpt, nil)
	if _, err := scheduler.Register("@every 1h", asynq.NewTask(queue.TypeArtifactPurge, nil)); err != nil {
		slog.Error("failed to register purge schedule", "error", err)
		os.Exit(1)
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			slog.Error("scheduler error", "error", err)
			os.Exit(1)
		}
	}()

	slog.Info("starting worker", "concurrency", 10, "artifacts_dir", cfg.Artifacts.Dir)
	if err := srv.Run(mux); err != nil {
		slog.Error("worker error", "error", err)
		os.Exit(1)
	}
}
