package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/speechify-bot/speechify/internal/api"
	"github.com/speechify-bot/speechify/internal/bot"
	"github.com/speechify-bot/speechify/internal/config"
	"github.com/speechify-bot/speechify/internal/database"
	"github.com/speechify-bot/speechify/internal/flow"
	"github.com/speechify-bot/speechify/internal/language"
	"github.com/speechify-bot/speechify/internal/queue"
	"github.com/speechify-bot/speechify/internal/store"
	"github.com/speechify-bot/speechify/internal/translate"
	"github.com/speechify-bot/speechify/internal/tts"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := database.NewPool(ctx, cfg.Database)
	if err != nil {
		slog.Error("database unavailable", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db, cfg.Database.MigrationsPath); err != nil {
		slog.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unavailable", "error", err)
	}
	defer rdb.Close()

	detector := language.NewDetector()

	translator, err := translate.New(cfg.Translate, detector)
	if err != nil {
		slog.Error("failed to build translator", "error", err)
		os.Exit(1)
	}

	synth, err := tts.New(ctx, cfg.TTS)
	if err != nil {
		slog.Error("failed to build synthesizer", "error", err)
		os.Exit(1)
	}

	var sessions flow.Store
	switch cfg.Sessions.Backend {
	case "redis":
		sessions = flow.NewRedisStore(rdb, cfg.Sessions.TTL)
	default:
		sessions = flow.NewMemoryStore()
	}

	prefs := store.NewPostgres(db)
	machine := flow.NewMachine(sessions, prefs, translator, synth, detector, logger)

	queueClient := queue.NewClient(cfg.Redis)
	defer queueClient.Close()

	dispatcher := bot.NewDispatcher(machine, prefs, queueClient, logger)

	router := api.NewRouter(db, rdb, cfg, dispatcher)
	handler := router.Setup()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("starting bot server",
			"addr", cfg.Addr(),
			"translate_backend", translator.Name(),
			"tts_backend", synth.Name(),
			"sessions_backend", cfg.Sessions.Backend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
	}
	slog.Info("server stopped")
}
