package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/speechify-bot/speechify/internal/api/handlers"
	"github.com/speechify-bot/speechify/internal/api/middleware"
	"github.com/speechify-bot/speechify/internal/bot"
	"github.com/speechify-bot/speechify/internal/config"
)

type Router struct {
	mux        *chi.Mux
	db         *pgxpool.Pool
	redis      *redis.Client
	cfg        *config.Config
	dispatcher *bot.Dispatcher
}

func NewRouter(db *pgxpool.Pool, rdb *redis.Client, cfg *config.Config, dispatcher *bot.Dispatcher) *Router {
	return &Router{
		mux:        chi.NewRouter(),
		db:         db,
		redis:      rdb,
		cfg:        cfg,
		dispatcher: dispatcher,
	}
}

func (rt *Router) Setup() http.Handler {
	r := rt.mux

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging)
	r.Use(chimiddleware.Recoverer)

	rl := middleware.NewRateLimiter(100, 200)
	r.Use(rl.Limit)

	// Health endpoints (no auth)
	health := handlers.NewHealthHandler(rt.db, rt.redis)
	r.Get("/healthz", health.Healthz)
	r.Get("/readyz", health.Readyz)

	events := handlers.NewEventsHandler(rt.dispatcher)
	r.Group(func(r chi.Router) {
		r.Use(middleware.WebhookAuth(rt.cfg.Webhook.Token))
		r.Post("/events", events.Post)
	})

	return r
}
