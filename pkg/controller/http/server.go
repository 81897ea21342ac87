package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/m-hayashi/relcycle/pkg/domain/interfaces"
)

// config holds internal HTTP server configuration
type config struct {
	addr string
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
}

// NewServer creates a new HTTP server. summaryUC and notifier may be nil;
// their routes then respond 503.
func NewServer(
	ctx context.Context,
	changelogUC interfaces.ChangelogUseCase,
	summaryUC interfaces.SummaryUseCase,
	notifier interfaces.Notifier,
	opts ...Option,
) (*Server, error) {
	cfg := &config{
		addr: "localhost:8080",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	// Health check
	router.Get("/health", handleHealth)

	// Changelog API
	handler := NewChangelogHandler(changelogUC, summaryUC, notifier)
	router.Route("/api/changelog", func(r chi.Router) {
		r.Get("/items", handler.Items)
		r.Get("/cycles", handler.Cycles)
		r.Post("/cycles/{cycleKey}/summary", handler.Summarize)
		r.Post("/notify", handler.Notify)
	})

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}

	return server, nil
}
