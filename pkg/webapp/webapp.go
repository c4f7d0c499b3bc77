// Package webapp provides the Deezer Explorer web application as a reusable
// object that can be embedded into other Go programs.
package webapp

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lei/deezer-web/internal/config"
	"github.com/lei/deezer-web/internal/deezer"
	"github.com/lei/deezer-web/internal/web"
	"github.com/lei/deezer-web/pkg/logger"
)

// App represents a Deezer Explorer instance
type App struct {
	config *config.Config
	router http.Handler
	server *http.Server
	logger *logger.Logger
}

// New creates a new App instance with the provided configuration
func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	appLogger := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	client := deezer.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, appLogger)
	appLogger.Info("initialized upstream client",
		"base_url", cfg.Upstream.BaseURL,
		"timeout", cfg.Upstream.Timeout)

	renderer, err := web.NewRenderer(appLogger)
	if err != nil {
		return nil, fmt.Errorf("initialize renderer: %w", err)
	}

	handlers := web.NewHandlers(client, renderer, cfg.Search.Limit)
	loggingMiddleware := web.NewLoggingMiddleware(appLogger)
	router := web.NewRouter(handlers, renderer, loggingMiddleware)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return &App{
		config: cfg,
		router: router,
		server: srv,
		logger: appLogger,
	}, nil
}

// NewFromFile creates an App from a YAML config file. A missing file yields
// the defaults, so passing an empty path is fine.
func NewFromFile(path string) (*App, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return New(cfg)
}

// Start starts the HTTP server
// This is a blocking call that will run until the context is canceled or an error occurs
func (a *App) Start(ctx context.Context) error {
	serverErrors := make(chan error, 1)

	go func() {
		a.logger.Info("starting http server", "addr", a.server.Addr)
		serverErrors <- a.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil

	case <-ctx.Done():
		a.logger.Info("shutdown signal received")

		// Graceful shutdown with the configured write timeout as the bound
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.Server.WriteTimeout)
		defer cancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.server.Close()
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}

		a.logger.Info("server stopped gracefully")
		return nil
	}
}

// Handler returns the http.Handler for the application
// Use this if you want to mount the site into an existing HTTP server
func (a *App) Handler() http.Handler {
	return a.router
}
