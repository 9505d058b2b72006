// Package auth собирает HTTP-приложение сервиса аутентификации.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/healthmon/auth-backend/internal/config"
	"github.com/healthmon/auth-backend/internal/lib/fieldmap"
	"github.com/healthmon/auth-backend/internal/lib/metrics"
	"github.com/healthmon/auth-backend/internal/lib/sl"
	"github.com/healthmon/auth-backend/internal/migrations"
	authservices "github.com/healthmon/auth-backend/internal/services/auth"
	"github.com/healthmon/auth-backend/internal/storage"
)

const shutdownTimeout = 15 * time.Second

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
}

func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.auth.New"

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	prom := metrics.New(registry)

	db, err := storage.New(cfg.Storage.Driver, cfg.Storage.ConnectionString, prom)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = migrations.Run(db.DB, db.Driver(), cfg.Storage.MigrationsPath); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	decoder, err := fieldmap.New(cfg.Decoder)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	authService := authservices.NewAuthService(db, logger)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, Deps{
		AuthService:   authService,
		Decoder:       decoder,
		Storage:       db,
		Metrics:       prom,
		Gatherer:      registry,
		AllowedOrigin: cfg.CORS.AllowedOrigin,
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	logger.Debug("auth app initialized",
		slog.String("driver", db.Driver()),
		slog.String("decoder", cfg.Decoder),
		slog.String("allowed_origin", cfg.CORS.AllowedOrigin),
	)

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run обслуживает запросы до отмены ctx, затем останавливает сервер
// и закрывает соединение с базой.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.closeStorage()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.closeStorage()
		return err
	}
}

func (a *App) closeStorage() {
	if err := a.db.Close(); err != nil {
		a.logger.Error("failed to close storage", sl.Err(err))
	}
}
