package auth

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	// Регистрация OpenAPI-документа для /docs.
	_ "github.com/healthmon/auth-backend/internal/docs"
	"github.com/healthmon/auth-backend/internal/http/handlers/auth/login"
	"github.com/healthmon/auth-backend/internal/http/handlers/auth/register"
	"github.com/healthmon/auth-backend/internal/http/handlers/health"
	"github.com/healthmon/auth-backend/internal/http/middlewarectx"
	"github.com/healthmon/auth-backend/internal/lib/fieldmap"
	"github.com/healthmon/auth-backend/internal/lib/metrics"
	authservices "github.com/healthmon/auth-backend/internal/services/auth"
)

// Deps — зависимости, необходимые маршрутам.
type Deps struct {
	AuthService   *authservices.AuthService
	Decoder       fieldmap.Decoder
	Storage       health.Pinger
	Metrics       *metrics.Prom
	Gatherer      prometheus.Gatherer
	AllowedOrigin string
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, deps Deps) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middlewarectx.Metrics(deps.Metrics),
		middleware.Logger,
		middleware.Recoverer,
	)

	r.Route("/api/auth", func(r chi.Router) {
		r.Use(middlewarectx.CORS(deps.AllowedOrigin))

		// Метод проверяют сами обработчики: не-POST получает 405 с пустым телом.
		r.Handle("/register", register.New(logger, deps.AuthService, deps.Decoder))
		r.Handle("/login", login.New(logger, deps.AuthService, deps.Decoder))
	})

	r.Get("/healthz", health.New(logger, deps.Storage).ServeHTTP)
	r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
