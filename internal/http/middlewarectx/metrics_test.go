package middlewarectx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/healthmon/auth-backend/internal/http/middlewarectx"
	"github.com/healthmon/auth-backend/internal/lib/metrics"
)

func TestMetrics(t *testing.T) {
	p := metrics.New(prometheus.NewRegistry())

	r := chi.NewRouter()
	r.Use(middlewarectx.Metrics(p))
	r.Post("/api/auth/{action}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{}"))
	})
	r.Get("/teapot", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for _, path := range []string{"/api/auth/login", "/api/auth/register"} {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/teapot", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(p.RequestsTotal.WithLabelValues("POST", "/api/auth/{action}", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.RequestsTotal.WithLabelValues("GET", "/teapot", "418")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.RequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}
