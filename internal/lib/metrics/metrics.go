// Package metrics содержит Prometheus-метрики HTTP-запросов и обращений к БД.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "auth"

// Prom хранит коллекторы сервиса. Нулевой указатель допустим: все методы
// становятся no-op, что удобно в тестах хранилища.
type Prom struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	DBQueryDuration *prometheus.HistogramVec
	DBErrorsTotal   *prometheus.CounterVec
}

// New создаёт коллекторы и регистрирует их в reg.
func New(reg prometheus.Registerer) *Prom {
	p := &Prom{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests processed.",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency.",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
			[]string{"method", "route", "status"},
		),
		DBQueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "db",
				Name:      "query_duration_seconds",
				Help:      "DB operation latency by logical op.",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.02, 0.05, 0.1, 0.25, 0.5, 1, 2},
			},
			[]string{"op", "status"},
		),
		DBErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "db",
				Name:      "errors_total",
				Help:      "DB errors by logical op and class.",
			},
			[]string{"op", "class"},
		),
	}
	reg.MustRegister(p.RequestsTotal, p.RequestDuration, p.DBQueryDuration, p.DBErrorsTotal)

	return p
}

// ObserveRequest учитывает один обработанный HTTP-запрос.
func (p *Prom) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if p == nil {
		return
	}
	code := strconv.Itoa(status)
	p.RequestsTotal.WithLabelValues(method, route, code).Inc()
	p.RequestDuration.WithLabelValues(method, route, code).Observe(elapsed.Seconds())
}

// ObserveDB выполняет fn и записывает длительность и класс ошибки.
// classify переводит ошибку в метку class.
func (p *Prom) ObserveDB(op string, classify func(error) string, fn func() error) error {
	if p == nil {
		return fn()
	}

	start := time.Now()
	err := fn()

	status := "ok"
	if err != nil {
		status = "error"
		p.DBErrorsTotal.WithLabelValues(op, classify(err)).Inc()
	}
	p.DBQueryDuration.WithLabelValues(op, status).Observe(time.Since(start).Seconds())

	return err
}
