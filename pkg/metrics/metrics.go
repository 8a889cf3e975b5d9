package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор Prometheus-коллекторов сервиса.
// Каждый экземпляр использует собственный реестр, поэтому New можно вызывать в тестах многократно.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	reservations *prometheus.CounterVec
	gatewayCalls *prometheus.HistogramVec
}

// New создает и регистрирует коллекторы с константной меткой service
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		reservations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservations_total",
			Help:        "Reservation submissions by outcome",
			ConstLabels: labels,
		}, []string{"source", "outcome"}),
		gatewayCalls: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "notification_gateway_duration_seconds",
			Help:        "Notification gateway call duration in seconds by outcome",
			ConstLabels: labels,
			Buckets:     []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.reservations,
		m.gatewayCalls,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler отдает метрики в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry возвращает реестр коллекторов
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordReservation учитывает исход отправки бронирования (source: web|api)
func (m *Metrics) RecordReservation(source, outcome string) {
	m.reservations.WithLabelValues(source, outcome).Inc()
}

// ObserveGatewayCall учитывает вызов шлюза уведомлений
func (m *Metrics) ObserveGatewayCall(outcome string, duration time.Duration) {
	m.gatewayCalls.WithLabelValues(outcome).Observe(duration.Seconds())
}
