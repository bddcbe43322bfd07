package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus метрик сервиса
type Metrics struct {
	// HTTP метрики (заполняются middleware)
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Доменные метрики: решения по заявкам на бронирование
	ReservationsTotal *prometheus.CounterVec
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request duration in seconds",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		ReservationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "reservations_total",
				Help:        "Reservation admission decisions by result",
				ConstLabels: constLabels,
			},
			[]string{"result"},
		),
	}
}

// IncReservation увеличивает счетчик решений по заявкам
// result: accepted, past_date, date_not_open, daily_capacity_exceeded,
// monthly_capacity_exceeded, storage_busy, error
func (m *Metrics) IncReservation(result string) {
	// Метрики могут быть выключены в конфигурации
	if m == nil {
		return
	}
	m.ReservationsTotal.WithLabelValues(result).Inc()
}
