package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "studio"

// Metrics набор prometheus-коллекторов сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueriesTotal    *prometheus.CounterVec
	DBQueryDuration   *prometheus.HistogramVec
	DBOpenConnections *prometheus.GaugeVec

	AppointmentOutcomes *prometheus.CounterVec
	LedgerRecords       *prometheus.CounterVec
}

// New регистрирует метрики в глобальном registry
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry регистрирует метрики в переданном registry
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "requests_total",
			Help:        "Total HTTP requests by route and status code.",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "request_duration_seconds",
			Help:        "HTTP request latency.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: labels,
		}, []string{"method", "route"}),
		DBQueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "db",
			Name:        "queries_total",
			Help:        "Total database calls by operation and result.",
			ConstLabels: labels,
		}, []string{"operation", "status"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "db",
			Name:        "query_duration_seconds",
			Help:        "Database call latency.",
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			ConstLabels: labels,
		}, []string{"operation"}),
		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   "db",
			Name:        "connections",
			Help:        "Connection pool state.",
			ConstLabels: labels,
		}, []string{"state"}),
		AppointmentOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "appointments",
			Name:        "outcomes_total",
			Help:        "Appointment mutations by outcome.",
			ConstLabels: labels,
		}, []string{"outcome"}),
		LedgerRecords: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "ledger",
			Name:        "records_total",
			Help:        "Cash transactions recorded by type.",
			ConstLabels: labels,
		}, []string{"type"}),
	}

	if reg != nil {
		reg.MustRegister(
			m.HTTPRequestsTotal,
			m.HTTPRequestDuration,
			m.DBQueriesTotal,
			m.DBQueryDuration,
			m.DBOpenConnections,
			m.AppointmentOutcomes,
			m.LedgerRecords,
		)
	}

	return m
}

// ObserveHTTP учитывает завершённый HTTP-запрос
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveDB учитывает вызов базы данных
func (m *Metrics) ObserveDB(operation string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.DBQueriesTotal.WithLabelValues(operation, status).Inc()
	m.DBQueryDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// SetDBConnections обновляет состояние пула соединений
func (m *Metrics) SetDBConnections(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.DBOpenConnections.WithLabelValues("open").Set(float64(open))
	m.DBOpenConnections.WithLabelValues("in_use").Set(float64(inUse))
	m.DBOpenConnections.WithLabelValues("idle").Set(float64(idle))
}

// AppointmentOutcome учитывает результат мутации записи
func (m *Metrics) AppointmentOutcome(outcome string) {
	if m == nil {
		return
	}
	m.AppointmentOutcomes.WithLabelValues(outcome).Inc()
}

// LedgerRecorded учитывает проведённую кассовую операцию
func (m *Metrics) LedgerRecorded(txType string) {
	if m == nil {
		return
	}
	m.LedgerRecords.WithLabelValues(txType).Inc()
}
