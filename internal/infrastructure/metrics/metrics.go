// Package metrics expone métricas Prometheus del servidor HTTP y del negocio
// (logins, ventas, insights).
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-pro/internal/application/ports"
)

const namespace = "gestion_pro"

var _ ports.MetricsRecorder = (*Metrics)(nil)

// Metrics registro propio con las métricas de la aplicación.
type Metrics struct {
	registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	logins          *prometheus.CounterVec
	sales           prometheus.Counter
	salesAmount     prometheus.Counter
	insights        *prometheus.CounterVec
}

// New crea el registro con métricas de runtime, proceso, HTTP y negocio.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duración de las peticiones HTTP en segundos.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total de peticiones HTTP.",
		}, []string{"method", "path", "status"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "login_attempts_total",
			Help:      "Intentos de login por resultado.",
		}, []string{"result"}),
		sales: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sales",
			Name:      "completed_total",
			Help:      "Ventas registradas.",
		}),
		salesAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sales",
			Name:      "amount_total",
			Help:      "Importe acumulado de las ventas registradas.",
		}),
		insights: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ai",
			Name:      "insight_requests_total",
			Help:      "Consultas de insights por resultado (ok | fallback).",
		}, []string{"outcome"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestDuration, m.requestTotal, m.logins, m.sales, m.salesAmount, m.insights,
	)
	return m
}

// Registry devuelve el registro (tests y exportadores).
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// LoginAttempt cuenta un intento de login.
func (m *Metrics) LoginAttempt(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	m.logins.WithLabelValues(result).Inc()
}

// SaleCompleted cuenta una venta y suma su importe.
func (m *Metrics) SaleCompleted(total decimal.Decimal) {
	m.sales.Inc()
	if f, _ := total.Float64(); f > 0 {
		m.salesAmount.Add(f)
	}
}

// InsightRequest cuenta una consulta de insights.
func (m *Metrics) InsightRequest(outcome string) {
	m.insights.WithLabelValues(outcome).Inc()
}

// Middleware registra duración y total por método, ruta y estado. Usa el patrón de
// ruta (/api/products/:id) para no disparar la cardinalidad.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		path := c.Route().Path
		labels := []string{c.Method(), path, strconv.Itoa(status)}
		m.requestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		m.requestTotal.WithLabelValues(labels...).Inc()
		return err
	}
}

// Handler expone /metrics en formato Prometheus.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
