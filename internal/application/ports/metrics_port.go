package ports

import "github.com/shopspring/decimal"

// Resultados posibles de una consulta de insights.
const (
	InsightOutcomeOK       = "ok"
	InsightOutcomeFallback = "fallback"
)

// MetricsRecorder contadores de negocio que exponen los adaptadores de métricas.
type MetricsRecorder interface {
	LoginAttempt(success bool)
	SaleCompleted(total decimal.Decimal)
	InsightRequest(outcome string)
}

// NopMetrics implementación vacía para tests y CLI.
type NopMetrics struct{}

func (NopMetrics) LoginAttempt(bool)             {}
func (NopMetrics) SaleCompleted(decimal.Decimal) {}
func (NopMetrics) InsightRequest(string)         {}
