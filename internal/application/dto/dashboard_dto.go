package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	TotalStock       int               `json:"total_stock"`
	InventoryValue   decimal.Decimal   `json:"inventory_value"`
	SalesTodayCount  int               `json:"sales_today_count"`
	SalesTodayAmount decimal.Decimal   `json:"sales_today_amount"`
	LowStock         []ProductResponse `json:"low_stock"`
	Chart            []ChartPointDTO   `json:"chart"`
	DateLabel        string            `json:"date_label"` // ej: "Febrero 2026"
}

// ChartPointDTO barra del gráfico del dashboard.
type ChartPointDTO struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// InsightDTO recomendación generada por IA.
type InsightDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// InsightsResponse respuesta de GET /api/dashboard/insights.
type InsightsResponse struct {
	Insights []InsightDTO `json:"insights"`
	Fallback bool         `json:"fallback"`
}
