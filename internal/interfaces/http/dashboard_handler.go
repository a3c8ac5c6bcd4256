package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/gestion-pro/internal/application/analytics"
	"github.com/jhoicas/gestion-pro/internal/application/usecase"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc       *appanalytics.DashboardUseCase
	insights *usecase.InsightUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, insights *usecase.InsightUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, insights: insights}
}

// GetSummary devuelve los indicadores del inventario y las ventas de hoy.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (total_stock, inventory_value, sales_today_count,
// sales_today_amount, low_stock, chart, date_label). "Hoy" es la fecha UTC del servidor.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}

// GetInsights devuelve recomendaciones de la IA o las de respaldo.
// GET /api/dashboard/insights
//
// Nunca falla: sin proveedor, con error o con timeout responde las recomendaciones
// por defecto y fallback=true.
func (h *DashboardHandler) GetInsights(c *fiber.Ctx) error {
	return c.JSON(h.insights.Insights(c.UserContext()))
}
