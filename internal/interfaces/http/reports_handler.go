package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/gestion-pro/internal/application/analytics"
	"github.com/jhoicas/gestion-pro/internal/application/usecase"
)

// ReportsHandler maneja reportes y bitácora.
type ReportsHandler struct {
	uc       *appanalytics.ReportsUseCase
	activity *usecase.ActivityUseCase
}

// NewReportsHandler construye el handler.
func NewReportsHandler(uc *appanalytics.ReportsUseCase, activity *usecase.ActivityUseCase) *ReportsHandler {
	return &ReportsHandler{uc: uc, activity: activity}
}

// GetReports godoc
// @Summary      Reportes de ventas completadas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReportsResponse
// @Router       /api/reports [get]
func (h *ReportsHandler) GetReports(c *fiber.Ctx) error {
	out, err := h.uc.GetReports(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListActivity godoc
// @Summary      Bitácora de actividad (más reciente primero, máx. 100)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ActivityLogDTO
// @Router       /api/activity [get]
func (h *ReportsHandler) ListActivity(c *fiber.Ctx) error {
	out, err := h.activity.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
