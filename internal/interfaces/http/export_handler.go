package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gestion-pro/internal/application/dto"
	"github.com/jhoicas/gestion-pro/internal/application/usecase"
)

// ExportHandler descarga (o publica, con ?upload=true) los CSV.
type ExportHandler struct {
	uc *usecase.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *usecase.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Sales godoc
// @Summary      Exportar ventas a CSV
// @Tags         export
// @Security     Bearer
// @Produce      text/csv
// @Param        upload  query  bool  false  "Publicar en el bucket configurado"
// @Success      200     {file}    binary
// @Router       /api/sales/export.csv [get]
func (h *ExportHandler) Sales(c *fiber.Ctx) error {
	data, rows, err := h.uc.SalesCSV(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return h.respond(c, "ventas", data, rows)
}

// Inventory godoc
// @Summary      Exportar inventario filtrado a CSV
// @Tags         export
// @Security     Bearer
// @Produce      text/csv
// @Param        search    query  string  false  "Texto en nombre o código"
// @Param        category  query  string  false  "Categoría"
// @Param        stock     query  string  false  "all | low"
// @Param        upload    query  bool    false  "Publicar en el bucket configurado"
// @Success      200       {file}    binary
// @Router       /api/inventory/export.csv [get]
func (h *ExportHandler) Inventory(c *fiber.Ctx) error {
	var f dto.InventoryFilter
	if err := c.QueryParser(&f); err != nil {
		return invalidBody(c)
	}
	data, rows, err := h.uc.InventoryCSV(c.UserContext(), f)
	if err != nil {
		return writeError(c, err)
	}
	return h.respond(c, "inventario", data, rows)
}

func (h *ExportHandler) respond(c *fiber.Ctx, prefix string, data []byte, rows int) error {
	if c.QueryBool("upload") {
		res, err := h.uc.Publish(c.UserContext(), prefix, data, rows)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(res)
	}
	c.Attachment(h.uc.FileName(prefix))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Send(data)
}
