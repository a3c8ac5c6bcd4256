package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gestion-pro/internal/application/dto"
	"github.com/jhoicas/gestion-pro/internal/application/usecase"
)

// SettingsHandler maneja métodos de pago y borrado de datos.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// PaymentMethods godoc
// @Summary      Métodos de pago activos
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PaymentMethodsResponse
// @Router       /api/settings/payment-methods [get]
func (h *SettingsHandler) PaymentMethods(c *fiber.Ctx) error {
	out, err := h.uc.PaymentMethods(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Toggle godoc
// @Summary      Activar o desactivar un método de pago
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PaymentMethodRequest  true  "method"
// @Success      200   {object}  dto.PaymentMethodsResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/settings/payment-methods/toggle [post]
func (h *SettingsHandler) Toggle(c *fiber.Ctx) error {
	var in dto.PaymentMethodRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.TogglePaymentMethod(c.UserContext(), GetUserID(c), in.Method)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddCustom godoc
// @Summary      Agregar método de pago personalizado
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PaymentMethodRequest  true  "method"
// @Success      201   {object}  dto.PaymentMethodsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/settings/payment-methods/custom [post]
func (h *SettingsHandler) AddCustom(c *fiber.Ctx) error {
	var in dto.PaymentMethodRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AddCustomPaymentMethod(c.UserContext(), GetUserID(c), in.Method)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RemoveCustom godoc
// @Summary      Quitar método de pago personalizado
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Param        name  path  string  true  "Nombre del método"
// @Success      200   {object}  dto.PaymentMethodsResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/settings/payment-methods/custom/{name} [delete]
func (h *SettingsHandler) RemoveCustom(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.RemoveCustomPaymentMethod(c.UserContext(), GetUserID(c), name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ClearData godoc
// @Summary      Borrar todos los datos (solo admin)
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Param        confirm  query  bool  true  "Debe ser true"
// @Success      200      {object}  dto.MessageResponse
// @Failure      403      {object}  dto.ErrorResponse
// @Failure      428      {object}  dto.ErrorResponse
// @Router       /api/settings/data [delete]
func (h *SettingsHandler) ClearData(c *fiber.Ctx) error {
	if err := h.uc.ClearAllData(c.UserContext(), GetUserID(c), GetRole(c), c.QueryBool("confirm")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "datos eliminados"})
}
