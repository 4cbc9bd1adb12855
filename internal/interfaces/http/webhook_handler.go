package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gallinero/henhouse-api/internal/application/dto"
	"github.com/gallinero/henhouse-api/internal/application/usecase"
	"github.com/gallinero/henhouse-api/internal/domain"
)

// WebhookHandler administra los destinos de notificaciones (solo admin).
type WebhookHandler struct {
	uc *usecase.WebhookUseCase
}

// NewWebhookHandler construye el handler de webhooks.
func NewWebhookHandler(uc *usecase.WebhookUseCase) *WebhookHandler {
	return &WebhookHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar webhook
// @Tags         webhooks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWebhookRequest  true  "url y categoría"
// @Success      201   {object}  dto.WebhookResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/webhooks [post]
func (h *WebhookHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWebhookRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.URL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "url es requerida"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "event_type debe ser sales, shifts, stock o all"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar webhooks registrados
// @Tags         webhooks
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.WebhookResponse
// @Router       /api/webhooks [get]
func (h *WebhookHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SetActive godoc
// @Summary      Activar o desactivar un webhook
// @Tags         webhooks
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID del webhook"
// @Param        body  body  object{is_active=bool}  true  "estado"
// @Success      204
// @Router       /api/webhooks/{id}/active [put]
func (h *WebhookHandler) SetActive(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in struct {
		IsActive bool `json:"is_active"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SetActive(id, in.IsActive); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar un webhook
// @Tags         webhooks
// @Security     Bearer
// @Param        id  path  string  true  "ID del webhook"
// @Success      204
// @Router       /api/webhooks/{id} [delete]
func (h *WebhookHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
