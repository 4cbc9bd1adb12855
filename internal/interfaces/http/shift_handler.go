package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gallinero/henhouse-api/internal/application/dto"
	"github.com/gallinero/henhouse-api/internal/application/shift"
	"github.com/gallinero/henhouse-api/internal/domain"
)

// ShiftHandler maneja el fichaje de entrada y salida.
type ShiftHandler struct {
	uc *shift.ShiftUseCase
}

// NewShiftHandler construye el handler de turnos.
func NewShiftHandler(uc *shift.ShiftUseCase) *ShiftHandler {
	return &ShiftHandler{uc: uc}
}

// ClockIn godoc
// @Summary      Fichar entrada
// @Tags         shifts
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.ShiftResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/shifts/clock-in [post]
func (h *ShiftHandler) ClockIn(c *fiber.Ctx) error {
	out, err := h.uc.ClockIn(GetUserID(c))
	if err != nil {
		switch err {
		case domain.ErrShiftAlreadyOpen:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SHIFT_ALREADY_OPEN", Message: "ya hay un turno abierto"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario desconocido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ClockOut godoc
// @Summary      Fichar salida
// @Tags         shifts
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del turno"
// @Success      200  {object}  dto.ShiftResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/shifts/{id}/clock-out [post]
func (h *ShiftHandler) ClockOut(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.ClockOut(id)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "turno no encontrado"})
		case domain.ErrShiftClosed:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SHIFT_CLOSED", Message: "el turno ya está cerrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Current godoc
// @Summary      Turno abierto del usuario autenticado
// @Tags         shifts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ShiftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shifts/current [get]
func (h *ShiftHandler) Current(c *fiber.Ctx) error {
	out, err := h.uc.CurrentOpenShift(GetUserID(c))
	if err != nil {
		if err == domain.ErrDataIntegrity {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "DATA_INTEGRITY", Message: "más de un turno abierto para el usuario"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no hay turno abierto"})
	}
	return c.JSON(out)
}

// Recent godoc
// @Summary      Últimos turnos cerrados del usuario autenticado
// @Tags         shifts
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(10)
// @Success      200    {array}  dto.ShiftResponse
// @Router       /api/shifts/recent [get]
func (h *ShiftHandler) Recent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	out, err := h.uc.RecentClosedShifts(GetUserID(c), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
