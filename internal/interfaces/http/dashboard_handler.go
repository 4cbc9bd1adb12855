package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gallinero/henhouse-api/internal/application/analytics"
	"github.com/gallinero/henhouse-api/internal/application/dto"
)

// DashboardHandler expone las métricas del dashboard (solo admin).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// DailyRevenue godoc
// @Summary      Ingresos por día de los últimos N días
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        days  query  int  false  "Días hacia atrás"  default(7)
// @Success      200   {array}  dto.DailyRevenueDTO
// @Router       /api/dashboard/daily-revenue [get]
func (h *DashboardHandler) DailyRevenue(c *fiber.Ctx) error {
	days := c.QueryInt("days", 7)
	out, err := h.uc.DailyRevenue(c.Context(), days)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// TopProducts godoc
// @Summary      Productos más vendidos del histórico
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(5)
// @Success      200    {array}  dto.TopProductDTO
// @Router       /api/dashboard/top-products [get]
func (h *DashboardHandler) TopProducts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 5)
	out, err := h.uc.TopProducts(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Totales globales del negocio
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SummaryStatsDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.SummaryStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
