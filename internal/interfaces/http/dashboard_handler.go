package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/dwoms-api/internal/application/analytics"
	"github.com/tu-usuario/dwoms-api/internal/application/dto"
)

// DashboardHandler expone las métricas agregadas del panel.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Metrics godoc
// @Summary      Métricas del panel de control
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardMetricsDTO
// @Router       /api/dashboard/metrics [get]
func (h *DashboardHandler) Metrics(c *fiber.Ctx) error {
	metrics, err := h.uc.GetMetrics()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(metrics)
}
