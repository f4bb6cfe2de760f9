package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dareyes/inventario-pyme/internal/application/analytics"
	"github.com/dareyes/inventario-pyme/internal/application/dto"
)

// DashboardHandler maneja las consultas agregadas del dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats GET /api/dashboard/stats
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// LowStock GET /api/dashboard/low-stock
func (h *DashboardHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.GetLowStock(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// RecentMovements GET /api/dashboard/recent-movements
func (h *DashboardHandler) RecentMovements(c *fiber.Ctx) error {
	out, err := h.uc.GetRecentMovements()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
