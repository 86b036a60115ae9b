package handler

import (
	"time"

	"go-lottery-admin/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats returns sales totals and a per-day revenue series
// GET /api/dashboard/stats?range=7d|1m|3m|6m|12m
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	now := time.Now()
	var startAt time.Time

	switch c.Query("range", "7d") {
	case "7d":
		startAt = now.AddDate(0, 0, -7)
	case "1m":
		startAt = now.AddDate(0, -1, 0)
	case "3m":
		startAt = now.AddDate(0, -3, 0)
	case "6m":
		startAt = now.AddDate(0, -6, 0)
	case "12m":
		startAt = now.AddDate(0, -12, 0)
	default:
		startAt = now.AddDate(0, 0, -7)
	}

	stats, err := h.dashboardService.GetStats(startAt, now)
	if err != nil {
		return fail(c, 500, "An error occurred while fetching dashboard stats.")
	}
	return success(c, 200, "Dashboard stats fetched successfully", stats)
}
