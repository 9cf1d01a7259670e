package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/coworkly-backend/internal/models"
	"github.com/sefazor/coworkly-backend/internal/service"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	activityService  *service.ActivityService
}

func NewDashboardHandler(dashboardService *service.DashboardService, activityService *service.ActivityService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		activityService:  activityService,
	}
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.dashboardService.GetStats()
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(stats, ""))
}

func (h *DashboardHandler) GetRecentActivity(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))

	entries, err := h.activityService.GetRecent(limit)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(entries, ""))
}
