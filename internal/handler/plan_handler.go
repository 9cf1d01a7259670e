package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/coworkly-backend/internal/models"
	"github.com/sefazor/coworkly-backend/internal/service"
	"github.com/sefazor/coworkly-backend/pkg/utils"
)

type PlanHandler struct {
	planService *service.PlanService
	validator   *utils.Validator
}

func NewPlanHandler(planService *service.PlanService, validator *utils.Validator) *PlanHandler {
	return &PlanHandler{
		planService: planService,
		validator:   validator,
	}
}

func (h *PlanHandler) GetPlans(c *fiber.Ctx) error {
	includeInactive := c.Query("include_inactive") == "true"

	plans, err := h.planService.GetPlans(includeInactive)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(plans, ""))
}

func (h *PlanHandler) GetPlan(c *fiber.Ctx) error {
	planID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid plan ID"))
	}

	plan, err := h.planService.GetPlan(uint(planID))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(plan, ""))
}

func (h *PlanHandler) CreatePlan(c *fiber.Ctx) error {
	var req models.CreatePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	plan, err := h.planService.CreatePlan(req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(plan, "Plan created"))
}

func (h *PlanHandler) UpdatePlan(c *fiber.Ctx) error {
	planID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid plan ID"))
	}

	var req models.UpdatePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	plan, err := h.planService.UpdatePlan(uint(planID), req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(plan, "Plan updated"))
}

func (h *PlanHandler) AddPerk(c *fiber.Ctx) error {
	planID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid plan ID"))
	}

	var req models.PlanPerkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	perk, err := h.planService.AddPerk(uint(planID), req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(perk, "Perk added"))
}

func (h *PlanHandler) RemovePerk(c *fiber.Ctx) error {
	planID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid plan ID"))
	}

	perkID, err := strconv.ParseUint(c.Params("perkId"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid perk ID"))
	}

	if err := h.planService.RemovePerk(uint(planID), uint(perkID)); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Perk removed"))
}
