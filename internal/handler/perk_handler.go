package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/coworkly-backend/internal/models"
	"github.com/sefazor/coworkly-backend/internal/service"
	"github.com/sefazor/coworkly-backend/pkg/utils"
)

type PerkHandler struct {
	perkService *service.PerkService
	validator   *utils.Validator
}

func NewPerkHandler(perkService *service.PerkService, validator *utils.Validator) *PerkHandler {
	return &PerkHandler{
		perkService: perkService,
		validator:   validator,
	}
}

// GetMyPerks returns the availability of every perk on the caller's
// active membership, evaluated at request time.
func (h *PerkHandler) GetMyPerks(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	statuses, err := h.perkService.GetPerkStatuses(userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(statuses, ""))
}

func (h *PerkHandler) RedeemPerk(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	perkID, err := strconv.ParseUint(c.Params("perkId"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid perk ID"))
	}

	var req models.RedeemPerkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	resp, err := h.perkService.RedeemPerk(userID, uint(perkID), req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(resp, "Perk redeemed"))
}
