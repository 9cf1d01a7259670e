package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/coworkly-backend/internal/models"
	"github.com/sefazor/coworkly-backend/internal/service"
	"github.com/sefazor/coworkly-backend/pkg/utils"
)

type MembershipHandler struct {
	membershipService *service.MembershipService
	validator         *utils.Validator
}

func NewMembershipHandler(membershipService *service.MembershipService, validator *utils.Validator) *MembershipHandler {
	return &MembershipHandler{
		membershipService: membershipService,
		validator:         validator,
	}
}

func (h *MembershipHandler) GetCurrentMembership(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	membership, err := h.membershipService.GetCurrentMembership(userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(membership, ""))
}

func (h *MembershipHandler) GetMyMemberships(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	memberships, err := h.membershipService.GetUserMemberships(userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(memberships, ""))
}

func (h *MembershipHandler) GetAllMemberships(c *fiber.Ctx) error {
	memberships, err := h.membershipService.GetAllMemberships()
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(memberships, ""))
}

func (h *MembershipHandler) AssignMembership(c *fiber.Ctx) error {
	adminID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.AssignMembershipRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	membership, err := h.membershipService.AssignMembership(adminID, req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(membership, "Membership assigned"))
}

func (h *MembershipHandler) CancelMembership(c *fiber.Ctx) error {
	adminID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	membershipID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid membership ID"))
	}

	if err := h.membershipService.CancelMembership(adminID, uint(membershipID)); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Membership cancelled"))
}
