package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/coworkly-backend/internal/models"
	"github.com/sefazor/coworkly-backend/internal/service"
)

var notFoundErrors = []error{
	service.ErrNoActiveMembership,
	service.ErrPerkNotFound,
	service.ErrRoomNotFound,
	service.ErrPlanNotFound,
	service.ErrEventNotFound,
	service.ErrBookingNotFound,
}

// serviceError maps service failures onto the response envelope: known
// not-found sentinels become 404, business-rule rejections become 400 with
// the exact reason, everything else is a generic 500.
func serviceError(c *fiber.Ctx, err error) error {
	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(err.Error()))
		}
	}
	if service.IsRejection(err) {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Something went wrong"))
}

func currentUserID(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals("userID").(uint)
	return userID, ok
}
