package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/coworkly-backend/internal/models"
	"github.com/sefazor/coworkly-backend/internal/service"
	"github.com/sefazor/coworkly-backend/pkg/utils"
)

type BookingHandler struct {
	bookingService *service.BookingService
	userService    *service.UserService
	validator      *utils.Validator
}

func NewBookingHandler(bookingService *service.BookingService, userService *service.UserService, validator *utils.Validator) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		userService:    userService,
		validator:      validator,
	}
}

func (h *BookingHandler) CreateBooking(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	booking, err := h.bookingService.CreateBooking(userID, req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(booking, "Booking created"))
}

func (h *BookingHandler) GetMyBookings(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	bookings, err := h.bookingService.GetUserBookings(userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(bookings, ""))
}

func (h *BookingHandler) CancelBooking(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	bookingID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid booking ID"))
	}

	user, err := h.userService.GetProfile(userID)
	if err != nil {
		return serviceError(c, err)
	}

	isAdmin := user.Role == models.RoleAdmin
	if err := h.bookingService.CancelBooking(uint(bookingID), userID, isAdmin); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Booking cancelled"))
}
