package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/coworkly-backend/internal/models"
	"github.com/sefazor/coworkly-backend/internal/service"
	"github.com/sefazor/coworkly-backend/pkg/utils"
)

type RoomHandler struct {
	roomService    *service.RoomService
	bookingService *service.BookingService
	validator      *utils.Validator
}

func NewRoomHandler(roomService *service.RoomService, bookingService *service.BookingService, validator *utils.Validator) *RoomHandler {
	return &RoomHandler{
		roomService:    roomService,
		bookingService: bookingService,
		validator:      validator,
	}
}

func (h *RoomHandler) GetRooms(c *fiber.Ctx) error {
	includeInactive := c.Query("include_inactive") == "true"

	rooms, err := h.roomService.GetRooms(includeInactive)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(rooms, ""))
}

func (h *RoomHandler) GetRoom(c *fiber.Ctx) error {
	roomID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid room ID"))
	}

	room, err := h.roomService.GetRoom(uint(roomID))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(room, ""))
}

// GetRoomCalendar lists a room's bookings for one day so the frontend can
// draw free and busy slots.
func (h *RoomHandler) GetRoomCalendar(c *fiber.Ctx) error {
	roomID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid room ID"))
	}

	date := c.Query("date")
	if date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("date query parameter is required"))
	}

	bookings, err := h.bookingService.GetRoomCalendar(uint(roomID), date)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(bookings, ""))
}

func (h *RoomHandler) CreateRoom(c *fiber.Ctx) error {
	var req models.RoomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	room, err := h.roomService.CreateRoom(req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(room, "Room created"))
}

func (h *RoomHandler) UpdateRoom(c *fiber.Ctx) error {
	roomID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid room ID"))
	}

	var req models.RoomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	room, err := h.roomService.UpdateRoom(uint(roomID), req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(room, "Room updated"))
}
