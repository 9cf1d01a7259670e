package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/coworkly-backend/internal/models"
	"github.com/sefazor/coworkly-backend/internal/service"
	"github.com/sefazor/coworkly-backend/pkg/utils"
)

type CustomerHandler struct {
	customerService *service.CustomerService
	validator       *utils.Validator
}

func NewCustomerHandler(customerService *service.CustomerService, validator *utils.Validator) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		validator:       validator,
	}
}

func (h *CustomerHandler) GetCustomers(c *fiber.Ctx) error {
	customers, err := h.customerService.GetCustomers()
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(customers, ""))
}

func (h *CustomerHandler) GetCustomer(c *fiber.Ctx) error {
	customerID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid customer ID"))
	}

	customer, err := h.customerService.GetCustomer(uint(customerID))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(customer, ""))
}

func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	adminID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	customer, err := h.customerService.CreateCustomer(adminID, req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(customer, "Customer created"))
}

func (h *CustomerHandler) UpdateCustomer(c *fiber.Ctx) error {
	customerID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid customer ID"))
	}

	var req models.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	customer, err := h.customerService.UpdateCustomer(uint(customerID), req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(customer, "Customer updated"))
}

func (h *CustomerHandler) DeleteCustomer(c *fiber.Ctx) error {
	customerID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid customer ID"))
	}

	if err := h.customerService.DeleteCustomer(uint(customerID)); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Customer deleted"))
}

func (h *CustomerHandler) CheckIn(c *fiber.Ctx) error {
	adminID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	customerID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid customer ID"))
	}

	var req models.CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	visit, err := h.customerService.CheckIn(adminID, uint(customerID), req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(visit, "Guest checked in"))
}

func (h *CustomerHandler) GetVisits(c *fiber.Ctx) error {
	customerID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid customer ID"))
	}

	visits, err := h.customerService.GetVisits(uint(customerID))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(visits, ""))
}
