package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/coworkly-backend/internal/models"
	"github.com/sefazor/coworkly-backend/internal/service"
	"github.com/sefazor/coworkly-backend/pkg/captcha"
	"github.com/sefazor/coworkly-backend/pkg/utils"
)

type InquiryHandler struct {
	inquiryService *service.InquiryService
	validator      *utils.Validator
}

func NewInquiryHandler(inquiryService *service.InquiryService, validator *utils.Validator) *InquiryHandler {
	return &InquiryHandler{
		inquiryService: inquiryService,
		validator:      validator,
	}
}

// SubmitInquiry is the public contact form. Turnstile keeps bots out since
// there is no auth in front of it.
func (h *InquiryHandler) SubmitInquiry(c *fiber.Ctx) error {
	var req models.InquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	valid, err := captcha.VerifyTurnstile(req.TurnstileToken)
	if err != nil || !valid {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Captcha verification failed"))
	}

	inquiry, err := h.inquiryService.SubmitInquiry(req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(inquiry, "Inquiry received"))
}

func (h *InquiryHandler) GetInquiries(c *fiber.Ctx) error {
	status := models.InquiryStatus(c.Query("status"))

	inquiries, err := h.inquiryService.GetInquiries(status)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(inquiries, ""))
}

func (h *InquiryHandler) UpdateInquiry(c *fiber.Ctx) error {
	inquiryID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid inquiry ID"))
	}

	var req models.UpdateInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	inquiry, err := h.inquiryService.UpdateInquiryStatus(uint(inquiryID), req.Status)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(inquiry, "Inquiry updated"))
}
