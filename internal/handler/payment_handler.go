package handler

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/coworkly-backend/internal/models"
	"github.com/sefazor/coworkly-backend/internal/service"
	"github.com/stripe/stripe-go/v74/webhook"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	paymentService *service.PaymentService
	logger         *zap.Logger
}

func NewPaymentHandler(paymentService *service.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

// CreatePlanCheckout starts a Stripe checkout session for a membership plan.
func (h *PaymentHandler) CreatePlanCheckout(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	planID, err := strconv.ParseUint(c.Params("planId"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid plan ID"))
	}

	session, err := h.paymentService.CreatePlanCheckoutSession(userID, uint(planID))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(session, ""))
}

func (h *PaymentHandler) GetMyPayments(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	payments, err := h.paymentService.GetUserPayments(userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(payments, ""))
}

func (h *PaymentHandler) GetAllPayments(c *fiber.Ctx) error {
	payments, err := h.paymentService.GetAllPayments()
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(payments, ""))
}

func (h *PaymentHandler) HandleStripeWebhook(c *fiber.Ctx) error {
	webhookSecret := os.Getenv("STRIPE_WEBHOOK_SECRET")

	payload := c.Body()
	signatureHeader := c.Get("Stripe-Signature")

	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, webhookSecret,
		webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		})
	if err != nil {
		h.logger.Warn("Stripe webhook signature verification failed", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   fmt.Sprintf("Webhook error: %v", err),
		})
	}

	if err := h.paymentService.HandleStripeWebhook(&event); err != nil {
		h.logger.Error("Stripe webhook processing failed",
			zap.String("event_type", string(event.Type)),
			zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Webhook processing failed",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}
