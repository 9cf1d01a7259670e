package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sefazor/coworkly-backend/internal/models"
	"github.com/sefazor/coworkly-backend/internal/repository"
	"github.com/sefazor/coworkly-backend/pkg/payment"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/price"
	"github.com/stripe/stripe-go/v74/product"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PaymentService struct {
	stripeService    *payment.StripeService
	userRepo         *repository.UserRepository
	planRepo         *repository.PlanRepository
	membershipRepo   *repository.MembershipRepository
	paymentRepo      *repository.PaymentRepository
	registrationRepo *repository.RegistrationRepository
	activityService  *ActivityService
	logger           *zap.Logger
}

func NewPaymentService(
	stripeService *payment.StripeService,
	userRepo *repository.UserRepository,
	planRepo *repository.PlanRepository,
	membershipRepo *repository.MembershipRepository,
	paymentRepo *repository.PaymentRepository,
	registrationRepo *repository.RegistrationRepository,
	activityService *ActivityService,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		stripeService:    stripeService,
		userRepo:         userRepo,
		planRepo:         planRepo,
		membershipRepo:   membershipRepo,
		paymentRepo:      paymentRepo,
		registrationRepo: registrationRepo,
		activityService:  activityService,
		logger:           logger,
	}
}

// CreatePlanCheckoutSession starts a Stripe checkout for a membership plan.
// The membership itself is only created when the webhook confirms payment.
func (s *PaymentService) CreatePlanCheckoutSession(userID, planID uint) (*models.CheckoutSession, error) {
	plan, err := s.planRepo.GetByID(planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	if !plan.IsActive {
		return nil, Reject("This plan is no longer offered")
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	session, err := s.checkout(user.Email, plan.Name,
		fmt.Sprintf("%d-day membership", plan.DurationDays), plan.Price,
		map[string]string{
			"kind":    string(models.PaymentKindMembership),
			"user_id": fmt.Sprintf("%d", userID),
			"plan_id": fmt.Sprintf("%d", planID),
		})
	if err != nil {
		return nil, err
	}

	record := &models.Payment{
		UserID:          userID,
		Kind:            models.PaymentKindMembership,
		ReferenceID:     planID,
		Amount:          plan.Price,
		Currency:        "usd",
		StripeSessionID: session.ID,
		Status:          models.PaymentStatusPending,
	}
	if err := s.paymentRepo.Create(record); err != nil {
		return nil, err
	}

	return &models.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

// CreateEventCheckoutSession starts a checkout for a paid event ticket.
// ReferenceID points at the pending registration.
func (s *PaymentService) CreateEventCheckoutSession(userID uint, event *models.Event, registrationID uint) (*models.CheckoutSession, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	session, err := s.checkout(user.Email, event.Title, "Event ticket", event.Price,
		map[string]string{
			"kind":            string(models.PaymentKindEventTicket),
			"user_id":         fmt.Sprintf("%d", userID),
			"registration_id": fmt.Sprintf("%d", registrationID),
		})
	if err != nil {
		return nil, err
	}

	record := &models.Payment{
		UserID:          userID,
		Kind:            models.PaymentKindEventTicket,
		ReferenceID:     registrationID,
		Amount:          event.Price,
		Currency:        "usd",
		StripeSessionID: session.ID,
		Status:          models.PaymentStatusPending,
	}
	if err := s.paymentRepo.Create(record); err != nil {
		return nil, err
	}

	return &models.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

// checkout creates a throwaway product and price, then the session itself.
func (s *PaymentService) checkout(customerEmail, name, description string, amount float64, metadata map[string]string) (*stripe.CheckoutSession, error) {
	productParams := &stripe.ProductParams{
		Name:        stripe.String(name),
		Description: stripe.String(description),
	}
	prod, err := product.New(productParams)
	if err != nil {
		return nil, err
	}

	priceParams := &stripe.PriceParams{
		Product:    stripe.String(prod.ID),
		UnitAmount: stripe.Int64(int64(amount * 100)), // USD to cents
		Currency:   stripe.String(string(stripe.CurrencyUSD)),
	}
	p, err := price.New(priceParams)
	if err != nil {
		return nil, err
	}

	return s.stripeService.CreateCheckoutSession(customerEmail, p.ID, metadata)
}

func (s *PaymentService) HandleStripeWebhook(event *stripe.Event) error {
	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return err
		}
		return s.completePayment(&session)

	case "checkout.session.expired", "checkout.session.async_payment_failed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return err
		}
		return s.failPayment(session.ID)

	case "charge.refunded":
		var charge stripe.Charge
		if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
			return err
		}
		if charge.PaymentIntent == nil {
			return nil
		}
		return s.refundPayment(charge.PaymentIntent.ID)
	}

	return nil
}

func (s *PaymentService) completePayment(session *stripe.CheckoutSession) error {
	record, err := s.paymentRepo.GetBySessionID(session.ID)
	if err != nil {
		return err
	}
	if record.Status == models.PaymentStatusCompleted {
		// Stripe retries webhooks; the second delivery is a no-op
		return nil
	}

	record.Status = models.PaymentStatusCompleted
	// The intent ID links refund webhooks back to this payment
	if session.PaymentIntent != nil {
		record.StripeIntentID = session.PaymentIntent.ID
	}

	switch record.Kind {
	case models.PaymentKindMembership:
		plan, err := s.planRepo.GetByID(record.ReferenceID)
		if err != nil {
			return err
		}
		now := time.Now()
		endDate := now.AddDate(0, 0, plan.DurationDays)
		membership := &models.Membership{
			UserID:    record.UserID,
			PlanID:    plan.ID,
			Status:    models.MembershipActive,
			StartDate: now,
			EndDate:   &endDate,
		}
		if err := s.membershipRepo.Create(membership); err != nil {
			return err
		}
		record.MembershipID = &membership.ID
		s.activityService.Log(record.UserID, "membership.purchased", "membership", membership.ID, plan.Name)

	case models.PaymentKindEventTicket:
		registration, err := s.registrationRepo.GetByID(record.ReferenceID)
		if err != nil {
			return err
		}
		registration.Status = models.RegistrationConfirmed
		if err := s.registrationRepo.Update(registration); err != nil {
			return err
		}
		s.activityService.Log(record.UserID, "event.ticket_paid", "registration", registration.ID, "")
	}

	return s.paymentRepo.Update(record)
}

func (s *PaymentService) failPayment(sessionID string) error {
	record, err := s.paymentRepo.GetBySessionID(sessionID)
	if err != nil {
		return err
	}

	record.Status = models.PaymentStatusFailed
	if err := s.paymentRepo.Update(record); err != nil {
		return err
	}

	if record.Kind == models.PaymentKindEventTicket {
		registration, err := s.registrationRepo.GetByID(record.ReferenceID)
		if err != nil {
			return err
		}
		registration.Status = models.RegistrationCancelled
		return s.registrationRepo.Update(registration)
	}
	return nil
}

func (s *PaymentService) refundPayment(intentID string) error {
	record, err := s.paymentRepo.GetByIntentID(intentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Not one of ours
			return nil
		}
		return err
	}

	record.Status = models.PaymentStatusRefunded
	if err := s.paymentRepo.Update(record); err != nil {
		return err
	}

	// A refunded membership is revoked immediately
	if record.Kind == models.PaymentKindMembership && record.MembershipID != nil {
		membership, err := s.membershipRepo.GetByID(*record.MembershipID)
		if err != nil {
			return err
		}
		now := time.Now()
		membership.Status = models.MembershipExpired
		membership.EndDate = &now
		if err := s.membershipRepo.Update(membership); err != nil {
			return err
		}
		s.activityService.Log(record.UserID, "membership.refunded", "membership", membership.ID, "")
	}

	return nil
}

func (s *PaymentService) GetUserPayments(userID uint) ([]models.Payment, error) {
	return s.paymentRepo.GetByUserID(userID)
}

func (s *PaymentService) GetAllPayments() ([]models.Payment, error) {
	return s.paymentRepo.GetAll()
}
