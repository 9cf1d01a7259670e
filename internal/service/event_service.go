package service

import (
	"errors"
	"strings"
	"time"

	"github.com/sefazor/coworkly-backend/internal/models"
	"github.com/sefazor/coworkly-backend/internal/repository"
	"github.com/sefazor/coworkly-backend/pkg/qrcode"
	"github.com/sefazor/coworkly-backend/pkg/utils"
	"gorm.io/gorm"
)

type EventService struct {
	eventRepo        *repository.EventRepository
	registrationRepo *repository.RegistrationRepository
	paymentService   *PaymentService
	qrService        *qrcode.QRService
	activityService  *ActivityService
}

func NewEventService(
	eventRepo *repository.EventRepository,
	registrationRepo *repository.RegistrationRepository,
	paymentService *PaymentService,
	qrService *qrcode.QRService,
	activityService *ActivityService,
) *EventService {
	return &EventService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		paymentService:   paymentService,
		qrService:        qrService,
		activityService:  activityService,
	}
}

func (s *EventService) GetUpcomingEvents() ([]models.Event, error) {
	return s.eventRepo.GetUpcoming(time.Now())
}

func (s *EventService) GetAllEvents() ([]models.Event, error) {
	return s.eventRepo.GetAll()
}

func (s *EventService) GetEventByURL(url string) (*models.Event, error) {
	event, err := s.eventRepo.GetByURL(url)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (s *EventService) CreateEvent(adminID uint, req models.EventRequest) (*models.Event, error) {
	event, err := eventFromRequest(req)
	if err != nil {
		return nil, err
	}
	event.URL = utils.GenerateRandomString(10)

	created, err := s.eventRepo.Create(event)
	if err != nil {
		return nil, err
	}

	s.activityService.Log(adminID, "event.created", "event", created.ID, created.Title)
	return created, nil
}

func (s *EventService) UpdateEvent(adminID, eventID uint, req models.EventRequest) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	updated, err := eventFromRequest(req)
	if err != nil {
		return nil, err
	}
	event.Title = updated.Title
	event.Description = updated.Description
	event.Location = updated.Location
	event.Capacity = updated.Capacity
	event.Price = updated.Price
	event.StartsAt = updated.StartsAt
	event.EndsAt = updated.EndsAt
	event.IsPublished = updated.IsPublished

	if err := s.eventRepo.Update(event); err != nil {
		return nil, err
	}

	s.activityService.Log(adminID, "event.updated", "event", event.ID, event.Title)
	return event, nil
}

func (s *EventService) DeleteEvent(adminID, eventID uint) error {
	if _, err := s.eventRepo.GetByID(eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return err
	}

	if err := s.eventRepo.Delete(eventID); err != nil {
		return err
	}

	s.activityService.Log(adminID, "event.deleted", "event", eventID, "")
	return nil
}

// Register books a seat for the user. Free events confirm immediately;
// paid events hold the seat as pending_payment and return a checkout URL.
func (s *EventService) Register(userID uint, eventURL string) (*models.RegisterEventResponse, error) {
	event, err := s.GetEventByURL(eventURL)
	if err != nil {
		return nil, err
	}
	if !event.IsPublished {
		return nil, ErrEventNotFound
	}
	if event.StartsAt.Before(time.Now()) {
		return nil, Reject("This event has already started")
	}

	exists, err := s.registrationRepo.Exists(event.ID, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, Reject("You are already registered for this event")
	}

	if event.Capacity > 0 {
		count, err := s.registrationRepo.CountActive(event.ID)
		if err != nil {
			return nil, err
		}
		if count >= int64(event.Capacity) {
			return nil, Reject("This event is fully booked")
		}
	}

	status := models.RegistrationConfirmed
	if event.Price > 0 {
		status = models.RegistrationPendingPayment
	}

	registration := &models.EventRegistration{
		EventID:    event.ID,
		UserID:     userID,
		TicketCode: strings.ToUpper(utils.GenerateRandomString(12)),
		Status:     status,
	}
	if err := s.registrationRepo.Create(registration); err != nil {
		return nil, err
	}

	resp := &models.RegisterEventResponse{Registration: *registration}

	if event.Price > 0 {
		session, err := s.paymentService.CreateEventCheckoutSession(userID, event, registration.ID)
		if err != nil {
			return nil, err
		}
		resp.CheckoutURL = session.URL
	}

	s.activityService.Log(userID, "event.registered", "event", event.ID, event.Title)
	return resp, nil
}

func (s *EventService) GetUserRegistrations(userID uint) ([]models.EventRegistration, error) {
	return s.registrationRepo.GetByUserID(userID)
}

func (s *EventService) CancelRegistration(userID, registrationID uint) error {
	registration, err := s.registrationRepo.GetByID(registrationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Reject("Registration not found")
		}
		return err
	}
	if registration.UserID != userID {
		return Reject("Registration not found")
	}
	if registration.Status == models.RegistrationCancelled {
		return Reject("Registration is already cancelled")
	}

	registration.Status = models.RegistrationCancelled
	return s.registrationRepo.Update(registration)
}

// GetTicketQR renders the registration's ticket code as a PNG.
func (s *EventService) GetTicketQR(userID, registrationID uint) ([]byte, error) {
	registration, err := s.registrationRepo.GetByID(registrationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, Reject("Registration not found")
		}
		return nil, err
	}
	if registration.UserID != userID {
		return nil, Reject("Registration not found")
	}
	if registration.Status != models.RegistrationConfirmed {
		return nil, Reject("Ticket is not confirmed")
	}

	return s.qrService.GenerateTicketQR(registration.TicketCode, 256)
}

func eventFromRequest(req models.EventRequest) (*models.Event, error) {
	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		return nil, Reject("starts_at must be an RFC3339 timestamp")
	}

	var endsAt time.Time
	if req.EndsAt != "" {
		endsAt, err = time.Parse(time.RFC3339, req.EndsAt)
		if err != nil {
			return nil, Reject("ends_at must be an RFC3339 timestamp")
		}
		if !endsAt.After(startsAt) {
			return nil, Reject("ends_at must be after starts_at")
		}
	}

	published := true
	if req.IsPublished != nil {
		published = *req.IsPublished
	}

	return &models.Event{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Capacity:    req.Capacity,
		Price:       req.Price,
		StartsAt:    startsAt,
		EndsAt:      endsAt,
		IsPublished: published,
	}, nil
}
