package service

import (
	"errors"
	"time"

	"github.com/sefazor/coworkly-backend/internal/models"
	"github.com/sefazor/coworkly-backend/internal/repository"
	"github.com/sefazor/coworkly-backend/pkg/email"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type BookingService struct {
	bookingRepo     *repository.BookingRepository
	roomRepo        *repository.RoomRepository
	userRepo        *repository.UserRepository
	activityService *ActivityService
	emailService    *email.EmailService
	logger          *zap.Logger
}

func NewBookingService(
	bookingRepo *repository.BookingRepository,
	roomRepo *repository.RoomRepository,
	userRepo *repository.UserRepository,
	activityService *ActivityService,
	emailService *email.EmailService,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:     bookingRepo,
		roomRepo:        roomRepo,
		userRepo:        userRepo,
		activityService: activityService,
		emailService:    emailService,
		logger:          logger,
	}
}

// CreateBooking is the paid path: no perk involved, charge is duration
// times the room's hourly rate and the booking starts out pending.
func (s *BookingService) CreateBooking(userID uint, req models.CreateBookingRequest) (*models.RoomBooking, error) {
	now := time.Now()

	if req.EndTime <= req.StartTime {
		return nil, Reject("End time must be after start time")
	}

	parsed, err := time.Parse("2006-01-02", req.BookingDate)
	if err != nil {
		return nil, Reject("Invalid booking date, expected YYYY-MM-DD")
	}
	bookingDate := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, now.Location())
	if bookingDate.Before(startOfDay(now)) {
		return nil, Reject("Cannot book meeting rooms for past dates")
	}

	room, err := s.roomRepo.GetByID(req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	if !room.IsActive {
		return nil, Reject("Meeting room is not available")
	}
	if req.NumberOfAttendees > room.Capacity {
		return nil, Reject("Room capacity exceeded")
	}

	existing, err := s.bookingRepo.GetActiveByRoomAndDate(room.ID, bookingDate)
	if err != nil {
		return nil, err
	}
	if hasBookingConflict(existing, req.StartTime, req.EndTime) {
		return nil, Reject("The room is already booked for the selected time")
	}

	booking := &models.RoomBooking{
		RoomID:            room.ID,
		UserID:            userID,
		BookingDate:       bookingDate,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		Duration:          req.Duration,
		NumberOfAttendees: req.NumberOfAttendees,
		Purpose:           req.Purpose,
		Notes:             req.Notes,
		Status:            models.BookingPending,
		TotalCharge:       req.Duration * room.HourlyRate,
	}
	if err := s.bookingRepo.Create(booking); err != nil {
		return nil, err
	}

	s.activityService.Log(userID, "booking.created", "booking", booking.ID, room.Name)

	return booking, nil
}

// GetRoomCalendar returns all bookings for one room and day, any status.
func (s *BookingService) GetRoomCalendar(roomID uint, date string) ([]models.RoomBooking, error) {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, Reject("Invalid date, expected YYYY-MM-DD")
	}
	if _, err := s.roomRepo.GetByID(roomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	day := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.Now().Location())
	return s.bookingRepo.GetByRoomAndDate(roomID, day)
}

func (s *BookingService) GetUserBookings(userID uint) ([]models.RoomBooking, error) {
	return s.bookingRepo.GetByUserID(userID)
}

func (s *BookingService) CancelBooking(bookingID, userID uint, isAdmin bool) error {
	booking, err := s.bookingRepo.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return err
	}
	if booking.UserID != userID && !isAdmin {
		return Reject("You can only cancel your own bookings")
	}
	if booking.Status == models.BookingCancelled {
		return Reject("Booking is already cancelled")
	}
	if booking.Status == models.BookingCompleted {
		return Reject("Completed bookings cannot be cancelled")
	}

	booking.Status = models.BookingCancelled
	if err := s.bookingRepo.Update(booking); err != nil {
		return err
	}

	s.activityService.Log(userID, "booking.cancelled", "booking", booking.ID, "")
	return nil
}

// bookingOverlaps reports whether [newStart,newEnd) collides with an
// existing slot. Three cases: the new start falls inside the existing slot,
// the new end falls inside it, or the new slot fully contains it. Slots
// that merely touch (existing end == new start) do not conflict.
func bookingOverlaps(existingStart, existingEnd, newStart, newEnd string) bool {
	switch {
	case existingStart <= newStart && newStart < existingEnd:
		return true
	case existingStart < newEnd && newEnd <= existingEnd:
		return true
	case newStart <= existingStart && existingEnd <= newEnd:
		return true
	}
	return false
}

func hasBookingConflict(existing []models.RoomBooking, startTime, endTime string) bool {
	for _, b := range existing {
		if bookingOverlaps(b.StartTime, b.EndTime, startTime, endTime) {
			return true
		}
	}
	return false
}
