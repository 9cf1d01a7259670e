package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/sefazor/coworkly-backend/internal/models"
	"github.com/sefazor/coworkly-backend/internal/repository"
	"github.com/sefazor/coworkly-backend/pkg/email"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PerkService struct {
	membershipRepo  *repository.MembershipRepository
	usageRepo       *repository.PerkUsageRepository
	roomRepo        *repository.RoomRepository
	bookingRepo     *repository.BookingRepository
	userRepo        *repository.UserRepository
	activityService *ActivityService
	emailService    *email.EmailService
	logger          *zap.Logger
}

func NewPerkService(
	membershipRepo *repository.MembershipRepository,
	usageRepo *repository.PerkUsageRepository,
	roomRepo *repository.RoomRepository,
	bookingRepo *repository.BookingRepository,
	userRepo *repository.UserRepository,
	activityService *ActivityService,
	emailService *email.EmailService,
	logger *zap.Logger,
) *PerkService {
	return &PerkService{
		membershipRepo:  membershipRepo,
		usageRepo:       usageRepo,
		roomRepo:        roomRepo,
		bookingRepo:     bookingRepo,
		userRepo:        userRepo,
		activityService: activityService,
		emailService:    emailService,
		logger:          logger,
	}
}

// GetPerkStatuses evaluates every perk of the user's active membership.
// Pure function of the usage log and the current time: no state is written,
// so calling it twice in a row yields identical figures.
func (s *PerkService) GetPerkStatuses(userID uint) (*models.PerkStatusResponse, error) {
	now := time.Now()

	membership, err := s.membershipRepo.GetActiveByUserID(userID, now)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveMembership
		}
		return nil, err
	}

	statuses := make([]models.PerkStatus, 0, len(membership.Plan.Perks))
	for _, perk := range membership.Plan.Perks {
		totals, err := s.usageTotals(membership.ID, perk, now)
		if err != nil {
			return nil, err
		}

		status := models.PerkStatus{
			PerkID:        perk.ID,
			Type:          perk.Type,
			Name:          perk.Name,
			Quantity:      perk.Quantity,
			Unit:          perk.Unit,
			DaysOfWeek:    perk.DaysOfWeek,
			ValidFrom:     perk.ValidFrom,
			ValidUntil:    perk.ValidUntil,
			IsAvailable:   true,
			UsedToday:     totals.Today,
			UsedThisWeek:  totals.ThisWeek,
			UsedThisMonth: totals.ThisMonth,
		}

		in := ruleInput{Perk: perk, Membership: *membership, Usage: totals, Now: now}
		if rej := runRules(evaluationRules(), in); rej != nil {
			status.IsAvailable = false
			status.UnavailableReason = rej.Reason
			status.NextAvailableAt = rej.NextAvailable
		}

		if perk.Type.SumsQuantity() {
			remaining := perk.Quantity - totals.Today
			if remaining < 0 {
				remaining = 0
			}
			status.RemainingToday = &remaining
		}

		statuses = append(statuses, status)
	}

	return &models.PerkStatusResponse{
		Membership: models.MembershipSummary{
			ID:        membership.ID,
			PlanName:  membership.Plan.Name,
			Status:    membership.Status,
			StartDate: membership.StartDate,
			EndDate:   membership.EndDate,
		},
		Perks: statuses,
	}, nil
}

// RedeemPerk validates a redemption attempt from scratch. Evaluator output
// is never trusted: state may have changed since the client fetched it.
//
// The generic path is read-check-write without a lock; two concurrent
// redemptions near a cap can overshoot it. Only the meeting-room path gets
// a transaction, because it writes two rows.
func (s *PerkService) RedeemPerk(userID, perkID uint, req models.RedeemPerkRequest) (*models.RedeemPerkResponse, error) {
	now := time.Now()

	membership, err := s.membershipRepo.GetActiveByUserID(userID, now)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveMembership
		}
		return nil, err
	}

	perk, ok := findPerk(membership.Plan.Perks, perkID)
	if !ok {
		return nil, ErrPerkNotFound
	}

	totals, err := s.usageTotals(membership.ID, perk, now)
	if err != nil {
		return nil, err
	}

	in := ruleInput{Perk: perk, Membership: *membership, Usage: totals, Now: now}
	if rej := runRules(redemptionRules(), in); rej != nil {
		return nil, Reject(rej.Reason)
	}

	if perk.Type == models.PerkMeetingRoomHours {
		return s.redeemMeetingRoomHours(membership, perk, userID, req, totals, now)
	}

	usage := &models.PerkUsage{
		MembershipID: membership.ID,
		PerkID:       perk.ID,
		UserID:       userID,
		QuantityUsed: 1,
		UsedAt:       now,
		Notes:        req.Notes,
	}
	if err := s.usageRepo.Create(usage); err != nil {
		return nil, err
	}

	s.activityService.Log(userID, "perk.redeemed", "perk", perk.ID, perk.Name)

	return &models.RedeemPerkResponse{
		Usage:              *usage,
		RemainingToday:     remainingAfter(perk.MaxPerDay, totals.Today, 1),
		RemainingThisWeek:  remainingAfter(perk.MaxPerWeek, totals.ThisWeek, 1),
		RemainingThisMonth: remainingAfter(perk.MaxPerMonth, totals.ThisMonth, 1),
	}, nil
}

func (s *PerkService) redeemMeetingRoomHours(
	membership *models.Membership,
	perk models.PlanPerk,
	userID uint,
	req models.RedeemPerkRequest,
	totals perkUsageTotals,
	now time.Time,
) (*models.RedeemPerkResponse, error) {
	if req.RoomID == 0 || req.BookingDate == "" || req.StartTime == "" || req.EndTime == "" {
		return nil, Reject("Room, booking date, start time and end time are required")
	}
	if req.Duration <= 0 {
		return nil, Reject("Duration must be greater than zero")
	}
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

	availableHours := perk.Quantity - totals.Today
	if req.Duration > availableHours {
		return nil, Reject(fmt.Sprintf("Insufficient hours. You have %v hours available today", availableHours))
	}
	if perk.MaxPerDay != nil && totals.Today+req.Duration > float64(*perk.MaxPerDay) {
		return nil, Reject(fmt.Sprintf("Daily limit of %d hours would be exceeded", *perk.MaxPerDay))
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

	existing, err := s.bookingRepo.GetActiveByRoomAndDate(room.ID, bookingDate)
	if err != nil {
		return nil, err
	}
	if hasBookingConflict(existing, req.StartTime, req.EndTime) {
		return nil, Reject("The room is already booked for the selected time")
	}

	usage := &models.PerkUsage{
		MembershipID: membership.ID,
		PerkID:       perk.ID,
		UserID:       userID,
		QuantityUsed: req.Duration,
		UsedAt:       now,
		Notes:        req.Notes,
	}
	booking := &models.RoomBooking{
		RoomID:            room.ID,
		UserID:            userID,
		MembershipID:      &membership.ID,
		BookingDate:       bookingDate,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		Duration:          req.Duration,
		NumberOfAttendees: req.NumberOfAttendees,
		Purpose:           req.Purpose,
		Notes:             req.Notes,
		Status:            models.BookingConfirmed,
		TotalCharge:       0, // perk-funded
	}

	if err := s.usageRepo.CreateWithBooking(usage, booking); err != nil {
		return nil, err
	}

	s.activityService.Log(userID, "perk.room_booked", "booking", booking.ID,
		fmt.Sprintf("%s %s %s-%s", room.Name, req.BookingDate, req.StartTime, req.EndTime))

	if user, err := s.userRepo.GetByID(userID); err == nil {
		go func() {
			if err := s.emailService.SendBookingConfirmation(
				user.Email, user.FullName, room.Name, req.BookingDate, req.StartTime, req.EndTime,
			); err != nil {
				s.logger.Warn("Failed to send booking confirmation", zap.Error(err))
			}
		}()
	}

	remaining := availableHours - req.Duration
	return &models.RedeemPerkResponse{
		Usage:          *usage,
		Booking:        booking,
		RemainingToday: &remaining,
	}, nil
}

// usageTotals recomputes today/this-week/this-month usage from the
// append-only log. Discrete perks count rows, hour-based perks sum
// quantity_used; the distinction is selected once via PerkType.
func (s *PerkService) usageTotals(membershipID uint, perk models.PlanPerk, now time.Time) (perkUsageTotals, error) {
	var totals perkUsageTotals

	periods := []struct {
		from time.Time
		dest *float64
	}{
		{startOfDay(now), &totals.Today},
		{startOfWeek(now), &totals.ThisWeek},
		{startOfMonth(now), &totals.ThisMonth},
	}

	for _, p := range periods {
		if perk.Type.SumsQuantity() {
			sum, err := s.usageRepo.SumInRange(membershipID, perk.ID, p.from, now)
			if err != nil {
				return totals, err
			}
			*p.dest = sum
		} else {
			count, err := s.usageRepo.CountInRange(membershipID, perk.ID, p.from, now)
			if err != nil {
				return totals, err
			}
			*p.dest = float64(count)
		}
	}

	return totals, nil
}

func findPerk(perks []models.PlanPerk, perkID uint) (models.PlanPerk, bool) {
	for _, p := range perks {
		if p.ID == perkID {
			return p, true
		}
	}
	return models.PlanPerk{}, false
}

func remainingAfter(limit *int, used, delta float64) *float64 {
	if limit == nil {
		return nil
	}
	remaining := float64(*limit) - used - delta
	if remaining < 0 {
		remaining = 0
	}
	return &remaining
}
