package service

import (
	"time"

	"github.com/sefazor/coworkly-backend/internal/models"
	"github.com/sefazor/coworkly-backend/internal/repository"
)

type DashboardService struct {
	membershipRepo *repository.MembershipRepository
	bookingRepo    *repository.BookingRepository
	eventRepo      *repository.EventRepository
	inquiryRepo    *repository.InquiryRepository
	paymentRepo    *repository.PaymentRepository
}

func NewDashboardService(
	membershipRepo *repository.MembershipRepository,
	bookingRepo *repository.BookingRepository,
	eventRepo *repository.EventRepository,
	inquiryRepo *repository.InquiryRepository,
	paymentRepo *repository.PaymentRepository,
) *DashboardService {
	return &DashboardService{
		membershipRepo: membershipRepo,
		bookingRepo:    bookingRepo,
		eventRepo:      eventRepo,
		inquiryRepo:    inquiryRepo,
		paymentRepo:    paymentRepo,
	}
}

func (s *DashboardService) GetStats() (*models.DashboardStats, error) {
	now := time.Now()

	memberships, err := s.membershipRepo.CountActive(now)
	if err != nil {
		return nil, err
	}
	// booking_date is a DATE column; rows are stored at midnight
	bookings, err := s.bookingRepo.CountForDate(startOfDay(now))
	if err != nil {
		return nil, err
	}
	events, err := s.eventRepo.CountUpcoming(now)
	if err != nil {
		return nil, err
	}
	inquiries, err := s.inquiryRepo.CountByStatus(models.InquiryNew)
	if err != nil {
		return nil, err
	}
	revenue, err := s.paymentRepo.SumCompletedSince(startOfMonth(now))
	if err != nil {
		return nil, err
	}

	return &models.DashboardStats{
		ActiveMemberships: memberships,
		BookingsToday:     bookings,
		UpcomingEvents:    events,
		OpenInquiries:     inquiries,
		RevenueThisMonth:  revenue,
	}, nil
}
