package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sefazor/coworkly-backend/internal/models"
	"github.com/sefazor/coworkly-backend/internal/repository"
	"github.com/sefazor/coworkly-backend/pkg/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newPerkService(db *gorm.DB) *PerkService {
	nop := zap.NewNop()
	return NewPerkService(
		repository.NewMembershipRepository(db),
		repository.NewPerkUsageRepository(db),
		repository.NewRoomRepository(db),
		repository.NewBookingRepository(db),
		repository.NewUserRepository(db),
		NewActivityService(repository.NewActivityRepository(db), nop),
		email.NewEmailService(nop),
		nop,
	)
}

func hourPerk(quantity float64) models.PlanPerk {
	return models.PlanPerk{
		ID:          5,
		Type:        models.PerkMeetingRoomHours,
		Name:        "Meeting Room Hours",
		Quantity:    quantity,
		Unit:        "hours",
		IsRecurring: true,
	}
}

func roomRequest(now time.Time, duration float64) models.RedeemPerkRequest {
	return models.RedeemPerkRequest{
		RoomID:      3,
		BookingDate: now.AddDate(0, 0, 1).Format("2006-01-02"),
		StartTime:   "10:00",
		EndTime:     "11:30",
		Duration:    duration,
	}
}

func TestRedeemMeetingRoomHoursInsufficient(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newPerkService(db)
	now := time.Now()

	// 1.5 of 2 hours already used today; a 1-hour request must not fit.
	membership := &models.Membership{ID: 1, UserID: 9}
	totals := perkUsageTotals{Today: 1.5}

	_, err := svc.redeemMeetingRoomHours(membership, hourPerk(2), 9, roomRequest(now, 1), totals, now)
	require.Error(t, err)
	assert.True(t, IsRejection(err))
	assert.Equal(t, "Insufficient hours. You have 0.5 hours available today", err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedeemMeetingRoomHoursPastDate(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newPerkService(db)
	now := time.Now()

	req := roomRequest(now, 1)
	req.BookingDate = now.AddDate(0, 0, -1).Format("2006-01-02")

	_, err := svc.redeemMeetingRoomHours(&models.Membership{ID: 1}, hourPerk(2), 9, req, perkUsageTotals{}, now)
	require.Error(t, err)
	assert.True(t, IsRejection(err))
	assert.Equal(t, "Cannot book meeting rooms for past dates", err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedeemMeetingRoomHoursDailyCapWithDuration(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newPerkService(db)
	now := time.Now()

	// Plenty of quota left, but 1 + 1.5 would push past the 2-hour daily cap.
	perk := hourPerk(4)
	perk.MaxPerDay = intp(2)

	_, err := svc.redeemMeetingRoomHours(&models.Membership{ID: 1}, perk, 9, roomRequest(now, 1.5), perkUsageTotals{Today: 1}, now)
	require.Error(t, err)
	assert.True(t, IsRejection(err))
	assert.Equal(t, "Daily limit of 2 hours would be exceeded", err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedeemMeetingRoomHoursConflict(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newPerkService(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "meeting_rooms"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "capacity", "hourly_rate", "is_active"}).
			AddRow(3, "Focus Room", 4, 15.0, true))
	mock.ExpectQuery(`SELECT \* FROM "room_bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_id", "start_time", "end_time", "status"}).
			AddRow(8, 3, "10:00", "11:00", "confirmed"))

	_, err := svc.redeemMeetingRoomHours(&models.Membership{ID: 1}, hourPerk(4), 9, roomRequest(now, 1.5), perkUsageTotals{}, now)
	require.Error(t, err)
	assert.True(t, IsRejection(err))
	assert.Equal(t, "The room is already booked for the selected time", err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedeemMeetingRoomHoursBooksAndReportsRemainder(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newPerkService(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "meeting_rooms"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "capacity", "hourly_rate", "is_active"}).
			AddRow(3, "Focus Room", 4, 15.0, true))
	mock.ExpectQuery(`SELECT \* FROM "room_bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "perk_usages"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))
	mock.ExpectQuery(`INSERT INTO "room_bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(33))
	mock.ExpectCommit()

	membership := &models.Membership{ID: 1, UserID: 9}
	resp, err := svc.redeemMeetingRoomHours(membership, hourPerk(2), 9, roomRequest(now, 1.5), perkUsageTotals{}, now)
	require.NoError(t, err)

	require.NotNil(t, resp.Booking)
	assert.Equal(t, models.BookingConfirmed, resp.Booking.Status)
	assert.Equal(t, 0.0, resp.Booking.TotalCharge)
	assert.Equal(t, 1.5, resp.Usage.QuantityUsed)
	require.NotNil(t, resp.RemainingToday)
	assert.Equal(t, 0.5, *resp.RemainingToday)
	require.NotNil(t, resp.Booking.PerkUsageID)
	assert.Equal(t, uint(21), *resp.Booking.PerkUsageID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
