package service

import (
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sefazor/coworkly-backend/internal/models"
	"github.com/sefazor/coworkly-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

// midnightArg matches only timestamps truncated to the start of a day, the
// shape booking_date rows are written with.
type midnightArg struct{}

func (midnightArg) Match(v driver.Value) bool {
	ts, ok := v.(time.Time)
	if !ok {
		return false
	}
	return ts.Hour() == 0 && ts.Minute() == 0 && ts.Second() == 0 && ts.Nanosecond() == 0
}

// The bookings-today figure compares against a DATE column, so the service
// must query with a midnight date, not the wall-clock time.
func TestGetStatsCountsBookingsByDate(t *testing.T) {
	db, mock := newMockDB(t)

	svc := NewDashboardService(
		repository.NewMembershipRepository(db),
		repository.NewBookingRepository(db),
		repository.NewEventRepository(db),
		repository.NewInquiryRepository(db),
		repository.NewPaymentRepository(db),
	)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "memberships"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "room_bookings" WHERE booking_date = \$1 AND status IN \(\$2,\$3\)`).
		WithArgs(midnightArg{}, models.BookingPending, models.BookingConfirmed).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "inquiries" WHERE status = \$1`).
		WithArgs(models.InquiryNew).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(1250.0))

	stats, err := svc.GetStats()
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.ActiveMemberships)
	assert.Equal(t, int64(3), stats.BookingsToday)
	assert.Equal(t, int64(2), stats.UpcomingEvents)
	assert.Equal(t, int64(4), stats.OpenInquiries)
	assert.Equal(t, 1250.0, stats.RevenueThisMonth)
	assert.NoError(t, mock.ExpectationsWereMet())
}
