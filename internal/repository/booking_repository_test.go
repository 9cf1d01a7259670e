package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sefazor/coworkly-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetActiveByRoomAndDateFiltersStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	date := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "room_bookings" WHERE room_id = \$1 AND booking_date = \$2 AND status IN \(\$3,\$4\)`).
		WithArgs(uint(3), date, models.BookingPending, models.BookingConfirmed).
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_id", "start_time", "end_time", "status"}).
			AddRow(1, 3, "10:00", "11:00", "confirmed").
			AddRow(2, 3, "14:00", "15:00", "pending"))

	bookings, err := repo.GetActiveByRoomAndDate(3, date)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "10:00", bookings[0].StartTime)
	assert.Equal(t, models.BookingPending, bookings[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountForDate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	date := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "room_bookings" WHERE booking_date = \$1 AND status IN \(\$2,\$3\)`).
		WithArgs(date, models.BookingPending, models.BookingConfirmed).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	count, err := repo.CountForDate(date)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
