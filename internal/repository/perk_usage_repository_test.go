package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
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

func TestSumInRangeCoalescesToZero(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPerkUsageRepository(db)

	from := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(quantity_used\), 0\) FROM "perk_usages" WHERE membership_id = \$1 AND perk_id = \$2 AND used_at >= \$3 AND used_at < \$4`).
		WithArgs(uint(1), uint(2), from, to).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0))

	total, err := repo.SumInRange(1, 2, from, to)
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSumInRangeReturnsFractionalTotal(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPerkUsageRepository(db)

	from := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(quantity_used\), 0\) FROM "perk_usages"`).
		WithArgs(uint(1), uint(2), from, to).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(1.5))

	total, err := repo.SumInRange(1, 2, from, to)
	require.NoError(t, err)
	assert.Equal(t, 1.5, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountInRange(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPerkUsageRepository(db)

	from := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "perk_usages" WHERE membership_id = \$1 AND perk_id = \$2 AND used_at >= \$3 AND used_at < \$4`).
		WithArgs(uint(7), uint(9), from, to).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountInRange(7, 9, from, to)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
