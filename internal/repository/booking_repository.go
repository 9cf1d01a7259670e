package repository

import (
	"time"

	"github.com/sefazor/coworkly-backend/internal/models"
	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(booking *models.RoomBooking) error {
	return r.db.Create(booking).Error
}

func (r *BookingRepository) GetByID(id uint) (*models.RoomBooking, error) {
	var booking models.RoomBooking
	err := r.db.First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetActiveByRoomAndDate returns the bookings that block a time slot:
// pending and confirmed ones. Cancelled bookings free their slot.
func (r *BookingRepository) GetActiveByRoomAndDate(roomID uint, date time.Time) ([]models.RoomBooking, error) {
	var bookings []models.RoomBooking
	err := r.db.Where("room_id = ? AND booking_date = ? AND status IN ?",
		roomID, date, []models.BookingStatus{models.BookingPending, models.BookingConfirmed}).
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) GetByRoomAndDate(roomID uint, date time.Time) ([]models.RoomBooking, error) {
	var bookings []models.RoomBooking
	err := r.db.Where("room_id = ? AND booking_date = ?", roomID, date).
		Order("start_time ASC").
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) GetByUserID(userID uint) ([]models.RoomBooking, error) {
	var bookings []models.RoomBooking
	err := r.db.Where("user_id = ?", userID).
		Order("booking_date DESC, start_time DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) Update(booking *models.RoomBooking) error {
	return r.db.Save(booking).Error
}

func (r *BookingRepository) CountForDate(date time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.RoomBooking{}).
		Where("booking_date = ? AND status IN ?",
			date, []models.BookingStatus{models.BookingPending, models.BookingConfirmed}).
		Count(&count).Error
	return count, err
}
