package repository

import (
	"github.com/sefazor/coworkly-backend/internal/models"
	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(room *models.MeetingRoom) error {
	return r.db.Create(room).Error
}

func (r *RoomRepository) GetByID(id uint) (*models.MeetingRoom, error) {
	var room models.MeetingRoom
	err := r.db.First(&room, id).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) GetActive() ([]models.MeetingRoom, error) {
	var rooms []models.MeetingRoom
	err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&rooms).Error
	return rooms, err
}

func (r *RoomRepository) GetAll() ([]models.MeetingRoom, error) {
	var rooms []models.MeetingRoom
	err := r.db.Order("name ASC").Find(&rooms).Error
	return rooms, err
}

func (r *RoomRepository) Update(room *models.MeetingRoom) error {
	return r.db.Save(room).Error
}
