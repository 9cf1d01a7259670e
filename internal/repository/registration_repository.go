package repository

import (
	"github.com/sefazor/coworkly-backend/internal/models"
	"gorm.io/gorm"
)

type RegistrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func (r *RegistrationRepository) Create(registration *models.EventRegistration) error {
	return r.db.Create(registration).Error
}

func (r *RegistrationRepository) GetByID(id uint) (*models.EventRegistration, error) {
	var registration models.EventRegistration
	err := r.db.First(&registration, id).Error
	if err != nil {
		return nil, err
	}
	return &registration, nil
}

func (r *RegistrationRepository) Exists(eventID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.EventRegistration{}).
		Where("event_id = ? AND user_id = ? AND status <> ?", eventID, userID, models.RegistrationCancelled).
		Count(&count).Error
	return count > 0, err
}

// CountActive counts registrations that hold a seat for capacity checks.
func (r *RegistrationRepository) CountActive(eventID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.EventRegistration{}).
		Where("event_id = ? AND status <> ?", eventID, models.RegistrationCancelled).
		Count(&count).Error
	return count, err
}

func (r *RegistrationRepository) GetByUserID(userID uint) ([]models.EventRegistration, error) {
	var registrations []models.EventRegistration
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&registrations).Error
	return registrations, err
}

func (r *RegistrationRepository) Update(registration *models.EventRegistration) error {
	return r.db.Save(registration).Error
}
