package repository

import (
	"time"

	"github.com/sefazor/coworkly-backend/internal/models"
	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(event *models.Event) (*models.Event, error) {
	result := r.db.Create(event)
	if result.Error != nil {
		return nil, result.Error
	}
	return event, nil
}

func (r *EventRepository) GetByID(id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event, id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) GetByURL(url string) (*models.Event, error) {
	var event models.Event
	err := r.db.Where("url = ?", url).First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) GetUpcoming(now time.Time) ([]models.Event, error) {
	var events []models.Event
	err := r.db.Where("is_published = ? AND starts_at >= ?", true, now).
		Order("starts_at ASC").
		Find(&events).Error
	return events, err
}

func (r *EventRepository) GetAll() ([]models.Event, error) {
	var events []models.Event
	err := r.db.Order("starts_at DESC").Find(&events).Error
	return events, err
}

func (r *EventRepository) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

func (r *EventRepository) Delete(id uint) error {
	return r.db.Delete(&models.Event{}, id).Error
}

func (r *EventRepository) CountUpcoming(now time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Event{}).
		Where("is_published = ? AND starts_at >= ?", true, now).
		Count(&count).Error
	return count, err
}
