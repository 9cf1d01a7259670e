package repository

import (
	"github.com/sefazor/coworkly-backend/internal/models"
	"gorm.io/gorm"
)

type InquiryRepository struct {
	db *gorm.DB
}

func NewInquiryRepository(db *gorm.DB) *InquiryRepository {
	return &InquiryRepository{db: db}
}

func (r *InquiryRepository) Create(inquiry *models.Inquiry) error {
	return r.db.Create(inquiry).Error
}

func (r *InquiryRepository) GetByID(id uint) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	err := r.db.First(&inquiry, id).Error
	if err != nil {
		return nil, err
	}
	return &inquiry, nil
}

func (r *InquiryRepository) GetAll(status models.InquiryStatus) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	query := r.db.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&inquiries).Error
	return inquiries, err
}

func (r *InquiryRepository) Update(inquiry *models.Inquiry) error {
	return r.db.Save(inquiry).Error
}

func (r *InquiryRepository) CountByStatus(status models.InquiryStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Inquiry{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
