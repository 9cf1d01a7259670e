package repository

import (
	"time"

	"github.com/sefazor/coworkly-backend/internal/models"
	"gorm.io/gorm"
)

type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

func (r *MembershipRepository) Create(membership *models.Membership) error {
	return r.db.Create(membership).Error
}

func (r *MembershipRepository) GetByID(id uint) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.Preload("Plan.Perks").First(&membership, id).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// GetActiveByUserID returns the user's current active membership with its
// plan and perks loaded. When more than one membership is active the newest
// one wins, so the result is deterministic.
func (r *MembershipRepository) GetActiveByUserID(userID uint, now time.Time) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.Preload("Plan.Perks").
		Where("user_id = ? AND status = ?", userID, models.MembershipActive).
		Where("start_date <= ?", now).
		Where("end_date IS NULL OR end_date >= ?", now).
		Order("start_date DESC").
		First(&membership).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

func (r *MembershipRepository) GetByUserID(userID uint) ([]models.Membership, error) {
	var memberships []models.Membership
	err := r.db.Preload("Plan").
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&memberships).Error
	return memberships, err
}

func (r *MembershipRepository) GetAll() ([]models.Membership, error) {
	var memberships []models.Membership
	err := r.db.Preload("Plan").Order("created_at DESC").Find(&memberships).Error
	return memberships, err
}

func (r *MembershipRepository) Update(membership *models.Membership) error {
	return r.db.Save(membership).Error
}

func (r *MembershipRepository) CountActive(now time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Membership{}).
		Where("status = ?", models.MembershipActive).
		Where("start_date <= ?", now).
		Where("end_date IS NULL OR end_date >= ?", now).
		Count(&count).Error
	return count, err
}
