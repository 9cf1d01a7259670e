package repository

import (
	"time"

	"github.com/sefazor/coworkly-backend/internal/models"
	"gorm.io/gorm"
)

type PerkUsageRepository struct {
	db *gorm.DB
}

func NewPerkUsageRepository(db *gorm.DB) *PerkUsageRepository {
	return &PerkUsageRepository{db: db}
}

func (r *PerkUsageRepository) Create(usage *models.PerkUsage) error {
	return r.db.Create(usage).Error
}

// CountInRange counts redemptions for discrete perks. Each row is one unit.
func (r *PerkUsageRepository) CountInRange(membershipID, perkID uint, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.PerkUsage{}).
		Where("membership_id = ? AND perk_id = ? AND used_at >= ? AND used_at < ?", membershipID, perkID, from, to).
		Count(&count).Error
	return count, err
}

// SumInRange totals quantity_used for hour-based perks, where partial
// consumption accumulates.
func (r *PerkUsageRepository) SumInRange(membershipID, perkID uint, from, to time.Time) (float64, error) {
	var total float64
	err := r.db.Model(&models.PerkUsage{}).
		Where("membership_id = ? AND perk_id = ? AND used_at >= ? AND used_at < ?", membershipID, perkID, from, to).
		Select("COALESCE(SUM(quantity_used), 0)").
		Scan(&total).Error
	return total, err
}

// CreateWithBooking inserts the usage record and its booking in a single
// transaction. Both writes succeed or neither does.
func (r *PerkUsageRepository) CreateWithBooking(usage *models.PerkUsage, booking *models.RoomBooking) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(usage).Error; err != nil {
			return err
		}
		booking.PerkUsageID = &usage.ID
		return tx.Create(booking).Error
	})
}

func (r *PerkUsageRepository) GetByMembership(membershipID uint, limit int) ([]models.PerkUsage, error) {
	var usages []models.PerkUsage
	err := r.db.Where("membership_id = ?", membershipID).
		Order("used_at DESC").
		Limit(limit).
		Find(&usages).Error
	return usages, err
}
