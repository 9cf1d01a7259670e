package repository

import (
	"github.com/sefazor/coworkly-backend/internal/models"
	"gorm.io/gorm"
)

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) Create(plan *models.MembershipPlan) error {
	return r.db.Create(plan).Error
}

func (r *PlanRepository) GetByID(id uint) (*models.MembershipPlan, error) {
	var plan models.MembershipPlan
	err := r.db.Preload("Perks").First(&plan, id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *PlanRepository) GetAll(activeOnly bool) ([]models.MembershipPlan, error) {
	var plans []models.MembershipPlan
	query := r.db.Preload("Perks").Order("price ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&plans).Error
	return plans, err
}

func (r *PlanRepository) Update(plan *models.MembershipPlan) error {
	return r.db.Save(plan).Error
}

func (r *PlanRepository) AddPerk(perk *models.PlanPerk) error {
	return r.db.Create(perk).Error
}

func (r *PlanRepository) DeletePerk(planID, perkID uint) error {
	return r.db.Where("plan_id = ?", planID).Delete(&models.PlanPerk{}, perkID).Error
}
