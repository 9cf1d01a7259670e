package service

import (
	"errors"

	"github.com/sefazor/coworkly-backend/internal/models"
	"github.com/sefazor/coworkly-backend/internal/repository"
	"gorm.io/gorm"
)

type PlanService struct {
	planRepo *repository.PlanRepository
}

func NewPlanService(planRepo *repository.PlanRepository) *PlanService {
	return &PlanService{planRepo: planRepo}
}

func (s *PlanService) GetPlans(includeInactive bool) ([]models.MembershipPlan, error) {
	return s.planRepo.GetAll(!includeInactive)
}

func (s *PlanService) GetPlan(id uint) (*models.MembershipPlan, error) {
	plan, err := s.planRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

func (s *PlanService) CreatePlan(req models.CreatePlanRequest) (*models.MembershipPlan, error) {
	perks := make([]models.PlanPerk, 0, len(req.Perks))
	for _, p := range req.Perks {
		perk, err := buildPerk(p)
		if err != nil {
			return nil, err
		}
		perks = append(perks, perk)
	}

	plan := &models.MembershipPlan{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		DurationDays: req.DurationDays,
		IsActive:     true,
		Perks:        perks,
	}
	if err := s.planRepo.Create(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// UpdatePlan edits plan metadata only. Perk definitions referenced by
// existing memberships stay untouched so that past usage keeps its meaning;
// changing the perk lineup means adding or removing perks going forward.
func (s *PlanService) UpdatePlan(id uint, req models.UpdatePlanRequest) (*models.MembershipPlan, error) {
	plan, err := s.GetPlan(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.Description != nil {
		plan.Description = *req.Description
	}
	if req.Price != nil {
		plan.Price = *req.Price
	}
	if req.DurationDays != nil {
		plan.DurationDays = *req.DurationDays
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}

	if err := s.planRepo.Update(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *PlanService) AddPerk(planID uint, req models.PlanPerkRequest) (*models.PlanPerk, error) {
	if _, err := s.GetPlan(planID); err != nil {
		return nil, err
	}

	perk, err := buildPerk(req)
	if err != nil {
		return nil, err
	}
	perk.PlanID = planID

	if err := s.planRepo.AddPerk(&perk); err != nil {
		return nil, err
	}
	return &perk, nil
}

func (s *PlanService) RemovePerk(planID, perkID uint) error {
	if _, err := s.GetPlan(planID); err != nil {
		return err
	}
	return s.planRepo.DeletePerk(planID, perkID)
}

func buildPerk(req models.PlanPerkRequest) (models.PlanPerk, error) {
	days, err := models.ParseWeekdaySet(req.DaysOfWeek)
	if err != nil {
		return models.PlanPerk{}, Reject(err.Error())
	}
	if (req.ValidFrom == "") != (req.ValidUntil == "") {
		return models.PlanPerk{}, Reject("Both valid_from and valid_until must be set, or neither")
	}
	if req.ValidFrom != "" && req.ValidUntil <= req.ValidFrom {
		return models.PlanPerk{}, Reject("valid_until must be after valid_from")
	}

	return models.PlanPerk{
		Type:        req.Type,
		Name:        req.Name,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		MaxPerDay:   req.MaxPerDay,
		MaxPerWeek:  req.MaxPerWeek,
		MaxPerMonth: req.MaxPerMonth,
		DaysOfWeek:  days,
		ValidFrom:   req.ValidFrom,
		ValidUntil:  req.ValidUntil,
		IsRecurring: req.IsRecurring,
	}, nil
}
