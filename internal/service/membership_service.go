package service

import (
	"errors"
	"time"

	"github.com/sefazor/coworkly-backend/internal/models"
	"github.com/sefazor/coworkly-backend/internal/repository"
	"gorm.io/gorm"
)

type MembershipService struct {
	membershipRepo  *repository.MembershipRepository
	planRepo        *repository.PlanRepository
	activityService *ActivityService
}

func NewMembershipService(
	membershipRepo *repository.MembershipRepository,
	planRepo *repository.PlanRepository,
	activityService *ActivityService,
) *MembershipService {
	return &MembershipService{
		membershipRepo:  membershipRepo,
		planRepo:        planRepo,
		activityService: activityService,
	}
}

func (s *MembershipService) GetCurrentMembership(userID uint) (*models.Membership, error) {
	membership, err := s.membershipRepo.GetActiveByUserID(userID, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveMembership
		}
		return nil, err
	}
	return membership, nil
}

func (s *MembershipService) GetUserMemberships(userID uint) ([]models.Membership, error) {
	return s.membershipRepo.GetByUserID(userID)
}

func (s *MembershipService) GetAllMemberships() ([]models.Membership, error) {
	return s.membershipRepo.GetAll()
}

// AssignMembership lets an admin activate a plan for a user directly,
// bypassing payment (comped memberships, manual corrections).
func (s *MembershipService) AssignMembership(adminID uint, req models.AssignMembershipRequest) (*models.Membership, error) {
	plan, err := s.planRepo.GetByID(req.PlanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	now := time.Now()
	endDate := now.AddDate(0, 0, plan.DurationDays)
	membership := &models.Membership{
		UserID:    req.UserID,
		PlanID:    plan.ID,
		Status:    models.MembershipActive,
		StartDate: now,
		EndDate:   &endDate,
	}
	if err := s.membershipRepo.Create(membership); err != nil {
		return nil, err
	}

	s.activityService.Log(adminID, "membership.assigned", "membership", membership.ID, plan.Name)
	return membership, nil
}

func (s *MembershipService) CancelMembership(adminID, membershipID uint) error {
	membership, err := s.membershipRepo.GetByID(membershipID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Reject("Membership not found")
		}
		return err
	}
	if membership.Status == models.MembershipExpired {
		return Reject("Membership is already expired")
	}

	now := time.Now()
	membership.Status = models.MembershipExpired
	membership.EndDate = &now
	if err := s.membershipRepo.Update(membership); err != nil {
		return err
	}

	s.activityService.Log(adminID, "membership.cancelled", "membership", membership.ID, "")
	return nil
}
