package service

import (
	"github.com/sefazor/coworkly-backend/internal/models"
	"github.com/sefazor/coworkly-backend/internal/repository"
	"go.uber.org/zap"
)

type ActivityService struct {
	activityRepo *repository.ActivityRepository
	logger       *zap.Logger
}

func NewActivityService(activityRepo *repository.ActivityRepository, logger *zap.Logger) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// Log appends an audit entry. Failures are logged and swallowed: the
// triggering operation has already succeeded and must not be rolled back
// because of the audit trail.
func (s *ActivityService) Log(userID uint, action, entity string, entityID uint, detail string) {
	entry := &models.ActivityLog{
		UserID:   userID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Detail:   detail,
	}
	if err := s.activityRepo.Create(entry); err != nil {
		s.logger.Warn("Failed to write activity log",
			zap.String("action", action),
			zap.Uint("user_id", userID),
			zap.Error(err),
		)
	}
}

func (s *ActivityService) GetRecent(limit int) ([]models.ActivityLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.activityRepo.GetRecent(limit)
}
