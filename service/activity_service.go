package service

import (
	"go-taskboard-api/model"
	"go-taskboard-api/repository"

	"github.com/google/uuid"
)

// ActivityService records and retrieves board activity feed entries.
type ActivityService struct {
	repo repository.IActivityRepository
}

func NewActivityService(repo repository.IActivityRepository) *ActivityService {
	return &ActivityService{repo: repo}
}

func (s *ActivityService) CreateActivity(userID, boardID, description string, activityType model.ActivityType) (*model.Activity, error) {
	activity := &model.Activity{
		ID:          uuid.NewString(),
		UserID:      userID,
		BoardID:     boardID,
		Description: description,
		Type:        activityType,
	}
	if err := s.repo.CreateActivity(activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *ActivityService) GetAllActivityByBoardID(boardID string) ([]*model.Activity, error) {
	return s.repo.GetActivitiesByBoardID(boardID)
}
