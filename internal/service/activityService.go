package service

import (
	"context"

	"biteengine/internal/dto"
	"biteengine/internal/repository"
)

// FeedLimit is how many entries the feed exposes, newest first
const FeedLimit = 10

type ActivityService interface {
	GetRecent(ctx context.Context) ([]dto.ActivityResponse, error)
}

type activityService struct {
	activityRepo repository.ActivityRepository
}

func NewActivityService(activityRepo repository.ActivityRepository) ActivityService {
	return &activityService{activityRepo: activityRepo}
}

// GetRecent is the authoritative (non-incremental) feed read: re-fetched and
// re-sorted from the store every time.
func (s *activityService) GetRecent(ctx context.Context) ([]dto.ActivityResponse, error) {
	activities, err := s.activityRepo.GetRecent(ctx, FeedLimit)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ActivityResponse, 0, len(activities))
	for i := range activities {
		responses = append(responses, *dto.FromModelToActivityResponse(&activities[i]))
	}
	return responses, nil
}
