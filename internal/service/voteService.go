package service

import (
	"context"
	"errors"
	"log/slog"

	"biteengine/internal/dto"
	"biteengine/internal/models"
	"biteengine/internal/repository"

	"gorm.io/gorm"
)

// Activity action labels. The feed composes "<user> <action> <restaurant>".
const (
	ActionVoted   = "voted for"
	ActionChanged = "changed their vote to"
)

// Identity is the caller-supplied user identity. It is always passed in
// explicitly; the ledger trusts it at face value and never reads ambient
// session state.
type Identity struct {
	ID     string
	Name   string
	Email  string
	Avatar string
	Role   string
}

// ActivityPublisher pushes a freshly written feed entry to live subscribers
type ActivityPublisher interface {
	Publish(ctx context.Context, activity *models.VoteActivity) error
}

type VoteService interface {
	CastVote(ctx context.Context, identity Identity, restaurantID, restaurantName string) (*dto.VoteResponse, error)
	RetractVote(ctx context.Context, userID string) error
}

type voteService struct {
	voteRepo       repository.VoteRepository
	activityRepo   repository.ActivityRepository
	restaurantRepo repository.RestaurantRepository
	publisher      ActivityPublisher
	logger         *slog.Logger
}

func NewVoteService(
	voteRepo repository.VoteRepository,
	activityRepo repository.ActivityRepository,
	restaurantRepo repository.RestaurantRepository,
	publisher ActivityPublisher,
	logger *slog.Logger,
) VoteService {
	return &voteService{
		voteRepo:       voteRepo,
		activityRepo:   activityRepo,
		restaurantRepo: restaurantRepo,
		publisher:      publisher,
		logger:         logger,
	}
}

// CastVote records the user's single vote. The vote row is upserted on the
// user_id unique index, so a repeat cast replaces the previous target in one
// atomic statement and the one-vote-per-user invariant holds under concurrent
// casts (last write wins). One activity entry is appended per successful cast,
// labeled by whether a prior vote existed.
func (s *voteService) CastVote(ctx context.Context, identity Identity, restaurantID, restaurantName string) (*dto.VoteResponse, error) {
	if _, err := s.restaurantRepo.GetByID(ctx, restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("restaurant not found")
		}
		return nil, err
	}

	hadPrior := true
	if _, err := s.voteRepo.GetByUser(ctx, identity.ID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		hadPrior = false
	}

	vote := &models.Vote{
		UserID:       identity.ID,
		UserName:     identity.Name,
		UserAvatar:   identity.Avatar,
		RestaurantID: restaurantID,
	}
	if err := s.voteRepo.Upsert(ctx, vote); err != nil {
		return nil, err
	}

	// Reload: on a replaced vote the stored row keeps its original id
	stored, err := s.voteRepo.GetByUser(ctx, identity.ID)
	if err != nil {
		return nil, err
	}

	action := ActionVoted
	if hadPrior {
		action = ActionChanged
	}

	activity := &models.VoteActivity{
		UserID:         identity.ID,
		UserName:       identity.Name,
		UserAvatar:     identity.Avatar,
		Action:         action,
		RestaurantID:   restaurantID,
		RestaurantName: restaurantName,
	}
	if err := s.activityRepo.Create(ctx, activity); err != nil {
		return nil, err
	}

	// Live fan-out is a projection; a publish failure must not fail the vote
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, activity); err != nil {
			s.logger.Warn("failed to publish activity", "error", err)
		}
	}

	return dto.FromModelToVoteResponse(stored), nil
}

// RetractVote deletes the user's vote. Retracting with no existing vote is a
// successful no-op. No activity entry is written.
func (s *voteService) RetractVote(ctx context.Context, userID string) error {
	return s.voteRepo.DeleteByUser(ctx, userID)
}
