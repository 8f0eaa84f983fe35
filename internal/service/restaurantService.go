package service

import (
	"context"
	"sort"

	"biteengine/internal/dto"
	"biteengine/internal/repository"
)

type RestaurantService interface {
	ListWithVotes(ctx context.Context) ([]dto.RestaurantResponse, error)
	GetStats(ctx context.Context) (*dto.StatsResponse, error)
}

type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
	voteRepo       repository.VoteRepository
	totalVoters    int
}

func NewRestaurantService(restaurantRepo repository.RestaurantRepository, voteRepo repository.VoteRepository, totalVoters int) RestaurantService {
	return &restaurantService{
		restaurantRepo: restaurantRepo,
		voteRepo:       voteRepo,
		totalVoters:    totalVoters,
	}
}

// ListWithVotes returns the catalog in source order (rating descending) with
// the current vote count attached to each entry. Counts are computed from the
// ledger at read time, never from a stored counter.
func (s *restaurantService) ListWithVotes(ctx context.Context) ([]dto.RestaurantResponse, error) {
	restaurants, err := s.restaurantRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.voteRepo.CountsByRestaurant(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.RestaurantResponse, 0, len(restaurants))
	for i := range restaurants {
		votes := counts[restaurants[i].ID]
		responses = append(responses, *dto.FromModelToRestaurantResponse(&restaurants[i], votes, s.totalVoters))
	}
	return responses, nil
}

// GetStats computes the process-wide aggregates. The leader is found with a
// stable sort by vote count descending, so ties resolve to the earlier entry
// in catalog order. Restaurant count and total votes are reported separately
// so an empty catalog and an unvoted catalog stay distinguishable.
func (s *restaurantService) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	restaurants, err := s.ListWithVotes(ctx)
	if err != nil {
		return nil, err
	}

	totalVotes, err := s.voteRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.StatsResponse{
		RestaurantCount: int64(len(restaurants)),
		TotalVotes:      totalVotes,
	}

	if len(restaurants) > 0 {
		ranked := make([]dto.RestaurantResponse, len(restaurants))
		copy(ranked, restaurants)
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Votes > ranked[j].Votes
		})
		stats.Leader = &ranked[0]
	}

	return stats, nil
}
