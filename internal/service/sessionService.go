package service

import (
	"context"
	"errors"
	"time"

	"biteengine/internal/dto"
	"biteengine/internal/models"
	"biteengine/internal/repository"

	"gorm.io/gorm"
)

type SessionService interface {
	Create(ctx context.Context, title string, bookingTime *time.Time) (*dto.SessionResponse, error)
	List(ctx context.Context) ([]dto.SessionResponse, error)
	Finalize(ctx context.Context, id string) (*dto.SessionResponse, error)
}

type sessionService struct {
	sessionRepo       repository.SessionRepository
	restaurantService RestaurantService
}

func NewSessionService(sessionRepo repository.SessionRepository, restaurantService RestaurantService) SessionService {
	return &sessionService{
		sessionRepo:       sessionRepo,
		restaurantService: restaurantService,
	}
}

func (s *sessionService) Create(ctx context.Context, title string, bookingTime *time.Time) (*dto.SessionResponse, error) {
	session := &models.DinnerSession{
		Title:       title,
		Status:      models.SessionActive,
		BookingTime: bookingTime,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return dto.FromModelToSessionResponse(session), nil
}

func (s *sessionService) List(ctx context.Context) ([]dto.SessionResponse, error) {
	sessions, err := s.sessionRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.SessionResponse, 0, len(sessions))
	for i := range sessions {
		responses = append(responses, *dto.FromModelToSessionResponse(&sessions[i]))
	}
	return responses, nil
}

// Finalize stamps the current leading restaurant as the session winner. The
// vote ledger stays writable afterwards; freezing the UI is a presentation
// concern.
func (s *sessionService) Finalize(ctx context.Context, id string) (*dto.SessionResponse, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("session not found")
		}
		return nil, err
	}
	if session.Status != models.SessionActive {
		return nil, errors.New("session already finalized")
	}

	stats, err := s.restaurantService.GetStats(ctx)
	if err != nil {
		return nil, err
	}
	if stats.Leader == nil {
		return nil, errors.New("no restaurants to finalize")
	}

	if err := s.sessionRepo.Finalize(ctx, id, stats.Leader.ID); err != nil {
		return nil, err
	}

	finalized, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToSessionResponse(finalized), nil
}
