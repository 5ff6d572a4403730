package service

import (
	"context"
	"fmt"
	"time"

	"github.com/festiconf/billetterie-api/internal/domain"
)

type ConferenceRepository interface {
	Create(ctx context.Context, conference domain.Conference) (domain.Conference, error)
	FindAll(ctx context.Context, category string, day *time.Time, userID uint) ([]domain.Conference, error)
}

type ConferenceService struct {
	repo ConferenceRepository
}

func NewConferenceService(repo ConferenceRepository) *ConferenceService {
	return &ConferenceService{
		repo: repo,
	}
}

func (s *ConferenceService) CreateConference(ctx context.Context, conference domain.Conference) (domain.Conference, error) {
	created, err := s.repo.Create(ctx, conference)
	if err != nil {
		return domain.Conference{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// ListConferences is public; userID is zero for anonymous callers and only
// drives the is_registered enrichment.
func (s *ConferenceService) ListConferences(ctx context.Context, category string, day *time.Time, userID uint) ([]domain.Conference, error) {
	conferences, err := s.repo.FindAll(ctx, category, day, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return conferences, nil
}
