package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/festiconf/billetterie-api/internal/domain"
	"github.com/festiconf/billetterie-api/internal/monitoring"
	"github.com/festiconf/billetterie-api/internal/repository"
)

var (
	ErrConferenceFull        = repository.ErrConferenceFull
	ErrAlreadyRegistered     = repository.ErrAlreadyRegistered
	ErrPlanningEntryNotFound = repository.ErrPlanningEntryNotFound
	ErrConferenceNotFound    = repository.ErrConferenceNotFound

	// ErrNoTicket gates the whole planning surface: only ticket holders may
	// view or build a planning.
	ErrNoTicket = errors.New("you must own a ticket to access the planning")
)

type PlanningRepository interface {
	Register(ctx context.Context, userID, conferenceID uint) (domain.PlanningEntry, error)
	FindByUserID(ctx context.Context, userID uint) ([]domain.PlanningEntry, error)
	DeleteOwned(ctx context.Context, userID, entryID uint) error
}

type PlanningTicketRepository interface {
	HasTicket(ctx context.Context, userID uint) (bool, error)
}

type PlanningService struct {
	repo       PlanningRepository
	ticketRepo PlanningTicketRepository
}

func NewPlanningService(repo PlanningRepository, ticketRepo PlanningTicketRepository) *PlanningService {
	return &PlanningService{
		repo:       repo,
		ticketRepo: ticketRepo,
	}
}

func (s *PlanningService) ListEntries(ctx context.Context, userID uint) ([]domain.PlanningEntry, error) {
	if err := s.requireTicket(ctx, userID); err != nil {
		return nil, err
	}

	entries, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByUserID -> %w", err)
	}

	return entries, nil
}

func (s *PlanningService) Register(ctx context.Context, userID, conferenceID uint) (domain.PlanningEntry, error) {
	if err := s.requireTicket(ctx, userID); err != nil {
		return domain.PlanningEntry{}, err
	}

	entry, err := s.repo.Register(ctx, userID, conferenceID)
	if err != nil {
		return domain.PlanningEntry{}, fmt.Errorf("s.repo.Register -> %w", err)
	}

	monitoring.PlanningRegistrations.Inc()

	return entry, nil
}

func (s *PlanningService) Unregister(ctx context.Context, userID, entryID uint) error {
	if err := s.repo.DeleteOwned(ctx, userID, entryID); err != nil {
		return fmt.Errorf("s.repo.DeleteOwned -> %w", err)
	}

	return nil
}

func (s *PlanningService) requireTicket(ctx context.Context, userID uint) error {
	hasTicket, err := s.ticketRepo.HasTicket(ctx, userID)
	if err != nil {
		return fmt.Errorf("s.ticketRepo.HasTicket -> %w", err)
	}
	if !hasTicket {
		return ErrNoTicket
	}

	return nil
}
