package repository

import (
	"context"
	"fmt"

	"github.com/festiconf/billetterie-api/internal/domain"
	"github.com/festiconf/billetterie-api/internal/repository/dao"
)

var (
	ErrConferenceFull        = dao.ErrConferenceFull
	ErrAlreadyRegistered     = dao.ErrAlreadyRegistered
	ErrPlanningEntryNotFound = dao.ErrPlanningEntryNotFound
)

type PlanningDAO interface {
	Register(ctx context.Context, userID, conferenceID uint) (dao.PlanningEntry, error)
	FindByUserID(ctx context.Context, userID uint) ([]dao.PlanningEntry, error)
	DeleteOwned(ctx context.Context, userID, entryID uint) error
}

type PlanningRepository struct {
	dao PlanningDAO
}

func NewPlanningRepository(dao PlanningDAO) *PlanningRepository {
	return &PlanningRepository{
		dao: dao,
	}
}

func (r *PlanningRepository) Register(ctx context.Context, userID, conferenceID uint) (domain.PlanningEntry, error) {
	entry, err := r.dao.Register(ctx, userID, conferenceID)
	if err != nil {
		return domain.PlanningEntry{}, fmt.Errorf("r.dao.Register -> %w", err)
	}

	return planningEntryDaoToDomain(entry), nil
}

func (r *PlanningRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.PlanningEntry, error) {
	found, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}

	entries := make([]domain.PlanningEntry, len(found))
	for i, e := range found {
		entries[i] = planningEntryDaoToDomain(e)
	}

	return entries, nil
}

func (r *PlanningRepository) DeleteOwned(ctx context.Context, userID, entryID uint) error {
	if err := r.dao.DeleteOwned(ctx, userID, entryID); err != nil {
		return fmt.Errorf("r.dao.DeleteOwned -> %w", err)
	}

	return nil
}

func planningEntryDaoToDomain(e dao.PlanningEntry) domain.PlanningEntry {
	entry := domain.PlanningEntry{
		ID:           e.ID,
		UserID:       e.UserID,
		ConferenceID: e.ConferenceID,
		CreatedAt:    e.CreatedAt,
	}

	if e.Conference.ID != 0 {
		conference := conferenceDaoToDomain(e.Conference)
		entry.Conference = &conference
	}

	return entry
}
