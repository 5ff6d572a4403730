package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/festiconf/billetterie-api/internal/domain"
	"github.com/festiconf/billetterie-api/internal/repository/dao"
)

var ErrConferenceNotFound = dao.ErrConferenceNotFound

type ConferenceDAO interface {
	Insert(ctx context.Context, conference dao.Conference) (dao.Conference, error)
	FindAll(ctx context.Context, category string, day *time.Time) ([]dao.Conference, error)
	RegistrationCounts(ctx context.Context) (map[uint]int, error)
	RegisteredConferenceIDs(ctx context.Context, userID uint) (map[uint]bool, error)
}

type ConferenceRepository struct {
	dao ConferenceDAO
}

func NewConferenceRepository(dao ConferenceDAO) *ConferenceRepository {
	return &ConferenceRepository{
		dao: dao,
	}
}

func (r *ConferenceRepository) Create(ctx context.Context, conference domain.Conference) (domain.Conference, error) {
	created, err := r.dao.Insert(ctx, dao.Conference{
		Title:       conference.Title,
		Description: conference.Description,
		Date:        conference.Date,
		Location:    conference.Location,
		Capacity:    conference.Capacity,
		Category:    conference.Category,
	})
	if err != nil {
		return domain.Conference{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return conferenceDaoToDomain(created), nil
}

// FindAll lists conferences enriched with their registration count and, when
// userID is non-zero, whether that user is registered.
func (r *ConferenceRepository) FindAll(ctx context.Context, category string, day *time.Time, userID uint) ([]domain.Conference, error) {
	found, err := r.dao.FindAll(ctx, category, day)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	counts, err := r.dao.RegistrationCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.RegistrationCounts -> %w", err)
	}

	registered := map[uint]bool{}
	if userID != 0 {
		registered, err = r.dao.RegisteredConferenceIDs(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("r.dao.RegisteredConferenceIDs -> %w", err)
		}
	}

	conferences := make([]domain.Conference, len(found))
	for i, c := range found {
		conference := conferenceDaoToDomain(c)
		conference.RegisteredCount = counts[c.ID]
		conference.IsRegistered = registered[c.ID]
		conferences[i] = conference
	}

	return conferences, nil
}

func conferenceDaoToDomain(c dao.Conference) domain.Conference {
	return domain.Conference{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Date:        c.Date,
		Location:    c.Location,
		Capacity:    c.Capacity,
		Category:    c.Category,
		CreatedAt:   c.CreatedAt,
	}
}
