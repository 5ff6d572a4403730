package repository

import (
	"context"
	"fmt"

	"github.com/festiconf/billetterie-api/internal/domain"
	"github.com/festiconf/billetterie-api/internal/repository/dao"
)

type StatsDAO interface {
	CountUsers(ctx context.Context) (int64, error)
	CountTickets(ctx context.Context) (int64, error)
	CountConferences(ctx context.Context) (int64, error)
	CountPlanningEntries(ctx context.Context) (int64, error)
	SumTicketRevenue(ctx context.Context) (int, error)
	TicketsGroupedByType(ctx context.Context) ([]dao.TicketTypeCount, error)
}

type StatsRepository struct {
	dao StatsDAO
}

func NewStatsRepository(dao StatsDAO) *StatsRepository {
	return &StatsRepository{
		dao: dao,
	}
}

func (r *StatsRepository) Collect(ctx context.Context) (domain.DashboardStats, error) {
	users, err := r.dao.CountUsers(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("r.dao.CountUsers -> %w", err)
	}

	tickets, err := r.dao.CountTickets(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("r.dao.CountTickets -> %w", err)
	}

	conferences, err := r.dao.CountConferences(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("r.dao.CountConferences -> %w", err)
	}

	registrations, err := r.dao.CountPlanningEntries(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("r.dao.CountPlanningEntries -> %w", err)
	}

	revenue, err := r.dao.SumTicketRevenue(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("r.dao.SumTicketRevenue -> %w", err)
	}

	grouped, err := r.dao.TicketsGroupedByType(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("r.dao.TicketsGroupedByType -> %w", err)
	}

	byType := make([]domain.TicketTypeStats, len(grouped))
	for i, g := range grouped {
		byType[i] = domain.TicketTypeStats{
			Type:    domain.TicketType(g.Type),
			Count:   g.Count,
			Revenue: g.Revenue,
		}
	}

	return domain.DashboardStats{
		TotalUsers:         int(users),
		TotalTickets:       int(tickets),
		TotalRevenue:       revenue,
		TotalConferences:   int(conferences),
		TotalRegistrations: int(registrations),
		TicketsByType:      byType,
	}, nil
}
