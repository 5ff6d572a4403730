package service

import (
	"context"
	"fmt"

	"github.com/festiconf/billetterie-api/internal/domain"
)

type StatsRepository interface {
	Collect(ctx context.Context) (domain.DashboardStats, error)
}

type AdminService struct {
	statsRepo StatsRepository
}

func NewAdminService(statsRepo StatsRepository) *AdminService {
	return &AdminService{
		statsRepo: statsRepo,
	}
}

func (s *AdminService) GetDashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	stats, err := s.statsRepo.Collect(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("s.statsRepo.Collect -> %w", err)
	}

	return stats, nil
}
