package dao

import (
	"context"

	"gorm.io/gorm"
)

// TicketTypeCount is one GROUP BY row of the per-category breakdown.
type TicketTypeCount struct {
	Type    string
	Count   int
	Revenue int
}

type StatsDAO struct {
	db *gorm.DB
}

func NewStatsDAO(db *gorm.DB) *StatsDAO {
	return &StatsDAO{
		db: db,
	}
}

func (d *StatsDAO) CountUsers(ctx context.Context) (int64, error) {
	return d.count(ctx, &User{})
}

func (d *StatsDAO) CountTickets(ctx context.Context) (int64, error) {
	return d.count(ctx, &Ticket{})
}

func (d *StatsDAO) CountConferences(ctx context.Context) (int64, error) {
	return d.count(ctx, &Conference{})
}

func (d *StatsDAO) CountPlanningEntries(ctx context.Context) (int64, error) {
	return d.count(ctx, &PlanningEntry{})
}

func (d *StatsDAO) count(ctx context.Context, model interface{}) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(model).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (d *StatsDAO) SumTicketRevenue(ctx context.Context) (int, error) {
	var revenue int

	err := d.db.WithContext(ctx).
		Model(&Ticket{}).
		Select("COALESCE(SUM(price), 0)").
		Scan(&revenue).Error
	if err != nil {
		return 0, err
	}

	return revenue, nil
}

func (d *StatsDAO) TicketsGroupedByType(ctx context.Context) ([]TicketTypeCount, error) {
	var rows []TicketTypeCount

	err := d.db.WithContext(ctx).
		Model(&Ticket{}).
		Select("type, COUNT(*) AS count, COALESCE(SUM(price), 0) AS revenue").
		Group("type").
		Order("type ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}
