package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrConferenceNotFound = errors.New("conference not found")

type Conference struct {
	ID uint `gorm:"primaryKey"`

	Title       string    `gorm:"not null"`
	Description string    `gorm:"not null"`
	Date        time.Time `gorm:"not null"`
	Location    string    `gorm:"not null"`
	Capacity    int       `gorm:"not null"`
	Category    string    `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
}

type ConferenceDAO struct {
	db *gorm.DB
}

func NewConferenceDAO(db *gorm.DB) *ConferenceDAO {
	return &ConferenceDAO{
		db: db,
	}
}

func (d *ConferenceDAO) Insert(ctx context.Context, conference Conference) (Conference, error) {
	result := d.db.WithContext(ctx).Create(&conference)
	if result.Error != nil {
		return Conference{}, result.Error
	}

	return conference, nil
}

// FindAll lists conferences by date ascending, optionally filtered by category
// and/or by calendar day.
func (d *ConferenceDAO) FindAll(ctx context.Context, category string, day *time.Time) ([]Conference, error) {
	query := d.db.WithContext(ctx).Order("date ASC")

	if category != "" {
		query = query.Where("category = ?", category)
	}
	if day != nil {
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		query = query.Where("date >= ? AND date < ?", start, start.AddDate(0, 0, 1))
	}

	var conferences []Conference
	if err := query.Find(&conferences).Error; err != nil {
		return nil, err
	}

	return conferences, nil
}

// RegistrationCounts returns the number of planning entries per conference.
func (d *ConferenceDAO) RegistrationCounts(ctx context.Context) (map[uint]int, error) {
	type row struct {
		ConferenceID uint
		Count        int
	}

	var rows []row
	err := d.db.WithContext(ctx).
		Model(&PlanningEntry{}).
		Select("conference_id, COUNT(*) AS count").
		Group("conference_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int, len(rows))
	for _, r := range rows {
		counts[r.ConferenceID] = r.Count
	}

	return counts, nil
}

// RegisteredConferenceIDs returns the set of conferences the user is
// registered for.
func (d *ConferenceDAO) RegisteredConferenceIDs(ctx context.Context, userID uint) (map[uint]bool, error) {
	var ids []uint

	err := d.db.WithContext(ctx).
		Model(&PlanningEntry{}).
		Where("user_id = ?", userID).
		Pluck("conference_id", &ids).Error
	if err != nil {
		return nil, err
	}

	registered := make(map[uint]bool, len(ids))
	for _, id := range ids {
		registered[id] = true
	}

	return registered, nil
}
