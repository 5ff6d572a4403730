package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrConferenceFull        = errors.New("the conference is full")
	ErrAlreadyRegistered     = errors.New("already registered for this conference")
	ErrPlanningEntryNotFound = errors.New("planning entry not found")
)

type PlanningEntry struct {
	ID uint `gorm:"primaryKey"`

	UserID       uint       `gorm:"not null;uniqueIndex:idx_planning_user_conference"`
	ConferenceID uint       `gorm:"not null;uniqueIndex:idx_planning_user_conference"`
	Conference   Conference `gorm:"foreignKey:ConferenceID"`

	CreatedAt time.Time `gorm:"not null"`
}

type PlanningDAO struct {
	db *gorm.DB
}

func NewPlanningDAO(db *gorm.DB) *PlanningDAO {
	return &PlanningDAO{
		db: db,
	}
}

// Register inserts a planning entry after a capacity check, atomically.
//
// The conference row is locked FOR UPDATE for the whole transaction, so
// concurrent registrations for the same conference serialize: the count below
// always sees every committed entry, and the loser of a last-slot race fails
// the capacity check with ErrConferenceFull. A unique violation on
// (user_id, conference_id) can therefore only mean a genuine double
// registration and maps to ErrAlreadyRegistered.
func (d *PlanningDAO) Register(ctx context.Context, userID, conferenceID uint) (PlanningEntry, error) {
	var entry PlanningEntry

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var conference Conference
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&conference, conferenceID)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrConferenceNotFound
			}

			return result.Error
		}

		var count int64
		if err := tx.Model(&PlanningEntry{}).
			Where("conference_id = ?", conferenceID).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(conference.Capacity) {
			return ErrConferenceFull
		}

		entry = PlanningEntry{UserID: userID, ConferenceID: conferenceID}
		if err := tx.Create(&entry).Error; err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return ErrAlreadyRegistered
			}

			return err
		}

		return nil
	})
	if err != nil {
		return PlanningEntry{}, err
	}

	return entry, nil
}

// FindByUserID lists the user's registrations with their conferences, ordered
// by conference date.
func (d *PlanningDAO) FindByUserID(ctx context.Context, userID uint) ([]PlanningEntry, error) {
	var entries []PlanningEntry

	err := d.db.WithContext(ctx).
		Joins("Conference").
		Where("planning_entries.user_id = ?", userID).
		Order(`"Conference"."date" ASC`).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// DeleteOwned removes a planning entry scoped to its owner; somebody else's
// entry is indistinguishable from a missing one.
func (d *PlanningDAO) DeleteOwned(ctx context.Context, userID, entryID uint) error {
	result := d.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&PlanningEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlanningEntryNotFound
	}

	return nil
}
