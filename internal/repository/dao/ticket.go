package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrTicketNotFound = errors.New("ticket not found")

type Ticket struct {
	ID uint `gorm:"primaryKey"`

	UserID uint   `gorm:"not null;index"`
	Type   string `gorm:"not null"`
	Price  int    `gorm:"not null"`

	// Attendee details, optional. The attendee may differ from the purchaser.
	HolderName        string
	HolderEmail       string
	HolderDateOfBirth *time.Time

	CreatedAt time.Time `gorm:"not null"`
}

type TicketDAO struct {
	db *gorm.DB
}

func NewTicketDAO(db *gorm.DB) *TicketDAO {
	return &TicketDAO{
		db: db,
	}
}

func (d *TicketDAO) Insert(ctx context.Context, ticket Ticket) (Ticket, error) {
	result := d.db.WithContext(ctx).Create(&ticket)
	if result.Error != nil {
		return Ticket{}, result.Error
	}

	return ticket, nil
}

func (d *TicketDAO) FindByUserID(ctx context.Context, userID uint) ([]Ticket, error) {
	var tickets []Ticket

	result := d.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tickets)
	if result.Error != nil {
		return nil, result.Error
	}

	return tickets, nil
}

// FindOwnedByID looks a ticket up by id scoped to its owner. A ticket owned by
// somebody else is reported as not found, identical to absence.
func (d *TicketDAO) FindOwnedByID(ctx context.Context, userID, id uint) (Ticket, error) {
	var ticket Ticket

	result := d.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&ticket)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Ticket{}, ErrTicketNotFound
		}

		return Ticket{}, result.Error
	}

	return ticket, nil
}

func (d *TicketDAO) DeleteOwned(ctx context.Context, userID, id uint) error {
	result := d.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&Ticket{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTicketNotFound
	}

	return nil
}

func (d *TicketDAO) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Ticket{}).
		Where("user_id = ?", userID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
