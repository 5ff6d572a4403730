package repository

import (
	"context"
	"fmt"

	"github.com/festiconf/billetterie-api/internal/domain"
	"github.com/festiconf/billetterie-api/internal/repository/dao"
)

var ErrTicketNotFound = dao.ErrTicketNotFound

type TicketDAO interface {
	Insert(ctx context.Context, ticket dao.Ticket) (dao.Ticket, error)
	FindByUserID(ctx context.Context, userID uint) ([]dao.Ticket, error)
	FindOwnedByID(ctx context.Context, userID, id uint) (dao.Ticket, error)
	DeleteOwned(ctx context.Context, userID, id uint) error
	CountByUserID(ctx context.Context, userID uint) (int64, error)
}

type TicketRepository struct {
	dao TicketDAO
}

func NewTicketRepository(dao TicketDAO) *TicketRepository {
	return &TicketRepository{
		dao: dao,
	}
}

func (r *TicketRepository) Create(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error) {
	created, err := r.dao.Insert(ctx, ticketDomainToDao(ticket))
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return ticketDaoToDomain(created), nil
}

func (r *TicketRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.Ticket, error) {
	found, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}

	return ticketsDaoToDomain(found), nil
}

func (r *TicketRepository) FindOwnedByID(ctx context.Context, userID, id uint) (domain.Ticket, error) {
	found, err := r.dao.FindOwnedByID(ctx, userID, id)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("r.dao.FindOwnedByID -> %w", err)
	}

	return ticketDaoToDomain(found), nil
}

func (r *TicketRepository) DeleteOwned(ctx context.Context, userID, id uint) error {
	if err := r.dao.DeleteOwned(ctx, userID, id); err != nil {
		return fmt.Errorf("r.dao.DeleteOwned -> %w", err)
	}

	return nil
}

func (r *TicketRepository) HasTicket(ctx context.Context, userID uint) (bool, error) {
	count, err := r.dao.CountByUserID(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("r.dao.CountByUserID -> %w", err)
	}

	return count > 0, nil
}

func ticketDomainToDao(t domain.Ticket) dao.Ticket {
	return dao.Ticket{
		ID:                t.ID,
		UserID:            t.UserID,
		Type:              string(t.Type),
		Price:             t.Price,
		HolderName:        t.HolderName,
		HolderEmail:       t.HolderEmail,
		HolderDateOfBirth: t.HolderDateOfBirth,
		CreatedAt:         t.CreatedAt,
	}
}

func ticketDaoToDomain(t dao.Ticket) domain.Ticket {
	return domain.Ticket{
		ID:                t.ID,
		UserID:            t.UserID,
		Type:              domain.TicketType(t.Type),
		Price:             t.Price,
		HolderName:        t.HolderName,
		HolderEmail:       t.HolderEmail,
		HolderDateOfBirth: t.HolderDateOfBirth,
		CreatedAt:         t.CreatedAt,
	}
}

func ticketsDaoToDomain(tickets []dao.Ticket) []domain.Ticket {
	converted := make([]domain.Ticket, len(tickets))
	for i, t := range tickets {
		converted[i] = ticketDaoToDomain(t)
	}

	return converted
}
