package service

import (
	"context"
	"fmt"
	"time"

	"github.com/festiconf/billetterie-api/internal/domain"
	"github.com/festiconf/billetterie-api/internal/monitoring"
	"github.com/festiconf/billetterie-api/internal/pkg/pricing"
	"github.com/festiconf/billetterie-api/internal/repository"
)

var ErrTicketNotFound = repository.ErrTicketNotFound

type TicketRepository interface {
	Create(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error)
	FindByUserID(ctx context.Context, userID uint) ([]domain.Ticket, error)
	FindOwnedByID(ctx context.Context, userID, id uint) (domain.Ticket, error)
	DeleteOwned(ctx context.Context, userID, id uint) error
	HasTicket(ctx context.Context, userID uint) (bool, error)
}

type TicketUserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

type TicketService struct {
	repo     TicketRepository
	userRepo TicketUserRepository
}

func NewTicketService(repo TicketRepository, userRepo TicketUserRepository) *TicketService {
	return &TicketService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// Purchase issues a ticket directly, bypassing the cart. Eligibility is
// resolved against the participant's date of birth when one is supplied,
// otherwise against the purchasing account's.
func (s *TicketService) Purchase(ctx context.Context, userID uint, requested domain.TicketType, holderName, holderEmail string, holderDateOfBirth *time.Time) (domain.Ticket, error) {
	dateOfBirth := holderDateOfBirth
	if dateOfBirth == nil {
		user, err := s.userRepo.FindByID(ctx, userID)
		if err != nil {
			return domain.Ticket{}, fmt.Errorf("s.userRepo.FindByID -> %w", err)
		}
		dateOfBirth = &user.DateOfBirth
	}

	effective, price, err := pricing.Resolve(requested, *dateOfBirth, time.Now())
	if err != nil {
		return domain.Ticket{}, err
	}

	ticket, err := s.repo.Create(ctx, domain.Ticket{
		UserID:            userID,
		Type:              effective,
		Price:             price,
		HolderName:        holderName,
		HolderEmail:       holderEmail,
		HolderDateOfBirth: holderDateOfBirth,
	})
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	monitoring.TicketsIssued.WithLabelValues(string(ticket.Type)).Inc()

	return ticket, nil
}

func (s *TicketService) ListTickets(ctx context.Context, userID uint) ([]domain.Ticket, error) {
	tickets, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByUserID -> %w", err)
	}

	return tickets, nil
}

func (s *TicketService) GetTicket(ctx context.Context, userID, id uint) (domain.Ticket, error) {
	ticket, err := s.repo.FindOwnedByID(ctx, userID, id)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("s.repo.FindOwnedByID -> %w", err)
	}

	return ticket, nil
}

func (s *TicketService) CancelTicket(ctx context.Context, userID, id uint) error {
	if err := s.repo.DeleteOwned(ctx, userID, id); err != nil {
		return fmt.Errorf("s.repo.DeleteOwned -> %w", err)
	}

	return nil
}
