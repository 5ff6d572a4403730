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

var (
	ErrCartItemNotFound = repository.ErrCartItemNotFound
	ErrCartEmpty        = repository.ErrCartEmpty
	ErrPassCultureAge   = pricing.ErrPassCultureAge
)

type CartRepository interface {
	GetOrCreate(ctx context.Context, userID uint) (domain.Cart, error)
	AddItem(ctx context.Context, userID uint, item domain.CartItem) (domain.CartItem, error)
	RemoveItem(ctx context.Context, userID, itemID uint) error
	Clear(ctx context.Context, userID uint) error
	Confirm(ctx context.Context, userID uint) ([]domain.Ticket, error)
}

type CartService struct {
	repo CartRepository
}

func NewCartService(repo CartRepository) *CartService {
	return &CartService{
		repo: repo,
	}
}

func (s *CartService) GetCart(ctx context.Context, userID uint) (domain.Cart, error) {
	cart, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("s.repo.GetOrCreate -> %w", err)
	}

	return cart, nil
}

// AddItem resolves the pricing policy against the participant's age (not the
// purchasing account's) and stores the resolved category with its snapshotted
// price.
func (s *CartService) AddItem(ctx context.Context, userID uint, requested domain.TicketType, name, email string, dateOfBirth time.Time) (domain.CartItem, error) {
	effective, price, err := pricing.Resolve(requested, dateOfBirth, time.Now())
	if err != nil {
		return domain.CartItem{}, err
	}

	item, err := s.repo.AddItem(ctx, userID, domain.CartItem{
		Type:        effective,
		Price:       price,
		Name:        name,
		Email:       email,
		DateOfBirth: dateOfBirth,
	})
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("s.repo.AddItem -> %w", err)
	}

	return item, nil
}

func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uint) error {
	if err := s.repo.RemoveItem(ctx, userID, itemID); err != nil {
		return fmt.Errorf("s.repo.RemoveItem -> %w", err)
	}

	return nil
}

func (s *CartService) Clear(ctx context.Context, userID uint) error {
	if err := s.repo.Clear(ctx, userID); err != nil {
		return fmt.Errorf("s.repo.Clear -> %w", err)
	}

	return nil
}

// Confirm converts every cart item into a ticket and destroys the cart.
// Prices are whatever was locked in at add time; the policy is not re-run.
func (s *CartService) Confirm(ctx context.Context, userID uint) ([]domain.Ticket, error) {
	tickets, err := s.repo.Confirm(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Confirm -> %w", err)
	}

	monitoring.CartConfirmations.Inc()
	for _, ticket := range tickets {
		monitoring.TicketsIssued.WithLabelValues(string(ticket.Type)).Inc()
	}

	return tickets, nil
}
