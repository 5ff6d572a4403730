package repository

import (
	"context"
	"fmt"

	"github.com/festiconf/billetterie-api/internal/domain"
	"github.com/festiconf/billetterie-api/internal/repository/dao"
)

var (
	ErrCartItemNotFound = dao.ErrCartItemNotFound
	ErrCartEmpty        = dao.ErrCartEmpty
)

type CartDAO interface {
	FindOrCreateByUserID(ctx context.Context, userID uint) (dao.Cart, error)
	InsertItem(ctx context.Context, userID uint, item dao.CartItem) (dao.CartItem, error)
	DeleteItem(ctx context.Context, userID, itemID uint) error
	DeleteByUserID(ctx context.Context, userID uint) error
	Confirm(ctx context.Context, userID uint) ([]dao.Ticket, error)
}

type CartRepository struct {
	dao CartDAO
}

func NewCartRepository(dao CartDAO) *CartRepository {
	return &CartRepository{
		dao: dao,
	}
}

func (r *CartRepository) GetOrCreate(ctx context.Context, userID uint) (domain.Cart, error) {
	cart, err := r.dao.FindOrCreateByUserID(ctx, userID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("r.dao.FindOrCreateByUserID -> %w", err)
	}

	return cartDaoToDomain(cart), nil
}

func (r *CartRepository) AddItem(ctx context.Context, userID uint, item domain.CartItem) (domain.CartItem, error) {
	created, err := r.dao.InsertItem(ctx, userID, dao.CartItem{
		Type:        string(item.Type),
		Price:       item.Price,
		Name:        item.Name,
		Email:       item.Email,
		DateOfBirth: item.DateOfBirth,
	})
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("r.dao.InsertItem -> %w", err)
	}

	return cartItemDaoToDomain(created), nil
}

func (r *CartRepository) RemoveItem(ctx context.Context, userID, itemID uint) error {
	if err := r.dao.DeleteItem(ctx, userID, itemID); err != nil {
		return fmt.Errorf("r.dao.DeleteItem -> %w", err)
	}

	return nil
}

func (r *CartRepository) Clear(ctx context.Context, userID uint) error {
	if err := r.dao.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("r.dao.DeleteByUserID -> %w", err)
	}

	return nil
}

func (r *CartRepository) Confirm(ctx context.Context, userID uint) ([]domain.Ticket, error) {
	tickets, err := r.dao.Confirm(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.Confirm -> %w", err)
	}

	return ticketsDaoToDomain(tickets), nil
}

func cartDaoToDomain(c dao.Cart) domain.Cart {
	items := make([]domain.CartItem, len(c.Items))
	for i, item := range c.Items {
		items[i] = cartItemDaoToDomain(item)
	}

	return domain.Cart{
		ID:        c.ID,
		UserID:    c.UserID,
		Items:     items,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func cartItemDaoToDomain(item dao.CartItem) domain.CartItem {
	return domain.CartItem{
		ID:          item.ID,
		CartID:      item.CartID,
		Type:        domain.TicketType(item.Type),
		Price:       item.Price,
		Name:        item.Name,
		Email:       item.Email,
		DateOfBirth: item.DateOfBirth,
		CreatedAt:   item.CreatedAt,
	}
}
