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
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrCartEmpty        = errors.New("the cart is empty")
)

type Cart struct {
	ID uint `gorm:"primaryKey"`

	UserID uint       `gorm:"uniqueIndex;not null"`
	Items  []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type CartItem struct {
	ID uint `gorm:"primaryKey"`

	CartID uint   `gorm:"not null;index"`
	Type   string `gorm:"not null"`
	Price  int    `gorm:"not null"`

	Name        string    `gorm:"not null"`
	Email       string    `gorm:"not null"`
	DateOfBirth time.Time `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
}

type CartDAO struct {
	db *gorm.DB
}

func NewCartDAO(db *gorm.DB) *CartDAO {
	return &CartDAO{
		db: db,
	}
}

// FindOrCreateByUserID returns the user's cart with its items in insertion
// order, lazily creating an empty cart on first use. Two concurrent first
// requests can both attempt the insert; the loser of the unique index race
// re-reads the winner's row.
func (d *CartDAO) FindOrCreateByUserID(ctx context.Context, userID uint) (Cart, error) {
	cart, err := d.findByUserID(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Cart{}, err
	}

	cart = Cart{UserID: userID}
	result := d.db.WithContext(ctx).Create(&cart)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return d.findByUserID(ctx, userID)
		}

		return Cart{}, result.Error
	}

	return cart, nil
}

func (d *CartDAO) findByUserID(ctx context.Context, userID uint) (Cart, error) {
	var cart Cart

	result := d.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.created_at ASC")
		}).
		First(&cart, "user_id = ?", userID)
	if result.Error != nil {
		return Cart{}, result.Error
	}

	return cart, nil
}

func (d *CartDAO) InsertItem(ctx context.Context, userID uint, item CartItem) (CartItem, error) {
	cart, err := d.FindOrCreateByUserID(ctx, userID)
	if err != nil {
		return CartItem{}, err
	}

	item.CartID = cart.ID
	result := d.db.WithContext(ctx).Create(&item)
	if result.Error != nil {
		return CartItem{}, result.Error
	}

	return item, nil
}

// DeleteItem removes one item after re-validating that its cart belongs to
// userID. Ownership failures look exactly like absence.
func (d *CartDAO) DeleteItem(ctx context.Context, userID, itemID uint) error {
	var item CartItem

	result := d.db.WithContext(ctx).
		Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("cart_items.id = ? AND carts.user_id = ?", itemID, userID).
		First(&item)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrCartItemNotFound
		}

		return result.Error
	}

	return d.db.WithContext(ctx).Delete(&CartItem{}, item.ID).Error
}

// DeleteByUserID drops the user's whole cart; the foreign key cascade removes
// the items. No-op when no cart exists.
func (d *CartDAO) DeleteByUserID(ctx context.Context, userID uint) error {
	return d.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&Cart{}).Error
}

// Confirm materializes every cart item into a ticket owned by userID and
// destroys the cart, all inside one transaction. The cart row is locked FOR
// UPDATE so a concurrent confirm or clear cannot interleave; any failure rolls
// the whole conversion back.
func (d *CartDAO) Confirm(ctx context.Context, userID uint) ([]Ticket, error) {
	var tickets []Ticket

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cart Cart
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&cart, "user_id = ?", userID)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrCartEmpty
			}

			return result.Error
		}

		var items []CartItem
		if err := tx.Where("cart_id = ?", cart.ID).
			Order("created_at ASC").
			Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrCartEmpty
		}

		tickets = make([]Ticket, 0, len(items))
		for _, item := range items {
			dateOfBirth := item.DateOfBirth
			tickets = append(tickets, Ticket{
				UserID:            userID,
				Type:              item.Type,
				Price:             item.Price,
				HolderName:        item.Name,
				HolderEmail:       item.Email,
				HolderDateOfBirth: &dateOfBirth,
			})
		}
		if err := tx.Create(&tickets).Error; err != nil {
			return err
		}

		return tx.Delete(&Cart{}, cart.ID).Error
	})
	if err != nil {
		return nil, err
	}

	return tickets, nil
}
