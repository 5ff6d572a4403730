package domain

import "time"

// Cart is the per-user container of pending ticket intents. At most one cart
// exists per user; it is destroyed entirely on confirmation or explicit clear.
type Cart struct {
	ID        uint       `json:"id"`
	UserID    uint       `json:"user_id"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem is a pending ticket intent. Type and price are the resolved values
// from the pricing policy, locked in at add time.
type CartItem struct {
	ID          uint       `json:"id"`
	CartID      uint       `json:"cart_id"`
	Type        TicketType `json:"type"`
	Price       int        `json:"price"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	DateOfBirth time.Time  `json:"date_of_birth"`
	CreatedAt   time.Time  `json:"created_at"`
}
