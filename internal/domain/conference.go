package domain

import "time"

type Conference struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Capacity    int       `json:"capacity"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`

	// Enrichment for listings, not persisted.
	RegisteredCount int  `json:"registered_count"`
	IsRegistered    bool `json:"is_registered"`
}
