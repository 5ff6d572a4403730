package domain

import "time"

// PlanningEntry registers a user for a conference. Unique per
// (UserID, ConferenceID); the number of entries per conference never exceeds
// that conference's capacity.
type PlanningEntry struct {
	ID           uint        `json:"id"`
	UserID       uint        `json:"user_id"`
	ConferenceID uint        `json:"conference_id"`
	Conference   *Conference `json:"conference,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}
