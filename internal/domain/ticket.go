package domain

import (
	"errors"
	"time"
)

type TicketType string

const (
	TicketSolidaire   TicketType = "SOLIDAIRE"
	TicketNormal      TicketType = "NORMAL"
	TicketSoutien     TicketType = "SOUTIEN"
	TicketGratuit     TicketType = "GRATUIT"
	TicketPassCulture TicketType = "PASS_CULTURE"
)

var ErrUnknownTicketType = errors.New("unknown ticket type")

// ParseTicketType validates a raw category string coming from a request body.
func ParseTicketType(raw string) (TicketType, error) {
	switch t := TicketType(raw); t {
	case TicketSolidaire, TicketNormal, TicketSoutien, TicketGratuit, TicketPassCulture:
		return t, nil
	default:
		return "", ErrUnknownTicketType
	}
}

// Ticket is an issued entitlement. The holder fields describe the actual
// attendee, who may differ from the purchasing account (UserID). Price is
// snapshotted at issuance and never recomputed.
type Ticket struct {
	ID                uint       `json:"id"`
	UserID            uint       `json:"user_id"`
	Type              TicketType `json:"type"`
	Price             int        `json:"price"`
	HolderName        string     `json:"name,omitempty"`
	HolderEmail       string     `json:"email,omitempty"`
	HolderDateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}
