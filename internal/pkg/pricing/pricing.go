// Package pricing holds the ticket pricing and eligibility policy. Resolve is
// a pure function; all prices come from the static table below, never from
// user input.
package pricing

import (
	"errors"
	"time"

	"github.com/festiconf/billetterie-api/internal/domain"
)

// Prices maps each ticket category to its fixed price in euros.
var Prices = map[domain.TicketType]int{
	domain.TicketSolidaire:   15,
	domain.TicketNormal:      30,
	domain.TicketSoutien:     50,
	domain.TicketGratuit:     0,
	domain.TicketPassCulture: 0,
}

var ErrPassCultureAge = errors.New("the Pass Culture is reserved for ages 15 to 18")

// Age returns the calendar-correct age at now: the year difference, minus one
// when the birthday has not yet occurred this year.
func Age(dateOfBirth, now time.Time) int {
	age := now.Year() - dateOfBirth.Year()
	if now.Month() < dateOfBirth.Month() ||
		(now.Month() == dateOfBirth.Month() && now.Day() < dateOfBirth.Day()) {
		age--
	}

	return age
}

// Resolve maps a requested category and the participant's date of birth to the
// effective category and price.
//
// Under 12 the category is forced to GRATUIT whatever was requested. Ages 12
// to 14 requesting PASS_CULTURE are rejected. Everyone else gets the requested
// category at its table price; there is deliberately no upper age bound on
// PASS_CULTURE (product decision, see DESIGN.md).
func Resolve(requested domain.TicketType, dateOfBirth, now time.Time) (domain.TicketType, int, error) {
	if _, ok := Prices[requested]; !ok {
		return "", 0, domain.ErrUnknownTicketType
	}

	age := Age(dateOfBirth, now)

	if age < 12 {
		return domain.TicketGratuit, Prices[domain.TicketGratuit], nil
	}

	if requested == domain.TicketPassCulture && age < 15 {
		return "", 0, ErrPassCultureAge
	}

	return requested, Prices[requested], nil
}
