package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// PurchaseTicketRequest buys one ticket directly, without going through the
// cart. The participant fields are optional; when the date of birth is absent
// eligibility is checked against the purchasing account.
type PurchaseTicketRequest struct {
	Type        string `json:"type"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"` // YYYY-MM-DD
}

func (req *PurchaseTicketRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Type, validation.Required, validation.In(ticketTypes...)),
		validation.Field(&req.Name, validation.Length(2, 50)),
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.DateOfBirth, validation.Date(dateOfBirthLayout)),
	)
}

// DateOfBirthTime returns nil when no participant date of birth was supplied.
func (req *PurchaseTicketRequest) DateOfBirthTime() *time.Time {
	if req.DateOfBirth == "" {
		return nil
	}

	dateOfBirth, _ := time.Parse(dateOfBirthLayout, req.DateOfBirth)

	return &dateOfBirth
}
