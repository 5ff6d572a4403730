package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

var ticketTypes = []interface{}{"SOLIDAIRE", "NORMAL", "SOUTIEN", "GRATUIT", "PASS_CULTURE"}

type AddCartItemRequest struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	DateOfBirth string `json:"date_of_birth"` // participant's, YYYY-MM-DD
}

func (req *AddCartItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Type, validation.Required, validation.In(ticketTypes...)),
		validation.Field(&req.Name, validation.Required, validation.Length(2, 50)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.DateOfBirth, validation.Required, validation.Date(dateOfBirthLayout)),
	)
}

func (req *AddCartItemRequest) DateOfBirthTime() time.Time {
	dateOfBirth, _ := time.Parse(dateOfBirthLayout, req.DateOfBirth)

	return dateOfBirth
}
