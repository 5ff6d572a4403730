package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

const conferenceDateLayout = time.RFC3339

type CreateConferenceRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"` // RFC 3339
	Location    string `json:"location"`
	Capacity    int    `json:"capacity"`
	Category    string `json:"category"`
}

func (req *CreateConferenceRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(3, 100)),
		validation.Field(&req.Description, validation.Required, validation.Length(10, 1000)),
		validation.Field(&req.Date, validation.Required, validation.Date(conferenceDateLayout)),
		validation.Field(&req.Location, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Capacity, validation.Required, validation.Min(1)),
		validation.Field(&req.Category, validation.Required, validation.Length(2, 50)),
	)
}

func (req *CreateConferenceRequest) DateTime() time.Time {
	date, _ := time.Parse(conferenceDateLayout, req.Date)

	return date
}
