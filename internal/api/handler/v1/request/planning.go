package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type RegisterPlanningRequest struct {
	ConferenceID uint `json:"conference_id"`
}

func (req *RegisterPlanningRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ConferenceID, validation.Required, validation.Min(uint(1))),
	)
}
