package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSignup() SignupRequest {
	return SignupRequest{
		Email:           "alice@example.com",
		Password:        "s3curepass",
		ConfirmPassword: "s3curepass",
		Name:            "Alice Martin",
		DateOfBirth:     "1995-04-02",
	}
}

func TestSignupRequest_Validate(t *testing.T) {
	req := validSignup()
	require.NoError(t, req.Validate())

	assert.Equal(t, 1995, req.DateOfBirthTime().Year())
}

func TestSignupRequest_Validate_BadEmail(t *testing.T) {
	req := validSignup()
	req.Email = "not-an-email"

	assert.Error(t, req.Validate())
}

func TestSignupRequest_Validate_WeakPassword(t *testing.T) {
	cases := []string{
		"short1",       // too short
		"lettersonly",  // no digit
		"12345678",     // no letter
	}
	for _, password := range cases {
		req := validSignup()
		req.Password = password
		req.ConfirmPassword = password

		assert.ErrorIs(t, req.Validate(), errInvalidPassword, password)
	}
}

func TestSignupRequest_Validate_ConfirmMismatch(t *testing.T) {
	req := validSignup()
	req.ConfirmPassword = "s3curepass2"

	assert.ErrorIs(t, req.Validate(), errConfirmPasswordMismatch)
}

func TestSignupRequest_Validate_BadDate(t *testing.T) {
	req := validSignup()
	req.DateOfBirth = "02/04/1995"

	assert.Error(t, req.Validate())
}

func TestAddCartItemRequest_Validate(t *testing.T) {
	req := AddCartItemRequest{
		Type:        "SOLIDAIRE",
		Name:        "Bob Leroy",
		Email:       "bob@example.com",
		DateOfBirth: "1984-11-20",
	}

	require.NoError(t, req.Validate())
}

func TestAddCartItemRequest_Validate_UnknownType(t *testing.T) {
	req := AddCartItemRequest{
		Type:        "VIP",
		Name:        "Bob Leroy",
		Email:       "bob@example.com",
		DateOfBirth: "1984-11-20",
	}

	assert.Error(t, req.Validate())
}

func TestPurchaseTicketRequest_Validate_OptionalHolder(t *testing.T) {
	req := PurchaseTicketRequest{Type: "NORMAL"}

	require.NoError(t, req.Validate())
	assert.Nil(t, req.DateOfBirthTime())
}

func TestCreateConferenceRequest_Validate(t *testing.T) {
	req := CreateConferenceRequest{
		Title:       "Go en production",
		Description: "Retours d'experience sur dix ans de Go en production.",
		Date:        "2026-09-12T14:00:00Z",
		Location:    "Grand amphi",
		Capacity:    120,
		Category:    "backend",
	}

	require.NoError(t, req.Validate())

	req.Capacity = 0
	assert.Error(t, req.Validate())
}

func TestRegisterPlanningRequest_Validate(t *testing.T) {
	assert.Error(t, (&RegisterPlanningRequest{}).Validate())
	assert.NoError(t, (&RegisterPlanningRequest{ConferenceID: 3}).Validate())
}
