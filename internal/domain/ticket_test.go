package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTicketType(t *testing.T) {
	for _, raw := range []string{"SOLIDAIRE", "NORMAL", "SOUTIEN", "GRATUIT", "PASS_CULTURE"} {
		parsed, err := ParseTicketType(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, TicketType(raw), parsed)
	}
}

func TestParseTicketType_Unknown(t *testing.T) {
	for _, raw := range []string{"", "VIP", "normal", "SOLIDAIRE "} {
		_, err := ParseTicketType(raw)
		assert.ErrorIs(t, err, ErrUnknownTicketType, raw)
	}
}
