package validators

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agendasoft/agenda-core/internal/apperr"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"ana@example.com",
		"Ana.Silva+agenda@mail.example.org",
	}
	for _, email := range valid {
		require.NoError(t, ValidateEmail(email), email)
	}

	invalid := []string{
		"",
		"ana",
		"ana@",
		"@example.com",
		"ana example@example.com",
	}
	for _, email := range invalid {
		err := ValidateEmail(email)
		require.True(t, apperr.IsBusiness(err, apperr.CodeInvalidEmail), email)
	}
}
