package validators

import (
	"github.com/go-playground/validator/v10"

	"github.com/agendasoft/agenda-core/internal/apperr"
)

var validate = validator.New()

// ValidateEmail checks the address shape only. No MX or DNS lookups here:
// the core must stay offline.
func ValidateEmail(email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return apperr.ErrBusiness(apperr.CodeInvalidEmail)
	}
	return nil
}
