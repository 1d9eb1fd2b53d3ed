package apperr

import "errors"

// Expected, user-correctable conditions. Each code maps to a corrective
// prompt on the UI side; the core only ever returns them.
const (
	CodeInvalidDate        = "invalid_date"
	CodePastDate           = "past_date"
	CodeInvalidTime        = "invalid_time"
	CodePastTime           = "past_time"
	CodeInvalidEmail       = "invalid_email"
	CodeInvalidPhone       = "invalid_phone"
	CodeEmptyField         = "empty_field"
	CodeDuplicateEmail     = "duplicate_email"
	CodeNotFound           = "not_found"
	CodeInvalidCredentials = "invalid_credentials"
	CodeOwnerCannotBook    = "owner_cannot_book"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// Code extracts the business code, or "" for storage and unknown errors.
func Code(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

// IsValidation reports whether err is one of the field-level codes.
func IsValidation(err error) bool {
	switch Code(err) {
	case CodeInvalidDate, CodePastDate, CodeInvalidTime, CodePastTime,
		CodeInvalidEmail, CodeInvalidPhone, CodeEmptyField:
		return true
	}
	return false
}

func IsNotFound(err error) bool {
	return IsBusiness(err, CodeNotFound)
}
