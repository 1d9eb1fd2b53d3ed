package agendacore

import "github.com/agendasoft/agenda-core/internal/apperr"

// Business codes the UI maps to prompts and notices.
const (
	CodeInvalidDate        = apperr.CodeInvalidDate
	CodePastDate           = apperr.CodePastDate
	CodeInvalidTime        = apperr.CodeInvalidTime
	CodePastTime           = apperr.CodePastTime
	CodeInvalidEmail       = apperr.CodeInvalidEmail
	CodeInvalidPhone       = apperr.CodeInvalidPhone
	CodeEmptyField         = apperr.CodeEmptyField
	CodeDuplicateEmail     = apperr.CodeDuplicateEmail
	CodeNotFound           = apperr.CodeNotFound
	CodeInvalidCredentials = apperr.CodeInvalidCredentials
	CodeOwnerCannotBook    = apperr.CodeOwnerCannotBook
)

// ErrorCode extracts the business code from an expected error, or "" when
// the error is a storage failure or unknown.
func ErrorCode(err error) string {
	return apperr.Code(err)
}

// IsValidationError reports a field-level code the UI should turn into a
// corrective prompt.
func IsValidationError(err error) bool {
	return apperr.IsValidation(err)
}

// IsStorageError reports an I/O or corruption failure; show a generic
// notice and let the user retry or abort.
func IsStorageError(err error) bool {
	return apperr.IsStorage(err)
}
