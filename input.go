package agendacore

import (
	"time"

	"github.com/agendasoft/agenda-core/internal/validators"
)

// Keystroke-level helpers for the UI's add/edit form. On every input event
// the UI replaces the field content with display; once complete is true it
// may run the matching Validate*Input to surface a warning. The silent
// confirm-time gate lives inside AddAppointment/EditAppointment and re-runs
// the same checks, so a form can never commit what these would reject.

func FormatDateInput(text string) (display string, complete bool) {
	return validators.FormatDateInput(text)
}

func FormatTimeInput(text string) (display string, complete bool) {
	return validators.FormatTimeInput(text)
}

// ValidateDateInput checks a complete date text against the calendar and
// today's date.
func ValidateDateInput(dateText string) error {
	return validators.ValidateDate(dateText, time.Now())
}

// ValidateTimeInput checks a complete time text; dateText is the sibling
// date field's current content, used for the same-day past-time check.
func ValidateTimeInput(timeText, dateText string) error {
	return validators.ValidateTime(timeText, dateText, time.Now())
}
