package validators

import (
	"strings"
	"time"

	"github.com/agendasoft/agenda-core/internal/apperr"
	domain "github.com/agendasoft/agenda-core/internal/domain/appointment"
)

const (
	dateDigits = 8
	timeDigits = 4
)

func stripDigits(text string, max int) string {
	var b strings.Builder
	for _, r := range text {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteRune(r)
		if b.Len() == max {
			break
		}
	}
	return b.String()
}

// FormatDateInput rebuilds the displayed date text from whatever the user
// typed so far: separators are stripped, digits truncated to 8 and the
// slashes re-inserted at the DD/MM/YYYY positions. complete is true once
// all 8 digits are present, which is the only point validation may run.
func FormatDateInput(text string) (display string, complete bool) {
	digits := stripDigits(text, dateDigits)
	switch {
	case len(digits) > 4:
		display = digits[:2] + "/" + digits[2:4] + "/" + digits[4:]
	case len(digits) > 2:
		display = digits[:2] + "/" + digits[2:]
	default:
		display = digits
	}
	return display, len(digits) == dateDigits
}

// FormatTimeInput is the HH:MM counterpart of FormatDateInput.
func FormatTimeInput(text string) (display string, complete bool) {
	digits := stripDigits(text, timeDigits)
	if len(digits) > 2 {
		display = digits[:2] + ":" + digits[2:]
	} else {
		display = digits
	}
	return display, len(digits) == timeDigits
}

// ValidateDate checks a complete date text: it must be a real calendar
// date no earlier than today. now supplies "today" so the confirm gate and
// the tests share one clock.
func ValidateDate(dateText string, now time.Time) error {
	d, err := domain.ParseDate(dateText)
	if err != nil {
		return apperr.ErrBusiness(apperr.CodeInvalidDate)
	}
	if d.Before(domain.Today(now)) {
		return apperr.ErrBusiness(apperr.CodePastDate)
	}
	return nil
}

// ValidateTime checks a complete time text. The sibling date field's text
// is passed explicitly; when it parses to today's date the time must still
// be ahead of the wall clock. An unparseable or non-today sibling skips
// the cross-check — it is best-effort, not a hard dependency.
func ValidateTime(timeText, dateText string, now time.Time) error {
	t, err := domain.ParseTime(timeText)
	if err != nil {
		return apperr.ErrBusiness(apperr.CodeInvalidTime)
	}

	d, err := domain.ParseDate(dateText)
	if err != nil || !d.Equal(domain.Today(now)) {
		return nil
	}

	at := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
	if !at.After(now) {
		return apperr.ErrBusiness(apperr.CodePastTime)
	}
	return nil
}

// ValidateComplete is the confirm-time gate: both fields must be complete
// and valid before any write proceeds. It re-runs the same checks the live
// path runs, silently — the first failure wins.
func ValidateComplete(dateText, timeText string, now time.Time) error {
	date, ok := FormatDateInput(dateText)
	if !ok {
		return apperr.ErrBusiness(apperr.CodeInvalidDate)
	}
	if err := ValidateDate(date, now); err != nil {
		return err
	}

	timeOfDay, ok := FormatTimeInput(timeText)
	if !ok {
		return apperr.ErrBusiness(apperr.CodeInvalidTime)
	}
	return ValidateTime(timeOfDay, date, now)
}
