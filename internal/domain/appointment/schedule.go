package appointment

import (
	"time"

	"github.com/agendasoft/agenda-core/internal/dto"
)

// ===============================
// Stored text formats
// ===============================

const (
	DateLayout = "02/01/2006"
	TimeLayout = "15:04"
)

// ParseDate converts the stored DD/MM/YYYY display text into a comparable
// calendar date. time.Parse rejects impossible dates like 31/02.
func ParseDate(text string) (time.Time, error) {
	return time.Parse(DateLayout, text)
}

func ParseTime(text string) (time.Time, error) {
	return time.Parse(TimeLayout, text)
}

// Today truncates a wall-clock instant to its calendar date, in the same
// UTC frame ParseDate produces, so the two compare directly.
func Today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// ===============================
// Future / past partition
// ===============================

// Partition splits an already-ordered listing into future (dated today or
// later) and past, preserving chronological order inside each half. A
// stored date that no longer parses cannot be upcoming and lands in past.
func Partition(rows []dto.AppointmentListDTO, today time.Time) dto.ScheduleBoardDTO {
	board := dto.ScheduleBoardDTO{
		Future: make([]dto.AppointmentListDTO, 0, len(rows)),
		Past:   make([]dto.AppointmentListDTO, 0),
	}

	for _, row := range rows {
		d, err := ParseDate(row.Date)
		if err == nil && !d.Before(today) {
			board.Future = append(board.Future, row)
		} else {
			board.Past = append(board.Past, row)
		}
	}

	return board
}
