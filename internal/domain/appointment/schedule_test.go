package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/agendasoft/agenda-core/internal/dto"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("20/12/2024")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, time.December, 20, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("31/02/2025")
	require.Error(t, err)

	_, err = ParseDate("2024-12-20")
	require.Error(t, err)
}

func TestParseDateOrdersCalendarWise(t *testing.T) {
	// lexicographically "05/01/2025" < "20/12/2024"; the calendar disagrees
	a, err := ParseDate("20/12/2024")
	require.NoError(t, err)
	b, err := ParseDate("05/01/2025")
	require.NoError(t, err)
	require.True(t, a.Before(b))
}

func TestPartition(t *testing.T) {
	today := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	rows := []dto.AppointmentListDTO{
		{ID: 1, Date: "14/06/2025", Time: "09:00"},
		{ID: 2, Date: "15/06/2025", Time: "08:00"},
		{ID: 3, Date: "15/06/2025", Time: "18:00"},
		{ID: 4, Date: "16/06/2025", Time: "07:00"},
		{ID: 5, Date: "not-a-date", Time: "12:00"},
	}

	board := Partition(rows, today)

	futureIDs := make([]uint, 0, len(board.Future))
	for _, row := range board.Future {
		futureIDs = append(futureIDs, row.ID)
	}
	pastIDs := make([]uint, 0, len(board.Past))
	for _, row := range board.Past {
		pastIDs = append(pastIDs, row.ID)
	}

	// today counts as future; input order survives inside each half
	require.Equal(t, []uint{2, 3, 4}, futureIDs)
	require.Equal(t, []uint{1, 5}, pastIDs)
}

func TestPartitionEmpty(t *testing.T) {
	board := Partition(nil, Today(time.Now()))
	require.Empty(t, board.Future)
	require.Empty(t, board.Past)
}
