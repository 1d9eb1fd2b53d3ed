package agendacore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/agendasoft/agenda-core/internal/credentials"
)

func newTestCore(t *testing.T) *Core {
	t.Helper()

	core, err := New(&Config{
		DBPath:            filepath.Join(t.TempDir(), "agenda.db"),
		OwnerEmail:        "owner@example.com",
		OwnerPasswordHash: credentials.HashPassword("owner-secret"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = core.Close() })

	return core
}

func tomorrowDigits() string {
	return time.Now().AddDate(0, 0, 1).Format("02012006")
}

func tomorrowDisplay() string {
	return time.Now().AddDate(0, 0, 1).Format("02/01/2006")
}

func TestRegisterLoginBookFlow(t *testing.T) {
	core := newTestCore(t)
	ctx := context.Background()

	id, err := core.Register(ctx, RegisterInput{
		Name:     "Ana Souza",
		Email:    "ana@example.com",
		Phone:    "11987654321",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	_, err = core.Login(ctx, "ana@example.com", "wrong")
	require.Equal(t, CodeInvalidCredentials, ErrorCode(err))

	sess, err := core.Login(ctx, "ana@example.com", "secret123")
	require.NoError(t, err)
	require.False(t, sess.IsOwner())

	// the UI hands over whatever the user typed; digits alone are enough
	apID, err := core.AddAppointment(ctx, sess, tomorrowDigits(), "0930")
	require.NoError(t, err)
	require.NotZero(t, apID)

	board, err := core.ListAppointments(ctx, sess, "")
	require.NoError(t, err)
	require.Len(t, board.Future, 1)
	require.Empty(t, board.Past)
	require.Equal(t, tomorrowDisplay(), board.Future[0].Date)
	require.Equal(t, "09:30", board.Future[0].Time)
	require.Equal(t, "Ana Souza", board.Future[0].OwnerName)

	require.NoError(t, core.EditAppointment(ctx, sess, apID, tomorrowDigits(), "1600"))

	board, err = core.ListAppointments(ctx, sess, "")
	require.NoError(t, err)
	require.Equal(t, "16:00", board.Future[0].Time)

	require.NoError(t, core.DeleteAppointment(ctx, sess, apID))

	err = core.DeleteAppointment(ctx, sess, apID)
	require.Equal(t, CodeNotFound, ErrorCode(err))
}

func TestOwnerView(t *testing.T) {
	core := newTestCore(t)
	ctx := context.Background()

	for _, u := range []struct{ name, email string }{
		{"Ana Souza", "ana@example.com"},
		{"Bruno Lima", "bruno@example.com"},
	} {
		_, err := core.Register(ctx, RegisterInput{
			Name: u.name, Email: u.email, Password: "secret123",
		})
		require.NoError(t, err)

		sess, err := core.Login(ctx, u.email, "secret123")
		require.NoError(t, err)

		_, err = core.AddAppointment(ctx, sess, tomorrowDigits(), "1000")
		require.NoError(t, err)
	}

	owner, err := core.Login(ctx, "owner@example.com", "owner-secret")
	require.NoError(t, err)
	require.True(t, owner.IsOwner())

	board, err := core.ListAppointments(ctx, owner, "")
	require.NoError(t, err)
	require.Len(t, board.Future, 2)

	board, err = core.ListAppointments(ctx, owner, "Ana")
	require.NoError(t, err)
	require.Len(t, board.Future, 1)
	require.Equal(t, "Ana Souza", board.Future[0].OwnerName)

	// the owner may manage any user's appointment
	require.NoError(t, core.EditAppointment(ctx, owner, board.Future[0].ID, tomorrowDigits(), "1100"))
	require.NoError(t, core.DeleteAppointment(ctx, owner, board.Future[0].ID))

	// but cannot book: the owner identity has no user row
	_, err = core.AddAppointment(ctx, owner, tomorrowDigits(), "1000")
	require.Equal(t, CodeOwnerCannotBook, ErrorCode(err))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	core := newTestCore(t)
	ctx := context.Background()

	_, err := core.Register(ctx, RegisterInput{
		Name: "Ana", Email: "ana@example.com", Password: "one",
	})
	require.NoError(t, err)

	_, err = core.Register(ctx, RegisterInput{
		Name: "Other", Email: "ana@example.com", Password: "two",
	})
	require.Equal(t, CodeDuplicateEmail, ErrorCode(err))
	require.False(t, IsValidationError(err))
	require.False(t, IsStorageError(err))
}

func TestKeystrokeHelpers(t *testing.T) {
	display, complete := FormatDateInput("3102")
	require.Equal(t, "31/02", display)
	require.False(t, complete)

	display, complete = FormatDateInput("31022031")
	require.Equal(t, "31/02/2031", display)
	require.True(t, complete)
	require.Equal(t, CodeInvalidDate, ErrorCode(ValidateDateInput(display)))

	display, complete = FormatTimeInput("0930")
	require.Equal(t, "09:30", display)
	require.True(t, complete)
	require.NoError(t, ValidateTimeInput(display, tomorrowDisplay()))
}

func TestDataSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{
		DBPath:            filepath.Join(dir, "agenda.db"),
		OwnerEmail:        "owner@example.com",
		OwnerPasswordHash: credentials.HashPassword("owner-secret"),
	}
	ctx := context.Background()

	core, err := New(cfg)
	require.NoError(t, err)

	_, err = core.Register(ctx, RegisterInput{
		Name: "Ana", Email: "ana@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	sess, err := core.Login(ctx, "ana@example.com", "secret123")
	require.NoError(t, err)
	_, err = core.AddAppointment(ctx, sess, tomorrowDigits(), "0900")
	require.NoError(t, err)
	require.NoError(t, core.Close())

	reopened, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	sess, err = reopened.Login(ctx, "ana@example.com", "secret123")
	require.NoError(t, err)
	board, err := reopened.ListAppointments(ctx, sess, "")
	require.NoError(t, err)
	require.Len(t, board.Future, 1)
}
