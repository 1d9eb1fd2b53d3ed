package appointment

import (
	"context"
	"time"

	"github.com/agendasoft/agenda-core/internal/apperr"
	"github.com/agendasoft/agenda-core/internal/audit"
	"github.com/agendasoft/agenda-core/internal/credentials"
	domain "github.com/agendasoft/agenda-core/internal/domain/appointment"
	"github.com/agendasoft/agenda-core/internal/validators"
)

type Update struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdate(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Update {
	return &Update{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Update) Execute(
	ctx context.Context,
	sess *credentials.Session,
	id uint,
	dateText string,
	timeText string,
) error {

	if sess == nil {
		return apperr.ErrBusiness(apperr.CodeInvalidCredentials)
	}

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return err
	}

	// user sessions may only touch their own rows; a foreign row is
	// indistinguishable from a missing one
	if !sess.IsOwner() && ap.UserID != sess.User.ID {
		return apperr.ErrBusiness(apperr.CodeNotFound)
	}

	if err := validators.ValidateComplete(dateText, timeText, time.Now()); err != nil {
		return err
	}

	date, _ := validators.FormatDateInput(dateText)
	timeOfDay, _ := validators.FormatTimeInput(timeText)

	if err := uc.repo.UpdateAppointment(ctx, id, date, timeOfDay); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   sess.UserID(),
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &id,
	})

	return nil
}
