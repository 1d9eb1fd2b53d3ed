package appointment

import (
	"context"
	"time"

	"github.com/agendasoft/agenda-core/internal/apperr"
	"github.com/agendasoft/agenda-core/internal/audit"
	"github.com/agendasoft/agenda-core/internal/credentials"
	domain "github.com/agendasoft/agenda-core/internal/domain/appointment"
	"github.com/agendasoft/agenda-core/internal/models"
	"github.com/agendasoft/agenda-core/internal/validators"
)

type Create struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreate(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Create {
	return &Create{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Create) Execute(
	ctx context.Context,
	sess *credentials.Session,
	dateText string,
	timeText string,
) (*models.Appointment, error) {

	if sess == nil {
		return nil, apperr.ErrBusiness(apperr.CodeInvalidCredentials)
	}
	if sess.IsOwner() {
		// the owner identity has no users row to own the appointment
		return nil, apperr.ErrBusiness(apperr.CodeOwnerCannotBook)
	}

	if err := validators.ValidateComplete(dateText, timeText, time.Now()); err != nil {
		return nil, err
	}

	// store the canonical display form regardless of how it was typed
	date, _ := validators.FormatDateInput(dateText)
	timeOfDay, _ := validators.FormatTimeInput(timeText)

	ap := &models.Appointment{
		UserID: sess.User.ID,
		Date:   date,
		Time:   timeOfDay,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   sess.UserID(),
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
