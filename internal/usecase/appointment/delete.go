package appointment

import (
	"context"

	"github.com/agendasoft/agenda-core/internal/apperr"
	"github.com/agendasoft/agenda-core/internal/audit"
	"github.com/agendasoft/agenda-core/internal/credentials"
	domain "github.com/agendasoft/agenda-core/internal/domain/appointment"
)

type Delete struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDelete(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Delete {
	return &Delete{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Delete) Execute(
	ctx context.Context,
	sess *credentials.Session,
	id uint,
) error {

	if sess == nil {
		return apperr.ErrBusiness(apperr.CodeInvalidCredentials)
	}

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return err
	}

	if !sess.IsOwner() && ap.UserID != sess.User.ID {
		return apperr.ErrBusiness(apperr.CodeNotFound)
	}

	if err := uc.repo.DeleteAppointment(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   sess.UserID(),
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &id,
	})

	return nil
}
