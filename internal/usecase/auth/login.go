package auth

import (
	"context"
	"strings"

	"github.com/agendasoft/agenda-core/internal/apperr"
	"github.com/agendasoft/agenda-core/internal/audit"
	"github.com/agendasoft/agenda-core/internal/config"
	"github.com/agendasoft/agenda-core/internal/credentials"
	domain "github.com/agendasoft/agenda-core/internal/domain/appointment"
)

type Login struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cfg   *config.Config
}

func NewLogin(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cfg *config.Config,
) *Login {
	return &Login{
		repo:  repo,
		audit: audit,
		cfg:   cfg,
	}
}

func (uc *Login) Execute(
	ctx context.Context,
	email string,
	password string,
) (*credentials.Session, error) {

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apperr.ErrBusiness(apperr.CodeEmptyField)
	}

	// fixed owner credential: compared against configuration, bypassing
	// the users table entirely
	if email == uc.cfg.OwnerEmail &&
		credentials.VerifyPassword(password, uc.cfg.OwnerPasswordHash) {

		uc.audit.Dispatch(audit.Event{
			Action: "owner_login",
			Entity: "session",
		})
		return credentials.NewOwnerSession(), nil
	}

	user, err := uc.repo.FindUserByEmail(ctx, email)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.ErrBusiness(apperr.CodeInvalidCredentials)
		}
		return nil, err
	}

	if !credentials.VerifyPassword(password, user.PasswordHash) {
		return nil, apperr.ErrBusiness(apperr.CodeInvalidCredentials)
	}

	uc.audit.Dispatch(audit.Event{
		UserID: &user.ID,
		Action: "user_login",
		Entity: "session",
	})

	return credentials.NewUserSession(user), nil
}
