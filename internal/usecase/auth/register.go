package auth

import (
	"context"
	"strings"

	"github.com/agendasoft/agenda-core/internal/apperr"
	"github.com/agendasoft/agenda-core/internal/audit"
	"github.com/agendasoft/agenda-core/internal/credentials"
	domain "github.com/agendasoft/agenda-core/internal/domain/appointment"
	"github.com/agendasoft/agenda-core/internal/models"
	"github.com/agendasoft/agenda-core/internal/validators"
)

const maxPhoneDigits = 11

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

type Register struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRegister(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Register {
	return &Register{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (*models.User, error) {

	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	phone := strings.TrimSpace(in.Phone)

	if name == "" || in.Password == "" {
		return nil, apperr.ErrBusiness(apperr.CodeEmptyField)
	}
	if err := validators.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePhone(phone); err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: credentials.HashPassword(in.Password),
	}

	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &user.ID,
	})

	return user, nil
}

// phone is optional; when present it must be digits only, at most 11.
func validatePhone(phone string) error {
	if phone == "" {
		return nil
	}
	if len(phone) > maxPhoneDigits {
		return apperr.ErrBusiness(apperr.CodeInvalidPhone)
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return apperr.ErrBusiness(apperr.CodeInvalidPhone)
		}
	}
	return nil
}
