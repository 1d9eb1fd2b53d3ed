package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/agendasoft/agenda-core/internal/apperr"
	"github.com/agendasoft/agenda-core/internal/credentials"
	domain "github.com/agendasoft/agenda-core/internal/domain/appointment"
	"github.com/agendasoft/agenda-core/internal/dto"
)

type ListSchedule struct {
	repo domain.Repository
}

func NewListSchedule(
	repo domain.Repository,
) *ListSchedule {
	return &ListSchedule{
		repo: repo,
	}
}

// Execute returns the future/past board for the session: a user session
// sees its own appointments, the owner session sees every user's. The
// optional search term narrows by owner name or date text. No caching —
// every call re-queries.
func (uc *ListSchedule) Execute(
	ctx context.Context,
	sess *credentials.Session,
	search string,
) (dto.ScheduleBoardDTO, error) {

	if sess == nil {
		return dto.ScheduleBoardDTO{}, apperr.ErrBusiness(apperr.CodeInvalidCredentials)
	}

	rows, err := uc.repo.ListAppointments(ctx, sess.UserID(), strings.TrimSpace(search))
	if err != nil {
		return dto.ScheduleBoardDTO{}, err
	}

	return domain.Partition(rows, domain.Today(time.Now())), nil
}
