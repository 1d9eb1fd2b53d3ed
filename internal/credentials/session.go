package credentials

import (
	"github.com/google/uuid"

	"github.com/agendasoft/agenda-core/internal/models"
)

// Session is the value handed to the UI after a successful login. The owner
// session carries no user: the owner identity is configuration, not a row.
type Session struct {
	Token uuid.UUID
	User  *models.User
}

func NewOwnerSession() *Session {
	return &Session{Token: uuid.New()}
}

func NewUserSession(u *models.User) *Session {
	return &Session{Token: uuid.New(), User: u}
}

func (s *Session) IsOwner() bool {
	return s != nil && s.User == nil
}

// UserID returns the logged-in user's id, or nil for the owner session so
// listings fall through to the all-users view.
func (s *Session) UserID() *uint {
	if s == nil || s.User == nil {
		return nil
	}
	return &s.User.ID
}
