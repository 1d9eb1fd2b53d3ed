// Package agendacore is the appointment booking core: registration, login
// with a fixed privileged owner credential, and conflict-validated
// date/time-slotted appointments over an embedded storage file. The UI
// layer drives it through Core; nothing here renders, prompts, or touches
// the network.
package agendacore

import (
	"context"

	"gorm.io/gorm"

	"github.com/agendasoft/agenda-core/internal/audit"
	"github.com/agendasoft/agenda-core/internal/config"
	"github.com/agendasoft/agenda-core/internal/credentials"
	dbpkg "github.com/agendasoft/agenda-core/internal/db"
	"github.com/agendasoft/agenda-core/internal/dto"
	"github.com/agendasoft/agenda-core/internal/infra/repository"
	appointmentuc "github.com/agendasoft/agenda-core/internal/usecase/appointment"
	authuc "github.com/agendasoft/agenda-core/internal/usecase/auth"
)

// Re-exported so callers outside the module can name the core types.
type (
	Config         = config.Config
	Session        = credentials.Session
	RegisterInput  = authuc.RegisterInput
	ScheduleBoard  = dto.ScheduleBoardDTO
	AppointmentRow = dto.AppointmentListDTO
)

// LoadConfig reads the environment (and an optional .env file).
func LoadConfig() *Config {
	return config.Load()
}

// Core is the surface the UI layer drives. It owns the storage handle and
// the audit worker; everything else is stateless.
type Core struct {
	db    *gorm.DB
	audit *audit.Dispatcher

	register *authuc.Register
	login    *authuc.Login
	create   *appointmentuc.Create
	update   *appointmentuc.Update
	delete   *appointmentuc.Delete
	list     *appointmentuc.ListSchedule
}

// New opens the storage file, migrates the schema and wires the use cases.
// A nil cfg falls back to LoadConfig.
func New(cfg *Config) (*Core, error) {
	if cfg == nil {
		cfg = config.Load()
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return nil, err
	}

	repo := repository.NewSchedulingGormRepository(db)
	auditor := audit.NewDispatcher(audit.New(db))

	return &Core{
		db:       db,
		audit:    auditor,
		register: authuc.NewRegister(repo, auditor),
		login:    authuc.NewLogin(repo, auditor, cfg),
		create:   appointmentuc.NewCreate(repo, auditor),
		update:   appointmentuc.NewUpdate(repo, auditor),
		delete:   appointmentuc.NewDelete(repo, auditor),
		list:     appointmentuc.NewListSchedule(repo),
	}, nil
}

// Register creates a user account and returns its id.
func (c *Core) Register(ctx context.Context, in RegisterInput) (uint, error) {
	user, err := c.register.Execute(ctx, in)
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

// Login authenticates either the fixed owner credential or a registered
// user and returns the session the remaining calls are scoped by.
func (c *Core) Login(ctx context.Context, email, password string) (*Session, error) {
	return c.login.Execute(ctx, email, password)
}

// ListAppointments returns the future/past partition visible to the
// session, optionally narrowed by a search term (owner name or date text,
// case-insensitive substring).
func (c *Core) ListAppointments(ctx context.Context, sess *Session, searchTerm string) (ScheduleBoard, error) {
	return c.list.Execute(ctx, sess, searchTerm)
}

// AddAppointment validates the date/time texts and books a slot for the
// session's user.
func (c *Core) AddAppointment(ctx context.Context, sess *Session, dateText, timeText string) (uint, error) {
	ap, err := c.create.Execute(ctx, sess, dateText, timeText)
	if err != nil {
		return 0, err
	}
	return ap.ID, nil
}

// EditAppointment overwrites the date/time of an appointment the session
// may touch; owner and creation timestamp are left alone.
func (c *Core) EditAppointment(ctx context.Context, sess *Session, id uint, dateText, timeText string) error {
	return c.update.Execute(ctx, sess, id, dateText, timeText)
}

func (c *Core) DeleteAppointment(ctx context.Context, sess *Session, id uint) error {
	return c.delete.Execute(ctx, sess, id)
}

// Close flushes pending audit events and releases the storage file.
func (c *Core) Close() error {
	c.audit.Close()
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
