package appointment

import (
	"context"

	"github.com/agendasoft/agenda-core/internal/dto"
	"github.com/agendasoft/agenda-core/internal/models"
)

type Repository interface {
	// -------- User --------
	CreateUser(
		ctx context.Context,
		u *models.User,
	) error

	FindUserByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		id uint,
		date string,
		timeOfDay string,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// -------- Listing --------
	ListAppointments(
		ctx context.Context,
		ownerUserID *uint,
		search string,
	) ([]dto.AppointmentListDTO, error)
}
