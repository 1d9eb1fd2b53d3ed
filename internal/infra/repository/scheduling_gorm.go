package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/agendasoft/agenda-core/internal/apperr"
	domain "github.com/agendasoft/agenda-core/internal/domain/appointment"
	"github.com/agendasoft/agenda-core/internal/dto"
	"github.com/agendasoft/agenda-core/internal/models"
)

// calendarKey rewrites the stored DD/MM/YYYY text into YYYY-MM-DD so the
// ORDER BY compares calendar dates; a raw string sort would misorder
// months and days.
const calendarKey = "substr(appointments.date, 7, 4) || '-' || substr(appointments.date, 4, 2) || '-' || substr(appointments.date, 1, 2)"

type SchedulingGormRepository struct {
	db *gorm.DB
}

func NewSchedulingGormRepository(db *gorm.DB) *SchedulingGormRepository {
	return &SchedulingGormRepository{db: db}
}

// --------------------------------------------------
// User
// --------------------------------------------------

func (r *SchedulingGormRepository) CreateUser(
	ctx context.Context,
	u *models.User,
) error {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", u.Email).
		Count(&count).Error; err != nil {
		return apperr.Storage("count_users_by_email", err)
	}
	if count > 0 {
		return apperr.ErrBusiness(apperr.CodeDuplicateEmail)
	}

	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		// the unique index is the authority if the pre-check was stale
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.ErrBusiness(apperr.CodeDuplicateEmail)
		}
		return apperr.Storage("create_user", err)
	}
	return nil
}

func (r *SchedulingGormRepository) FindUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var u models.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrBusiness(apperr.CodeNotFound)
	}
	if err != nil {
		return nil, apperr.Storage("find_user_by_email", err)
	}
	return &u, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *SchedulingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		return apperr.Storage("create_appointment", err)
	}
	return nil
}

func (r *SchedulingGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).First(&ap, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrBusiness(apperr.CodeNotFound)
	}
	if err != nil {
		return nil, apperr.Storage("get_appointment", err)
	}
	return &ap, nil
}

func (r *SchedulingGormRepository) UpdateAppointment(
	ctx context.Context,
	id uint,
	date string,
	timeOfDay string,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Updates(map[string]any{"date": date, "time": timeOfDay})

	if res.Error != nil {
		return apperr.Storage("update_appointment", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrBusiness(apperr.CodeNotFound)
	}
	return nil
}

func (r *SchedulingGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)

	if res.Error != nil {
		return apperr.Storage("delete_appointment", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrBusiness(apperr.CodeNotFound)
	}
	return nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *SchedulingGormRepository) ListAppointments(
	ctx context.Context,
	ownerUserID *uint,
	search string,
) ([]dto.AppointmentListDTO, error) {

	q := r.db.WithContext(ctx).
		Table("appointments").
		Select("appointments.id, users.name AS owner_name, appointments.date, appointments.time, appointments.created_at").
		Joins("JOIN users ON users.id = appointments.user_id")

	if ownerUserID != nil {
		q = q.Where("appointments.user_id = ?", *ownerUserID)
	}
	if search != "" {
		term := "%" + strings.ToLower(search) + "%"
		q = q.Where("lower(users.name) LIKE ? OR appointments.date LIKE ?", term, term)
	}

	rows := make([]dto.AppointmentListDTO, 0)
	if err := q.Order(calendarKey + ", appointments.time").Scan(&rows).Error; err != nil {
		return nil, apperr.Storage("list_appointments", err)
	}
	return rows, nil
}

// Compile-time check
var _ domain.Repository = (*SchedulingGormRepository)(nil)
