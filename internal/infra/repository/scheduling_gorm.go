package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/MedCareServices01/clinic-scheduler/internal/domain/scheduling"
	"github.com/MedCareServices01/clinic-scheduler/internal/models"
)

type SchedulingGormRepository struct {
	db *gorm.DB
}

func NewSchedulingGormRepository(db *gorm.DB) *SchedulingGormRepository {
	return &SchedulingGormRepository{db: db}
}

// translateWrite maps the store's constraint violation onto the taxonomy:
// the loser of a booking race hits the (doctor_id, appointment_time) unique
// index and must see the same error as a failed pre-check.
func translateWrite(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return scheduling.SlotUnavailable("slot_unavailable")
	}
	return scheduling.Internal("store_write_failed")
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *SchedulingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return translateWrite(r.db.WithContext(ctx).Create(ap).Error)
}

func (r *SchedulingGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, scheduling.NotFound("appointment_not_found")
		}
		return nil, scheduling.Internal("store_read_failed")
	}
	return &ap, nil
}

func (r *SchedulingGormRepository) SaveAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return translateWrite(r.db.WithContext(ctx).Save(ap).Error)
}

func (r *SchedulingGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {
	if err := r.db.WithContext(ctx).Delete(&models.Appointment{}, id).Error; err != nil {
		return scheduling.Internal("store_write_failed")
	}
	return nil
}

// --------------------------------------------------
// Conflict check
// --------------------------------------------------

func (r *SchedulingGormRepository) CountConflicts(
	ctx context.Context,
	doctorID uint,
	start time.Time,
	end time.Time,
	excludeAppointmentID uint,
) (int64, error) {

	var count int64
	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"doctor_id = ? AND appointment_time < ? AND appointment_time + interval '1 hour' > ?",
			doctorID,
			end,
			start,
		)

	if excludeAppointmentID != 0 {
		q = q.Where("id <> ?", excludeAppointmentID)
	}

	if err := q.Count(&count).Error; err != nil {
		return 0, scheduling.Internal("store_read_failed")
	}
	return count, nil
}

// --------------------------------------------------
// Day queries
// --------------------------------------------------

func (r *SchedulingGormRepository) ListForDoctorDay(
	ctx context.Context,
	doctorID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"doctor_id = ? AND appointment_time >= ? AND appointment_time < ?",
			doctorID, dayStart, dayEnd,
		).
		Order("appointment_time ASC").
		Find(&aps).Error; err != nil {
		return nil, scheduling.Internal("store_read_failed")
	}
	return aps, nil
}

func (r *SchedulingGormRepository) ListForDoctorDayByPatientName(
	ctx context.Context,
	doctorID uint,
	patientName string,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Joins("JOIN patients ON patients.id = appointments.patient_id").
		Where(
			"appointments.doctor_id = ? AND appointments.appointment_time >= ? AND appointments.appointment_time < ?",
			doctorID, dayStart, dayEnd,
		).
		Where("patients.name ILIKE ?", "%"+patientName+"%").
		Order("appointments.appointment_time ASC").
		Find(&aps).Error; err != nil {
		return nil, scheduling.Internal("store_read_failed")
	}
	return aps, nil
}

func (r *SchedulingGormRepository) ListForPatient(
	ctx context.Context,
	patientID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("appointment_time ASC").
		Find(&aps).Error; err != nil {
		return nil, scheduling.Internal("store_read_failed")
	}
	return aps, nil
}

// --------------------------------------------------
// Directories
// --------------------------------------------------

func (r *SchedulingGormRepository) GetDoctorByID(
	ctx context.Context,
	id uint,
) (*models.Doctor, error) {

	var d models.Doctor
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, scheduling.NotFound("doctor_not_found")
		}
		return nil, scheduling.Internal("store_read_failed")
	}
	return &d, nil
}

func (r *SchedulingGormRepository) GetPatientByID(
	ctx context.Context,
	id uint,
) (*models.Patient, error) {

	var p models.Patient
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, scheduling.NotFound("patient_not_found")
		}
		return nil, scheduling.Internal("store_read_failed")
	}
	return &p, nil
}

// Compile-time check
var _ scheduling.Repository = (*SchedulingGormRepository)(nil)
