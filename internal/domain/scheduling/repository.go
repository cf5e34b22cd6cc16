package scheduling

import (
	"context"
	"time"

	"github.com/MedCareServices01/clinic-scheduler/internal/models"
)

// Repository is the record store the lifecycle manager runs against.
// Implementations translate their storage errors into this package's
// taxonomy: missing rows become KindNotFound and a violated
// (doctor, slot) uniqueness constraint becomes KindSlotUnavailable,
// so a booking race is decided at commit time, not at the pre-check.
type Repository interface {
	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	SaveAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// -------- Conflict check --------
	CountConflicts(
		ctx context.Context,
		doctorID uint,
		start time.Time,
		end time.Time,
		excludeAppointmentID uint,
	) (int64, error)

	// -------- Day queries --------
	ListForDoctorDay(
		ctx context.Context,
		doctorID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)

	ListForDoctorDayByPatientName(
		ctx context.Context,
		doctorID uint,
		patientName string,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)

	ListForPatient(
		ctx context.Context,
		patientID uint,
	) ([]models.Appointment, error)

	// -------- Directories --------
	GetDoctorByID(
		ctx context.Context,
		id uint,
	) (*models.Doctor, error)

	GetPatientByID(
		ctx context.Context,
		id uint,
	) (*models.Patient, error)
}
