package appointment

import (
	"context"

	"github.com/MedCareServices01/clinic-scheduler/internal/audit"
	"github.com/MedCareServices01/clinic-scheduler/internal/domain/scheduling"
	"github.com/MedCareServices01/clinic-scheduler/internal/models"
)

type PrescribeAppointment struct {
	repo  scheduling.Repository
	audit *audit.Dispatcher
}

func NewPrescribeAppointment(
	repo scheduling.Repository,
	audit *audit.Dispatcher,
) *PrescribeAppointment {
	return &PrescribeAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute advances the appointment to Prescribed. Idempotent: re-invoking on
// an already-prescribed appointment is a no-op, not an error.
func (uc *PrescribeAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	doctorID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if scheduling.Status(ap.Status) == scheduling.StatusPrescribed {
		return ap, nil
	}

	ap.Status = int(scheduling.StatusPrescribed)
	if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorRole: "doctor",
		ActorID:   &doctorID,
		Action:    "appointment_prescribed",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
