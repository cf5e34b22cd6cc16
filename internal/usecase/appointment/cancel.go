package appointment

import (
	"context"

	"github.com/MedCareServices01/clinic-scheduler/internal/audit"
	"github.com/MedCareServices01/clinic-scheduler/internal/domain/scheduling"
)

type CancelAppointment struct {
	repo  scheduling.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo scheduling.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes the appointment record. Deletion is the only way an
// appointment leaves the system; identifiers are never reused and the freed
// slot becomes bookable again immediately.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	requestingPatientID uint,
) error {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return err
	}

	if ap.PatientID != requestingPatientID {
		return scheduling.Forbidden("not_appointment_owner")
	}

	if err := uc.repo.DeleteAppointment(ctx, ap.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorRole: "patient",
		ActorID:   &requestingPatientID,
		Action:    "appointment_cancelled",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return nil
}
