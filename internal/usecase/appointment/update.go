package appointment

import (
	"context"
	"time"

	"github.com/MedCareServices01/clinic-scheduler/internal/audit"
	"github.com/MedCareServices01/clinic-scheduler/internal/domain/scheduling"
	"github.com/MedCareServices01/clinic-scheduler/internal/lock"
	"github.com/MedCareServices01/clinic-scheduler/internal/models"
)

type UpdateAppointmentInput struct {
	AppointmentID       uint
	RequestingPatientID uint
	NewDoctorID         uint
	NewStartTime        time.Time
}

type UpdateAppointment struct {
	repo  scheduling.Repository
	locks lock.Locker
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo scheduling.Repository,
	locks lock.Locker,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		locks: locks,
		audit: audit,
	}
}

// Execute reassigns doctor and time on a still-scheduled appointment the
// requesting patient owns. Checks run in a fixed order so the first failing
// one determines the reported error: existence, ownership, state, conflict.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	if ap.PatientID != in.RequestingPatientID {
		return nil, scheduling.Forbidden("not_appointment_owner")
	}

	if err := scheduling.CanUpdate(scheduling.Status(ap.Status)); err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetDoctorByID(ctx, in.NewDoctorID); err != nil {
		return nil, err
	}

	if !scheduling.WithinOperatingHours(in.NewStartTime) {
		return nil, scheduling.SlotUnavailable("outside_operating_hours")
	}

	start, end := scheduling.SlotWindow(in.NewStartTime)

	key := lock.SlotKey(in.NewDoctorID, start)
	if ok, err := uc.locks.Acquire(ctx, key, 5*time.Second); err == nil {
		if !ok {
			return nil, scheduling.SlotUnavailable("slot_unavailable")
		}
		defer uc.locks.Release(ctx, key)
	}

	// The appointment being moved must not conflict with itself.
	count, err := uc.repo.CountConflicts(ctx, in.NewDoctorID, start, end, ap.ID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, scheduling.SlotUnavailable("slot_unavailable")
	}

	// Patient reference and status never change here.
	ap.DoctorID = in.NewDoctorID
	ap.AppointmentTime = start

	if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorRole: "patient",
		ActorID:   &in.RequestingPatientID,
		Action:    "appointment_updated",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
