package appointment

import (
	"context"
	"time"

	"github.com/MedCareServices01/clinic-scheduler/internal/audit"
	"github.com/MedCareServices01/clinic-scheduler/internal/domain/scheduling"
	"github.com/MedCareServices01/clinic-scheduler/internal/lock"
	"github.com/MedCareServices01/clinic-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	DoctorID  uint
	PatientID uint
	StartTime time.Time
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  scheduling.Repository
	locks lock.Locker
	audit *audit.Dispatcher
}

func NewBookAppointment(
	repo scheduling.Repository,
	locks lock.Locker,
	audit *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		locks: locks,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	if _, err := uc.repo.GetDoctorByID(ctx, in.DoctorID); err != nil {
		return nil, err
	}

	if !scheduling.WithinOperatingHours(in.StartTime) {
		return nil, scheduling.SlotUnavailable("outside_operating_hours")
	}

	start, end := scheduling.SlotWindow(in.StartTime)

	// Best-effort serialization of the check-and-write window. The unique
	// (doctor, slot) index re-validates at commit, so a lost lock only
	// changes which error the loser sees, never the outcome.
	key := lock.SlotKey(in.DoctorID, start)
	if ok, err := uc.locks.Acquire(ctx, key, 5*time.Second); err == nil {
		if !ok {
			return nil, scheduling.SlotUnavailable("slot_unavailable")
		}
		defer uc.locks.Release(ctx, key)
	}

	count, err := uc.repo.CountConflicts(ctx, in.DoctorID, start, end, 0)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, scheduling.SlotUnavailable("slot_unavailable")
	}

	ap := &models.Appointment{
		DoctorID:        in.DoctorID,
		PatientID:       in.PatientID,
		AppointmentTime: start,
		Status:          int(scheduling.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorRole: "patient",
		ActorID:   &in.PatientID,
		Action:    "appointment_booked",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
