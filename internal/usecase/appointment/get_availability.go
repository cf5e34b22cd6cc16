package appointment

import (
	"context"
	"time"

	"github.com/MedCareServices01/clinic-scheduler/internal/domain/scheduling"
)

type GetAvailability struct {
	repo scheduling.Repository
}

func NewGetAvailability(repo scheduling.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute returns the doctor's open one-hour slots for a calendar date:
// the canonical daily slots minus those whose start matches a booked
// appointment. Recomputed on every call so the result always reflects the
// latest committed bookings.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	doctorID uint,
	date time.Time,
) ([]scheduling.TimeSlot, error) {

	if _, err := uc.repo.GetDoctorByID(ctx, doctorID); err != nil {
		return nil, err
	}

	dayStart, dayEnd := scheduling.DayWindow(date)

	booked, err := uc.repo.ListForDoctorDay(ctx, doctorID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]bool, len(booked))
	for _, ap := range booked {
		taken[ap.AppointmentTime.Format("15:04")] = true
	}

	slots := make([]scheduling.TimeSlot, 0, scheduling.SlotsPerDay)
	for _, start := range scheduling.DailySlots(date) {
		if taken[start.Format("15:04")] {
			continue
		}
		slots = append(slots, scheduling.FormatSlot(start))
	}

	return slots, nil
}
