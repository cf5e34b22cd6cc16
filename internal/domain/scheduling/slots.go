package scheduling

import (
	"fmt"
	"time"
)

// ===============================
// Clinic Slots
// ===============================

const (
	// Clinic operating window, identical for every doctor. Doctor-specific
	// working hours are an extension point, not implemented.
	OpeningHour = 9
	ClosingHour = 17

	SlotDuration = time.Hour
)

// SlotsPerDay is the number of bookable one-hour slots in the operating window.
const SlotsPerDay = ClosingHour - OpeningHour

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DailySlots enumerates the canonical slot start times for a calendar date,
// in chronological order: 09:00 through 16:00.
func DailySlots(date time.Time) []time.Time {
	loc := date.Location()
	starts := make([]time.Time, 0, SlotsPerDay)
	for hour := OpeningHour; hour < ClosingHour; hour++ {
		starts = append(starts, time.Date(
			date.Year(), date.Month(), date.Day(),
			hour, 0, 0, 0,
			loc,
		))
	}
	return starts
}

// SlotWindow expands a slot start into its half-open [start, start+1h) window.
func SlotWindow(start time.Time) (time.Time, time.Time) {
	return start, start.Add(SlotDuration)
}

// WithinOperatingHours reports whether start is a bookable slot boundary:
// on the hour and inside the operating window.
func WithinOperatingHours(start time.Time) bool {
	if start.Minute() != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
		return false
	}
	return start.Hour() >= OpeningHour && start.Hour() < ClosingHour
}

// DayWindow returns the half-open window covering a whole calendar date.
func DayWindow(date time.Time) (time.Time, time.Time) {
	loc := date.Location()
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	return start, start.Add(24 * time.Hour)
}

func FormatSlot(start time.Time) TimeSlot {
	return TimeSlot{
		Start: start.Format("15:04"),
		End:   start.Add(SlotDuration).Format("15:04"),
	}
}

// FormatRange renders a slot the way the doctor catalog stores it,
// e.g. "09:00-10:00".
func FormatRange(start time.Time) string {
	return fmt.Sprintf("%s-%s", start.Format("15:04"), start.Add(SlotDuration).Format("15:04"))
}
