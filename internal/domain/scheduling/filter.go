package scheduling

import (
	"strings"
	"time"

	"github.com/MedCareServices01/clinic-scheduler/internal/models"
)

// ===============================
// Doctor Filter
// ===============================

// DoctorFilter narrows a doctor listing. Zero-valued fields do not constrain,
// so every filter combination goes through the same predicate.
type DoctorFilter struct {
	Name      string
	Specialty string
	Period    string // "AM", "PM" or empty
}

func (f DoctorFilter) Matches(d *models.Doctor) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(d.Name), strings.ToLower(f.Name)) {
		return false
	}
	if f.Specialty != "" && !strings.Contains(strings.ToLower(d.Specialty), strings.ToLower(f.Specialty)) {
		return false
	}
	if f.Period != "" && !hasSlotInPeriod(d.AvailableTimes, f.Period) {
		return false
	}
	return true
}

// hasSlotInPeriod checks the doctor's "HH:MM-HH:MM" catalog entries against
// the requested half of the operating day: AM is 09-12, PM is 12-17.
func hasSlotInPeriod(ranges []string, period string) bool {
	for _, r := range ranges {
		startStr, _, ok := strings.Cut(r, "-")
		if !ok {
			continue
		}
		start, err := time.Parse("15:04", startStr)
		if err != nil {
			continue
		}

		hour := start.Hour()
		switch strings.ToUpper(period) {
		case "AM":
			if hour >= OpeningHour && hour < 12 {
				return true
			}
		case "PM":
			if hour >= 12 && hour < ClosingHour {
				return true
			}
		}
	}
	return false
}
