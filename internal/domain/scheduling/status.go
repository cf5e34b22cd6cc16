package scheduling

// ===============================
// Appointment Status
// ===============================

// Status values move forward only. Cancellation is deletion, not a status.
type Status int

const (
	StatusScheduled Status = 0
	// StatusCompleted is reserved; nothing transitions into it yet.
	StatusCompleted  Status = 1
	StatusPrescribed Status = 2
)

func InitialStatus() Status {
	return StatusScheduled
}

// CanUpdate allows doctor/time reassignment only before any clinical action.
func CanUpdate(current Status) error {
	if current != StatusScheduled {
		return InvalidState("appointment_not_modifiable")
	}
	return nil
}
