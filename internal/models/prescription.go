package models

import "time"

// Prescription is a plain record keyed by appointment; the scheduler only
// stores and returns it, content is never interpreted.
type Prescription struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint `gorm:"uniqueIndex;not null" json:"appointment_id"`

	PatientName string `gorm:"size:100" json:"patient_name"`
	Medication  string `gorm:"size:100;not null" json:"medication"`
	Dosage      string `gorm:"size:50" json:"dosage"`
	DoctorNotes string `gorm:"size:255" json:"doctor_notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
