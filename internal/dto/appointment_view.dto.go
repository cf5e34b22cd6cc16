package dto

import "time"

// AppointmentView is an appointment enriched with denormalized doctor and
// patient display fields for listing screens. Missing references show the
// sentinel value instead of failing the whole listing.
type AppointmentView struct {
	ID uint `json:"id"`

	DoctorID   uint   `json:"doctor_id"`
	DoctorName string `json:"doctor_name"`

	PatientID      uint   `json:"patient_id"`
	PatientName    string `json:"patient_name"`
	PatientEmail   string `json:"patient_email"`
	PatientPhone   string `json:"patient_phone"`
	PatientAddress string `json:"patient_address"`

	AppointmentTime time.Time `json:"appointment_time"`
	Status          int       `json:"status"`
}
