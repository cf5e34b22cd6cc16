package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DoctorID uint   `gorm:"uniqueIndex:idx_doctor_slot;not null" json:"doctor_id"`
	Doctor   Doctor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	PatientID uint    `gorm:"not null" json:"patient_id"`
	Patient   Patient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// Slot start; every appointment lasts exactly one hour. The composite
	// unique index with DoctorID makes the loser of a booking race fail the
	// write instead of double-booking the slot.
	AppointmentTime time.Time `gorm:"uniqueIndex:idx_doctor_slot;not null" json:"appointment_time"`

	Status int `gorm:"default:0" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
