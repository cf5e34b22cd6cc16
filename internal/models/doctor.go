package models

import "time"

type Doctor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Specialty    string `gorm:"size:100" json:"specialty"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone        string `gorm:"size:20" json:"phone"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	// Working-hours catalog: ordered "HH:MM-HH:MM" ranges inside clinic
	// operating hours, e.g. "09:00-10:00".
	AvailableTimes []string `gorm:"serializer:json;type:text" json:"available_times"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
