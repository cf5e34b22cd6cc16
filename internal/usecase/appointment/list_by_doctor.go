package appointment

import (
	"context"
	"time"

	"github.com/MedCareServices01/clinic-scheduler/internal/domain/scheduling"
	"github.com/MedCareServices01/clinic-scheduler/internal/dto"
	"github.com/MedCareServices01/clinic-scheduler/internal/models"
)

// UnknownField stands in for display fields of a referenced record that no
// longer exists. Dangling references degrade the view, never the request.
const UnknownField = "Unknown"

type ListByDoctorInput struct {
	DoctorID    uint
	Date        time.Time
	PatientName string // optional, case-insensitive substring
}

type ListAppointmentsByDoctor struct {
	repo scheduling.Repository
}

func NewListAppointmentsByDoctor(repo scheduling.Repository) *ListAppointmentsByDoctor {
	return &ListAppointmentsByDoctor{repo: repo}
}

func (uc *ListAppointmentsByDoctor) Execute(
	ctx context.Context,
	in ListByDoctorInput,
) ([]dto.AppointmentView, error) {

	dayStart, dayEnd := scheduling.DayWindow(in.Date)

	var (
		aps []models.Appointment
		err error
	)
	if in.PatientName == "" {
		aps, err = uc.repo.ListForDoctorDay(ctx, in.DoctorID, dayStart, dayEnd)
	} else {
		aps, err = uc.repo.ListForDoctorDayByPatientName(ctx, in.DoctorID, in.PatientName, dayStart, dayEnd)
	}
	if err != nil {
		return nil, err
	}

	return uc.enrich(ctx, aps)
}

func (uc *ListAppointmentsByDoctor) enrich(
	ctx context.Context,
	aps []models.Appointment,
) ([]dto.AppointmentView, error) {

	views := make([]dto.AppointmentView, 0, len(aps))
	for _, ap := range aps {
		view := dto.AppointmentView{
			ID:              ap.ID,
			DoctorID:        ap.DoctorID,
			DoctorName:      UnknownField,
			PatientID:       ap.PatientID,
			PatientName:     UnknownField,
			PatientEmail:    UnknownField,
			PatientPhone:    UnknownField,
			PatientAddress:  UnknownField,
			AppointmentTime: ap.AppointmentTime,
			Status:          ap.Status,
		}

		if doctor, err := uc.repo.GetDoctorByID(ctx, ap.DoctorID); err == nil {
			view.DoctorName = doctor.Name
		}
		if patient, err := uc.repo.GetPatientByID(ctx, ap.PatientID); err == nil {
			view.PatientName = patient.Name
			view.PatientEmail = patient.Email
			view.PatientPhone = patient.Phone
			view.PatientAddress = patient.Address
		}

		views = append(views, view)
	}

	return views, nil
}
