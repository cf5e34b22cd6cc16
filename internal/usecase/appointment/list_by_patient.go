package appointment

import (
	"context"
	"strings"

	"github.com/MedCareServices01/clinic-scheduler/internal/domain/scheduling"
	"github.com/MedCareServices01/clinic-scheduler/internal/dto"
)

type ListByPatientInput struct {
	PatientID  uint
	DoctorName string             // optional, case-insensitive substring
	Condition  *scheduling.Status // optional status narrowing
}

type ListAppointmentsByPatient struct {
	repo scheduling.Repository
}

func NewListAppointmentsByPatient(repo scheduling.Repository) *ListAppointmentsByPatient {
	return &ListAppointmentsByPatient{repo: repo}
}

// Execute lists the requesting patient's own appointments in chronological
// order; ownership is implied by the identity resolved from the token.
func (uc *ListAppointmentsByPatient) Execute(
	ctx context.Context,
	in ListByPatientInput,
) ([]dto.AppointmentView, error) {

	aps, err := uc.repo.ListForPatient(ctx, in.PatientID)
	if err != nil {
		return nil, err
	}

	doctorNames := make(map[uint]string)
	views := make([]dto.AppointmentView, 0, len(aps))

	for _, ap := range aps {
		if in.Condition != nil && scheduling.Status(ap.Status) != *in.Condition {
			continue
		}

		name, ok := doctorNames[ap.DoctorID]
		if !ok {
			name = UnknownField
			if doctor, err := uc.repo.GetDoctorByID(ctx, ap.DoctorID); err == nil {
				name = doctor.Name
			}
			doctorNames[ap.DoctorID] = name
		}

		if in.DoctorName != "" && !strings.Contains(strings.ToLower(name), strings.ToLower(in.DoctorName)) {
			continue
		}

		view := dto.AppointmentView{
			ID:              ap.ID,
			DoctorID:        ap.DoctorID,
			DoctorName:      name,
			PatientID:       ap.PatientID,
			PatientName:     UnknownField,
			PatientEmail:    UnknownField,
			PatientPhone:    UnknownField,
			PatientAddress:  UnknownField,
			AppointmentTime: ap.AppointmentTime,
			Status:          ap.Status,
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
