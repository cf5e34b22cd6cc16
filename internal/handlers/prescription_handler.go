package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MedCareServices01/clinic-scheduler/internal/httperr"
	"github.com/MedCareServices01/clinic-scheduler/internal/httpresp"
	"github.com/MedCareServices01/clinic-scheduler/internal/middleware"
	"github.com/MedCareServices01/clinic-scheduler/internal/models"
	ucAppointment "github.com/MedCareServices01/clinic-scheduler/internal/usecase/appointment"
)

type PrescriptionHandler struct {
	db          *gorm.DB
	prescribeUC *ucAppointment.PrescribeAppointment
}

func NewPrescriptionHandler(
	db *gorm.DB,
	prescribeUC *ucAppointment.PrescribeAppointment,
) *PrescriptionHandler {
	return &PrescriptionHandler{
		db:          db,
		prescribeUC: prescribeUC,
	}
}

type SavePrescriptionRequest struct {
	AppointmentID uint   `json:"appointment_id" binding:"required"`
	PatientName   string `json:"patient_name"`
	Medication    string `json:"medication" binding:"required"`
	Dosage        string `json:"dosage"`
	DoctorNotes   string `json:"doctor_notes"`
}

// Save stores a prescription record and advances the appointment to
// Prescribed. The record itself is opaque to the scheduler.
func (h *PrescriptionHandler) Save(c *gin.Context) {
	identity := middleware.Identity(c)

	var req SavePrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if _, err := h.prescribeUC.Execute(c.Request.Context(), req.AppointmentID, identity.ID); err != nil {
		httperr.From(c, err)
		return
	}

	prescription := models.Prescription{
		AppointmentID: req.AppointmentID,
		PatientName:   req.PatientName,
		Medication:    req.Medication,
		Dosage:        req.Dosage,
		DoctorNotes:   req.DoctorNotes,
	}

	if err := h.db.Create(&prescription).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.BadRequest(c, "prescription_already_exists", "Appointment already has a prescription.")
			return
		}
		httperr.Internal(c, "failed_to_save_prescription", "Could not save prescription.")
		return
	}

	httpresp.Created(c, prescription)
}

func (h *PrescriptionHandler) GetByAppointment(c *gin.Context) {
	appointmentID, err := strconv.ParseUint(c.Param("appointmentId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
		return
	}

	var prescription models.Prescription
	if err := h.db.
		Where("appointment_id = ?", uint(appointmentID)).
		First(&prescription).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Write(c, 404, "prescription_not_found", "No prescription for this appointment.")
			return
		}
		httperr.Internal(c, "failed_to_load_prescription", "Could not load prescription.")
		return
	}

	httpresp.OK(c, prescription)
}
