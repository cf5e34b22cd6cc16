package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MedCareServices01/clinic-scheduler/internal/domain/scheduling"
	"github.com/MedCareServices01/clinic-scheduler/internal/httperr"
	"github.com/MedCareServices01/clinic-scheduler/internal/httpresp"
	"github.com/MedCareServices01/clinic-scheduler/internal/middleware"
	ucAppointment "github.com/MedCareServices01/clinic-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	bookUC        *ucAppointment.BookAppointment
	updateUC      *ucAppointment.UpdateAppointment
	cancelUC      *ucAppointment.CancelAppointment
	listDoctorUC  *ucAppointment.ListAppointmentsByDoctor
	listPatientUC *ucAppointment.ListAppointmentsByPatient

	loc *time.Location
}

func NewAppointmentHandler(
	bookUC *ucAppointment.BookAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	listDoctorUC *ucAppointment.ListAppointmentsByDoctor,
	listPatientUC *ucAppointment.ListAppointmentsByPatient,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookUC:        bookUC,
		updateUC:      updateUC,
		cancelUC:      cancelUC,
		listDoctorUC:  listDoctorUC,
		listPatientUC: listPatientUC,
		loc:           loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	DoctorID uint   `json:"doctor_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
}

type UpdateAppointmentRequest struct {
	DoctorID uint   `json:"doctor_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
}

// ======================================================
// PATIENT
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	identity := middleware.Identity(c)

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	start, err := parseDateTime(h.loc, req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		DoctorID:  req.DoctorID,
		PatientID: identity.ID,
		StartTime: start,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	identity := middleware.Identity(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	start, err := parseDateTime(h.loc, req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		AppointmentID:       uint(id),
		RequestingPatientID: identity.ID,
		NewDoctorID:         req.DoctorID,
		NewStartTime:        start,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	identity := middleware.Identity(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
		return
	}

	if err := h.cancelUC.Execute(c.Request.Context(), uint(id), identity.ID); err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, gin.H{"status": "cancelled"})
}

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	identity := middleware.Identity(c)

	var condition *scheduling.Status
	switch c.Query("condition") {
	case "":
	case "scheduled":
		s := scheduling.StatusScheduled
		condition = &s
	case "prescribed":
		s := scheduling.StatusPrescribed
		condition = &s
	default:
		httperr.BadRequest(c, "invalid_condition", "Condition must be scheduled or prescribed.")
		return
	}

	views, err := h.listPatientUC.Execute(c.Request.Context(), ucAppointment.ListByPatientInput{
		PatientID:  identity.ID,
		DoctorName: c.Query("doctor_name"),
		Condition:  condition,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, views)
}

// ======================================================
// DOCTOR
// ======================================================

// ListForDoctor returns the calling doctor's appointments for one date,
// optionally narrowed by a patient-name substring.
func (h *AppointmentHandler) ListForDoctor(c *gin.Context) {
	identity := middleware.Identity(c)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	date, err := parseDate(h.loc, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date. Use YYYY-MM-DD.")
		return
	}

	views, err := h.listDoctorUC.Execute(c.Request.Context(), ucAppointment.ListByDoctorInput{
		DoctorID:    identity.ID,
		Date:        date,
		PatientName: c.Query("patient_name"),
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, views)
}
