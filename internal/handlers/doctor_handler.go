package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/MedCareServices01/clinic-scheduler/internal/domain/scheduling"
	"github.com/MedCareServices01/clinic-scheduler/internal/httperr"
	"github.com/MedCareServices01/clinic-scheduler/internal/httpresp"
	"github.com/MedCareServices01/clinic-scheduler/internal/models"
	"github.com/MedCareServices01/clinic-scheduler/internal/validators"
	ucAppointment "github.com/MedCareServices01/clinic-scheduler/internal/usecase/appointment"
	ucDoctor "github.com/MedCareServices01/clinic-scheduler/internal/usecase/doctor"
)

type DoctorHandler struct {
	db             *gorm.DB
	filterUC       *ucDoctor.FilterDoctors
	availabilityUC *ucAppointment.GetAvailability

	loc *time.Location
}

func NewDoctorHandler(
	db *gorm.DB,
	filterUC *ucDoctor.FilterDoctors,
	availabilityUC *ucAppointment.GetAvailability,
	loc *time.Location,
) *DoctorHandler {
	return &DoctorHandler{
		db:             db,
		filterUC:       filterUC,
		availabilityUC: availabilityUC,
		loc:            loc,
	}
}

// --------- Requests ---------

type RegisterDoctorRequest struct {
	Name           string   `json:"name" binding:"required"`
	Specialty      string   `json:"specialty"`
	Email          string   `json:"email" binding:"required,email"`
	Phone          string   `json:"phone"`
	Password       string   `json:"password" binding:"required,min=6"`
	AvailableTimes []string `json:"available_times"`
}

// --------- Public ---------

// List filters the doctor directory by name, specialty and period (AM/PM);
// absent query parameters do not constrain.
func (h *DoctorHandler) List(c *gin.Context) {
	doctors, err := h.filterUC.Execute(c.Request.Context(), scheduling.DoctorFilter{
		Name:      c.Query("name"),
		Specialty: c.Query("specialty"),
		Period:    c.Query("period"),
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, doctors)
}

func (h *DoctorHandler) Availability(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "Invalid doctor id.")
		return
	}

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

	slots, err := h.availabilityUC.Execute(c.Request.Context(), uint(id), date)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, slots)
}

// --------- Admin ---------

func (h *DoctorHandler) Register(c *gin.Context) {
	var req RegisterDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	var count int64
	h.db.Model(&models.Doctor{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "doctor_already_exists", "Email already registered.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not register doctor.")
		return
	}

	doctor := models.Doctor{
		Name:           req.Name,
		Specialty:      req.Specialty,
		Email:          email,
		Phone:          req.Phone,
		PasswordHash:   string(hashed),
		AvailableTimes: req.AvailableTimes,
	}

	if err := h.db.Create(&doctor).Error; err != nil {
		httperr.Internal(c, "failed_to_create_doctor", "Could not register doctor.")
		return
	}

	httpresp.Created(c, doctor)
}

func (h *DoctorHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "Invalid doctor id.")
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("doctor_id = ?", uint(id)).Delete(&models.Appointment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Doctor{}, uint(id)).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_delete_doctor", "Could not delete doctor.")
		return
	}

	httpresp.OK(c, gin.H{"status": "deleted"})
}
