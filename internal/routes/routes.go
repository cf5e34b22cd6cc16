package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MedCareServices01/clinic-scheduler/internal/audit"
	"github.com/MedCareServices01/clinic-scheduler/internal/auth"
	"github.com/MedCareServices01/clinic-scheduler/internal/config"
	"github.com/MedCareServices01/clinic-scheduler/internal/handlers"
	infraRepo "github.com/MedCareServices01/clinic-scheduler/internal/infra/repository"
	"github.com/MedCareServices01/clinic-scheduler/internal/lock"
	"github.com/MedCareServices01/clinic-scheduler/internal/middleware"
	"github.com/MedCareServices01/clinic-scheduler/internal/token"
	ucAppointment "github.com/MedCareServices01/clinic-scheduler/internal/usecase/appointment"
	ucDoctor "github.com/MedCareServices01/clinic-scheduler/internal/usecase/doctor"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	locks lock.Locker,
	loc *time.Location,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	schedulingRepo := infraRepo.NewSchedulingGormRepository(db)
	directoryRepo := infraRepo.NewDirectoryGormRepository(db)

	codec := token.NewCodec(cfg.JWTSecret)
	gate := auth.NewGate(codec, directoryRepo)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(schedulingRepo, locks, auditDispatcher)
	updateUC := ucAppointment.NewUpdateAppointment(schedulingRepo, locks, auditDispatcher)
	cancelUC := ucAppointment.NewCancelAppointment(schedulingRepo, auditDispatcher)
	prescribeUC := ucAppointment.NewPrescribeAppointment(schedulingRepo, auditDispatcher)
	availabilityUC := ucAppointment.NewGetAvailability(schedulingRepo)
	listByDoctorUC := ucAppointment.NewListAppointmentsByDoctor(schedulingRepo)
	listByPatientUC := ucAppointment.NewListAppointmentsByPatient(schedulingRepo)
	filterDoctorsUC := ucDoctor.NewFilterDoctors(directoryRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, codec)
	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		updateUC,
		cancelUC,
		listByDoctorUC,
		listByPatientUC,
		loc,
	)
	doctorHandler := handlers.NewDoctorHandler(db, filterDoctorsUC, availabilityUC, loc)
	prescriptionHandler := handlers.NewPrescriptionHandler(db, prescribeUC)

	// ======================================================
	// ROUTES
	// ======================================================
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/admin/login", authHandler.AdminLogin)
		authGroup.POST("/doctor/login", authHandler.DoctorLogin)
		authGroup.POST("/patient/login", authHandler.PatientLogin)
		authGroup.POST("/patient/register", authHandler.RegisterPatient)
	}

	public := r.Group("/public")
	{
		public.GET("/doctors", doctorHandler.List)
		public.GET("/doctors/:id/availability", doctorHandler.Availability)
	}

	patient := r.Group("/", middleware.RequireRole(gate, auth.RolePatient))
	{
		patient.POST("/appointments", appointmentHandler.Book)
		patient.PUT("/appointments/:id", appointmentHandler.Update)
		patient.DELETE("/appointments/:id", appointmentHandler.Cancel)
		patient.GET("/me/appointments", appointmentHandler.ListMine)
	}

	doctor := r.Group("/doctor", middleware.RequireRole(gate, auth.RoleDoctor))
	{
		doctor.GET("/appointments", appointmentHandler.ListForDoctor)
		doctor.POST("/prescriptions", prescriptionHandler.Save)
		doctor.GET("/prescriptions/:appointmentId", prescriptionHandler.GetByAppointment)
	}

	admin := r.Group("/admin", middleware.RequireRole(gate, auth.RoleAdmin))
	{
		admin.POST("/doctors", doctorHandler.Register)
		admin.DELETE("/doctors/:id", doctorHandler.Delete)
	}
}
