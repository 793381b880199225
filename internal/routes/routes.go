package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/salonhub/salon-backend/internal/audit"
	"github.com/salonhub/salon-backend/internal/cache"
	"github.com/salonhub/salon-backend/internal/config"
	domain "github.com/salonhub/salon-backend/internal/domain/booking"
	"github.com/salonhub/salon-backend/internal/googleauth"
	"github.com/salonhub/salon-backend/internal/handlers"
	infraRepo "github.com/salonhub/salon-backend/internal/infra/repository"
	"github.com/salonhub/salon-backend/internal/mail"
	"github.com/salonhub/salon-backend/internal/middleware"
	"github.com/salonhub/salon-backend/internal/storage"
	ucBooking "github.com/salonhub/salon-backend/internal/usecase/booking"
	ucIdentity "github.com/salonhub/salon-backend/internal/usecase/identity"
)

// Deps carries the externally-constructed pieces the route tree needs;
// main decides what is real and what is nil.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Redis    *redis.Client
	Uploader storage.Uploader
	Mailer   mail.Sender
	Verifier googleauth.Verifier
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(d.DB)
	identityRepo := infraRepo.NewIdentityGormRepository(d.DB)

	auditLogger := audit.New(d.DB)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var sequencer domain.SlotSequencer
	if d.Config.QueueStrategy == config.QueueStrategyCounter && d.Redis != nil {
		sequencer = cache.NewSlotSequence(d.Redis)
	}
	popularCache := cache.NewPopularCache(d.Redis)

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	createAppointmentUC := ucBooking.NewCreateAppointment(
		bookingRepo,
		sequencer,
		auditDispatcher,
	)

	cancelAppointmentUC := ucBooking.NewCancelAppointment(
		bookingRepo,
		auditDispatcher,
	)

	updateAppointmentUC := ucBooking.NewUpdateAppointment(
		bookingRepo,
		auditDispatcher,
	)

	listAppointmentsUC := ucBooking.NewListAppointments(bookingRepo)

	// ======================================================
	// USE CASES — IDENTITY
	// ======================================================
	passwordResetUC := ucIdentity.NewPasswordReset(identityRepo, d.Mailer)
	refreshSessionUC := ucIdentity.NewRefreshSession(identityRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.DB, d.Config, passwordResetUC, refreshSessionUC, d.Verifier)
	userHandler := handlers.NewUserHandler(d.DB)

	serviceHandler := handlers.NewServiceHandler(
		d.DB,
		d.Uploader,
		popularCache,
		auditDispatcher,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		cancelAppointmentUC,
		updateAppointmentUC,
		listAppointmentsUC,
	)

	salesHandler := handlers.NewSalesHandler(d.DB, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api/v1")
	{
		// ------------------------------
		// AUTH (public)
		// ------------------------------
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh-token", authHandler.RefreshToken)
			auth.POST("/forget-password", authHandler.ForgetPassword)
			auth.POST("/reset-password", authHandler.ResetPassword)
			auth.POST("/google-login", authHandler.GoogleLogin)
		}

		// ------------------------------
		// SERVICES (public reads)
		// ------------------------------
		services := api.Group("/services")
		{
			services.GET("/getAllServices", serviceHandler.List)
			services.GET("/getActiveServices", serviceHandler.ListActive)
			services.GET("/search", serviceHandler.Search)
			services.GET("/availability", serviceHandler.CheckAvailability)
			services.GET("/popular", serviceHandler.GetPopular)
			services.GET("/:serviceId", serviceHandler.GetByID)
		}

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Config))
		{
			secured.POST("/auth/logout", authHandler.Logout)
			secured.POST("/auth/change-password", authHandler.ChangePassword)

			secured.GET("/users/me", userHandler.GetMe)
			secured.PATCH("/users/me", userHandler.UpdateAccountDetails)
			secured.POST("/users/me/experiences", userHandler.AddExperience)
			secured.PATCH("/users/me/experiences/:expIndex", userHandler.UpdateExperience)
			secured.DELETE("/users/me/experiences/:expIndex", userHandler.RemoveExperience)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments/create", appointmentHandler.Create)
			secured.DELETE("/appointments/cancel/:appointmentId", appointmentHandler.Cancel)
			secured.GET("/appointments/getMyAppointments", appointmentHandler.GetMine)
			secured.GET("/appointments/staff/:staffId", appointmentHandler.GetForStaff)
			secured.GET("/appointments/:appointmentId", appointmentHandler.GetByID)
			secured.PATCH("/appointments/:appointmentId", appointmentHandler.Update)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/appointments/getAllAppointments", appointmentHandler.GetAll)

				admin.POST("/services/create", serviceHandler.Create)
				admin.GET("/services/getInactiveServices", serviceHandler.ListInactive)
				admin.PATCH("/services/:serviceId", serviceHandler.Update)
				admin.DELETE("/services/:serviceId", serviceHandler.Delete)
				admin.PATCH("/services/:serviceId/toggle", serviceHandler.ToggleStatus)

				admin.POST("/sales/createDailySales", salesHandler.CreateDailySales)
				admin.PATCH("/sales/updateDailySales", salesHandler.UpdateDailySales)
				admin.GET("/sales/getDailySales", salesHandler.GetDailySales)
				admin.GET("/sales/getMonthlySales", salesHandler.GetMonthlySales)
				admin.POST("/sales/createExpenses", salesHandler.CreateExpenses)
				admin.GET("/sales/getProfitOrLoss", salesHandler.GetProfitOrLoss)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
