package routes

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/corteja-app/booking-api/internal/audit"
	"github.com/corteja-app/booking-api/internal/avatar"
	"github.com/corteja-app/booking-api/internal/bookinglock"
	"github.com/corteja-app/booking-api/internal/config"
	"github.com/corteja-app/booking-api/internal/handlers"
	infraRepo "github.com/corteja-app/booking-api/internal/infra/repository"
	ucBooking "github.com/corteja-app/booking-api/internal/usecase/booking"
)

// RegisterRoutes monta a API e devolve o dispatcher de auditoria para o
// chamador drenar no shutdown.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) *audit.Dispatcher {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var locker bookinglock.Locker = bookinglock.NoopLocker{}
	if cfg.RedisEnabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		locker = bookinglock.NewRedisLocker(rdb, 10*time.Second)
	} else {
		log.Println("redis disabled, booking relies on row locks only")
	}

	var avatars *avatar.Uploader
	if cfg.S3Enabled() {
		avatars = avatar.NewUploader(cfg)
	}

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)

	createAppointmentUC := ucBooking.NewCreateAppointment(
		bookingRepo,
		locker,
		auditDispatcher,
	)

	cancelAppointmentUC := ucBooking.NewCancelAppointment(
		bookingRepo,
		auditDispatcher,
	)

	completeAppointmentUC := ucBooking.NewCompleteAppointment(
		bookingRepo,
		auditDispatcher,
	)

	saveAvailabilityUC := ucBooking.NewSaveAvailability(
		bookingRepo,
		auditDispatcher,
	)

	listAppointmentsByDateUC := ucBooking.NewListAppointmentsByDate(bookingRepo)
	listAppointmentsByMonthUC := ucBooking.NewListAppointmentsByMonth(bookingRepo)
	dashboardStatsUC := ucBooking.NewGetDashboardStats(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(
		db,
		availabilityUC,
		createAppointmentUC,
	)

	barbershopHandler := handlers.NewBarbershopHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(dashboardStatsUC)

	barberHandler := handlers.NewBarberHandler(
		db,
		saveAvailabilityUC,
		avatars,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		createAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA (widget / bot)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/barbers", publicHandler.ListBarbers)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/appointments", publicHandler.CreateAppointment)
		}

		// ------------------------------
		// DASHBOARD (loja explícita na rota)
		// ------------------------------
		shops := api.Group("/shops/:shop_id")
		{
			shops.GET("", barbershopHandler.Get)
			shops.PATCH("", barbershopHandler.Update)

			shops.GET("/dashboard", dashboardHandler.Stats)

			shops.GET("/services", serviceHandler.List)
			shops.POST("/services", serviceHandler.Create)
			shops.PATCH("/services/:id", serviceHandler.Update)

			shops.GET("/barbers", barberHandler.List)
			shops.POST("/barbers", barberHandler.Create)
			shops.PATCH("/barbers/:id", barberHandler.Update)
			shops.GET("/barbers/:id/availability", barberHandler.GetAvailability)
			shops.PUT("/barbers/:id/availability", barberHandler.PutAvailability)
			shops.POST("/barbers/:id/avatar", barberHandler.UploadAvatar)

			shops.GET("/clients", clientHandler.List)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			shops.POST("/appointments", appointmentHandler.Create)
			shops.GET("/appointments", appointmentHandler.ListByDate)
			shops.GET("/appointments/month", appointmentHandler.ListByMonth)
			shops.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			shops.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

			shops.GET("/audit-logs", auditLogsHandler.List)
		}
	}

	return auditDispatcher
}
