package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/auth"
	"github.com/BruksfildServices01/salon-booking/internal/config"
	"github.com/BruksfildServices01/salon-booking/internal/customers"
	"github.com/BruksfildServices01/salon-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-booking/internal/infra/repository"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	"github.com/BruksfildServices01/salon-booking/internal/storage"
	ucBooking "github.com/BruksfildServices01/salon-booking/internal/usecase/booking"
	ucReview "github.com/BruksfildServices01/salon-booking/internal/usecase/review"
	ucSalon "github.com/BruksfildServices01/salon-booking/internal/usecase/salon"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

// Deps carries the process-wide collaborators built in main. Customers and
// Store may be nil; Limiter nil disables rate limiting.
type Deps struct {
	DB        *gorm.DB
	Config    *config.Config
	Log       zerolog.Logger
	Audit     *audit.Dispatcher
	Customers customers.Directory
	Store     storage.ObjectStore
	Limiter   *middleware.RateLimiter
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestLogger(d.Log, cfg.MetricsEnabled))
	r.Use(middleware.CORSMiddleware())

	limited := func(c *gin.Context) { c.Next() }
	if d.Limiter != nil {
		limited = d.Limiter.Handler()
	}

	// ======================================================
	// INFRA
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(d.DB)
	salonRepo := infraRepo.NewSalonGormRepository(d.DB)
	reviewRepo := infraRepo.NewReviewGormRepository(d.DB)
	userRepo := infraRepo.NewUserGormRepository(d.DB)

	tokens := auth.NewTokens(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

	var domainCheck func(string) bool
	if cfg.CheckEmailDomain {
		domainCheck = validators.IsEmailDomainValid
	}
	authService := auth.NewService(userRepo, tokens, domainCheck)

	// ======================================================
	// USE CASES
	// ======================================================
	ratingSummary := ucReview.NewGetRatingSummary(reviewRepo)
	listOwned := ucSalon.NewListOwnedSalons(salonRepo)
	images := ucSalon.NewImages(salonRepo, d.Store, d.Audit, d.Log)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(authService)
	meHandler := handlers.NewMeHandler(authService, listOwned)

	salonHandler := handlers.NewSalonHandler(
		ucSalon.NewListSalons(salonRepo),
		ucSalon.NewGetSalonDetail(salonRepo, ratingSummary),
		ucSalon.NewListCatalogue(salonRepo),
		images,
	)

	bookingHandler := handlers.NewBookingHandler(
		ucBooking.NewGetAvailability(bookingRepo),
		ucBooking.NewCreateBooking(bookingRepo, d.Audit),
		ucBooking.NewGetBooking(bookingRepo),
	)

	reviewHandler := handlers.NewReviewHandler(
		ucReview.NewListReviews(reviewRepo),
		ucReview.NewCreateReview(reviewRepo),
	)

	managerSalonHandler := handlers.NewManagerSalonHandler(
		listOwned,
		ucSalon.NewCreateSalon(salonRepo, d.Customers, d.Audit),
		ucSalon.NewUpdateSalon(salonRepo, d.Audit),
	)

	managerBookingHandler := handlers.NewManagerBookingHandler(
		ucBooking.NewListSalonBookings(bookingRepo),
		ucBooking.NewUpdateBookingStatus(bookingRepo, d.Audit),
		ucBooking.NewDeleteBooking(bookingRepo, d.Audit),
	)

	offeringHandler := handlers.NewOfferingHandler(ucSalon.NewOfferings(salonRepo, d.Audit))

	openingHoursHandler := handlers.NewOpeningHoursHandler(
		ucBooking.NewGetOpeningHours(bookingRepo),
		ucBooking.NewSetOpeningHours(bookingRepo, d.Audit),
	)

	imageHandler := handlers.NewImageHandler(images)
	customerHandler := handlers.NewCustomerHandler(d.Customers)
	auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(d.DB), salonRepo)
	healthHandler := handlers.NewHealthHandler(d.DB)

	if cfg.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Check)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", limited, authHandler.Register)
		api.POST("/auth/login", limited, authHandler.Login)
		api.GET("/auth/me", middleware.AuthMiddleware(tokens), meHandler.GetMe)

		// ------------------------------
		// PUBLIC DIRECTORY
		// ------------------------------
		api.GET("/salons", salonHandler.List)
		api.GET("/salons/:id", salonHandler.Get)
		api.GET("/salons/:id/images", salonHandler.Images)
		api.GET("/services", salonHandler.Catalogue)
		api.GET("/customers/:code", customerHandler.Validate)

		// ------------------------------
		// BOOKINGS
		// ------------------------------
		api.GET("/salons/:id/availability", bookingHandler.Availability)
		api.POST("/bookings", limited, bookingHandler.Create)
		api.GET("/bookings/:id", bookingHandler.Get)

		// ------------------------------
		// REVIEWS
		// ------------------------------
		api.GET("/salons/:id/reviews", reviewHandler.List)
		api.POST("/salons/:id/reviews", limited, reviewHandler.Create)

		// ------------------------------
		// MANAGER (auth)
		// ------------------------------
		manager := api.Group("/manager")
		manager.Use(middleware.AuthMiddleware(tokens))
		{
			manager.GET("/salons", managerSalonHandler.List)
			manager.POST("/salons", managerSalonHandler.Create)
			manager.PUT("/salons/:id", managerSalonHandler.Update)

			manager.GET("/salons/:id/bookings", managerBookingHandler.List)
			manager.GET("/salons/:id/bookings/export", managerBookingHandler.Export)
			manager.PUT("/bookings/:id/status", managerBookingHandler.UpdateStatus)
			manager.DELETE("/bookings/:id", managerBookingHandler.Delete)

			manager.GET("/salons/:id/services", offeringHandler.List)
			manager.POST("/salons/:id/services", offeringHandler.Create)
			manager.PUT("/salons/:id/services/:offering_id", offeringHandler.Update)
			manager.DELETE("/salons/:id/services/:offering_id", offeringHandler.Delete)

			manager.GET("/salons/:id/opening-hours", openingHoursHandler.Get)
			manager.PUT("/salons/:id/opening-hours", openingHoursHandler.Update)

			manager.POST("/salons/:id/images", imageHandler.Upload)
			manager.PUT("/salons/:id/images/:image_id", imageHandler.Update)
			manager.DELETE("/salons/:id/images/:image_id", imageHandler.Delete)

			manager.GET("/salons/:id/audit-logs", auditLogsHandler.List)
		}
	}
}
