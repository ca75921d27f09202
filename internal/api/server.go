package api

import (
	"github.com/gin-gonic/gin"

	"github.com/kingrain94/vehicle-assess-api/internal/config"
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
	"github.com/kingrain94/vehicle-assess-api/internal/middleware"
	"github.com/kingrain94/vehicle-assess-api/internal/service"
	"github.com/kingrain94/vehicle-assess-api/pkg/logger"
)

const maxJSONBodyBytes = 10 * 1024 * 1024

// Services groups the implementations the handlers depend on
type Services struct {
	Tenant         *service.TenantService
	Auth           *service.AuthService
	File           *service.FileService
	Booking        *service.BookingService
	Search         *service.SearchService
	Pricing        *service.PricingService
	Notification   *service.NotificationService
	RateLimitEvent *service.RateLimitEventService
	Maintenance    *service.MaintenanceService
	TextStream     *service.TextStreamService
	Analysis       *service.AnalysisService
	Chat           *service.ChatService
	Billing        *service.BillingService
}

type Server struct {
	config       *config.Config
	tenant       *TenantHandler
	authHandler  *AuthHandler
	file         *FileHandler
	booking      *BookingHandler
	search       *SearchHandler
	pricing      *PricingHandler
	notification *NotificationHandler
	maintenance  *MaintenanceHandler
	stream       *StreamHandler
	analysis     *AnalysisHandler
	webhook      *WebhookHandler
	websocket    *WebSocketHandler
	auth         *middleware.AuthMiddleware
	rateLimit    *middleware.RateLimitMiddleware
	validation   *middleware.ValidationMiddleware
}

func NewServer(
	cfg *config.Config,
	services Services,
	auth *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	logger *logger.Logger,
	pubsub StreamSubscriber,
) *Server {
	return &Server{
		config:       cfg,
		tenant:       NewTenantHandler(services.Tenant),
		authHandler:  NewAuthHandler(services.Auth, cfg, logger),
		file:         NewFileHandler(services.File, cfg.MaxUploadBytes),
		booking:      NewBookingHandler(services.Booking),
		search:       NewSearchHandler(services.Search),
		pricing:      NewPricingHandler(services.Pricing),
		notification: NewNotificationHandler(services.Notification),
		maintenance:  NewMaintenanceHandler(services.Maintenance, services.RateLimitEvent),
		stream:       NewStreamHandler(services.TextStream),
		analysis:     NewAnalysisHandler(services.Analysis, services.Chat),
		webhook:      NewWebhookHandler(services.Booking, services.Billing, logger),
		websocket:    NewWebSocketHandler(logger, pubsub),
		auth:         auth,
		rateLimit:    rateLimit,
		validation:   validation,
	}
}

// SetupRoutes mounts the public callbacks under /api and the application
// routes under /api/v1.
func (s *Server) SetupRoutes(router *gin.Engine) {
	root := router.Group("/api")

	// Apply security middleware first
	root.Use(s.validation.BlockSuspiciousPatterns())
	root.Use(s.validation.SanitizeInput())
	root.Use(s.rateLimit.GlobalRateLimit(s.config.GlobalRateLimit))

	// Provider callbacks and the canned chat reply carry no user credentials
	root.GET("/auth/clerk-callback", s.authHandler.ClerkCallback)
	root.POST("/chat/fallback", s.validation.ValidateRequestSize(maxJSONBodyBytes), s.analysis.ChatFallback)
	root.POST("/calendar/webhook", s.validation.ValidateRequestSize(maxJSONBodyBytes), s.webhook.CalendarWebhook)
	root.POST("/stripe/webhook", s.validation.ValidateRequestSize(maxJSONBodyBytes), s.webhook.StripeWebhook)

	api := root.Group("/v1")
	api.Use(s.validation.ValidateContentType("application/json", "multipart/form-data"))

	// Unknown tokens still log out successfully, so logout sits outside auth
	api.POST("/auth/logout", s.authHandler.Logout)

	admin := string(domain.RoleAdmin)
	staff := string(domain.RoleStaff)

	authed := api.Group("", s.auth.Authenticate(), s.rateLimit.TenantRateLimit())
	{
		authed.GET("/auth/me", s.authHandler.Me)
		authed.POST("/auth/token", s.authHandler.IssueToken)
		authed.GET("/dashboard", s.tenant.GetDashboard)

		tenants := authed.Group("/tenants", s.auth.RequireRole(admin))
		{
			tenants.POST("", s.tenant.CreateTenant)
			tenants.GET("", s.tenant.ListTenants)
			tenants.GET("/:id", s.tenant.GetTenant)
			tenants.PATCH("/:id", s.tenant.UpdateTenant)
			tenants.DELETE("/:id", s.tenant.DeleteTenant)
		}

		files := authed.Group("/files")
		{
			files.POST("", s.auth.RequireRole(staff), s.validation.ValidateRequestSize(s.config.MaxUploadBytes+maxJSONBodyBytes), s.file.UploadFile)
			files.GET("", s.file.ListFiles)
			files.GET("/:id", s.file.GetFile)
			files.GET("/:id/url", s.file.GetFileURL)
			files.DELETE("/:id", s.auth.RequireRole(staff), s.file.DeleteFile)
		}

		bookings := authed.Group("/bookings", s.validation.ValidateRequestSize(maxJSONBodyBytes))
		{
			bookings.POST("", s.auth.RequireRole(staff), s.booking.CreateBooking)
			bookings.GET("", s.booking.ListBookings)
			bookings.GET("/availability", s.booking.GetAvailability)
			bookings.GET("/:id", s.booking.GetBooking)
			bookings.PATCH("/:id/status", s.auth.RequireRole(staff), s.booking.UpdateBookingStatus)
			bookings.POST("/:id/cancel", s.auth.RequireRole(staff), s.booking.CancelBooking)
			bookings.DELETE("/:id", s.auth.RequireRole(admin), s.booking.DeleteBooking)
		}

		search := authed.Group("/search")
		{
			search.GET("", s.search.SearchBookings)
			search.GET("/history", s.search.ListHistory)
			search.DELETE("/history", s.search.ClearHistory)
		}

		pricing := authed.Group("/pricing-rules")
		{
			pricing.GET("", s.pricing.ListPricingRules)
			pricing.GET("/:id", s.pricing.GetPricingRule)
			pricing.POST("", s.auth.RequireRole(admin), s.pricing.CreatePricingRule)
			pricing.PATCH("/:id", s.auth.RequireRole(admin), s.pricing.UpdatePricingRule)
			pricing.DELETE("/:id", s.auth.RequireRole(admin), s.pricing.DeletePricingRule)
		}

		authed.GET("/notifications/preferences", s.notification.GetPreferences)
		authed.PUT("/notifications/preferences", s.notification.UpdatePreferences)

		authed.GET("/rate-limit-events", s.auth.RequireRole(admin), s.maintenance.ListRateLimitEvents)
		authed.DELETE("/maintenance/cleanup", s.auth.RequireRole(admin), s.maintenance.Cleanup)

		streams := authed.Group("/streams")
		{
			streams.GET("/ws", s.websocket.HandleWebSocket)
			streams.GET("/:id", s.stream.GetStream)
		}

		analyses := authed.Group("/analyses", s.validation.ValidateRequestSize(maxJSONBodyBytes))
		{
			analyses.POST("", s.auth.RequireRole(staff), s.analysis.RequestAnalysis)
			analyses.GET("", s.analysis.ListAnalyses)
			analyses.POST("/similar", s.analysis.FindSimilar)
			analyses.GET("/:id", s.analysis.GetAnalysis)
		}

		authed.POST("/chat", s.validation.ValidateRequestSize(maxJSONBodyBytes), s.analysis.Chat)
	}
}

// StartWebSocketHub starts the hub relaying text stream events
func (s *Server) StartWebSocketHub() {
	go s.websocket.Start()
}

func (s *Server) StopWebSocketHub() {
	s.websocket.Stop()
}
