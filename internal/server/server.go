package server

import (
	"context"
	"net/http"

	"github.com/theofylaktos99/gym-app/internal/area"
	"github.com/theofylaktos99/gym-app/internal/auth"
	"github.com/theofylaktos99/gym-app/internal/booking"
	"github.com/theofylaktos99/gym-app/internal/config"
	"github.com/theofylaktos99/gym-app/internal/email"
	"github.com/theofylaktos99/gym-app/internal/tenant"
	"github.com/theofylaktos99/gym-app/internal/user"
	"github.com/theofylaktos99/gym-app/internal/workout"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
	http   *http.Server
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.Default()
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	tenantHandler := tenant.NewHandler(db)
	userHandler := user.NewHandler(db, cfg.JWTSecret)
	areaHandler := area.NewHandler(db)
	workoutHandler := workout.NewHandler(db)
	bookingHandler := booking.NewHandler(db, emailService, booking.SystemClock(),
		cfg.SlotAnchor == config.SlotAnchorDate)

	router.POST("/tenants", tenantHandler.CreateTenant)
	router.GET("/tenants/:subdomain", tenantHandler.GetTenantBySubdomain)

	public := router.Group("/auth")
	public.Use(auth.TenantRequired())
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.Refresh)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)
		protected.GET("/areas", areaHandler.ListAreas)
		protected.GET("/gym-status", areaHandler.GymStatus)
		protected.GET("/areas/:areaID/slots", bookingHandler.ListSlots)
		protected.POST("/bookings", bookingHandler.CreateBooking)
		protected.GET("/bookings", bookingHandler.ListBookings)
		protected.POST("/bookings/:bookingID/cancel", bookingHandler.CancelBooking)
		protected.GET("/workouts/programs", workoutHandler.ListPrograms)
		protected.POST("/workouts/sessions", workoutHandler.StartSession)
		protected.GET("/workouts/sessions", workoutHandler.ListSessions)
		protected.POST("/workouts/sessions/:sessionID/complete", workoutHandler.CompleteSession)
		protected.POST("/workouts/sessions/:sessionID/cancel", workoutHandler.CancelSession)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware, auth.RequireRole(user.RoleAdmin))
	{
		admin.POST("/areas", areaHandler.CreateArea)
		admin.POST("/areas/:areaID/status", areaHandler.PinStatus)
		admin.GET("/areas/:areaID/bookings", bookingHandler.ListAreaBookings)
		admin.POST("/bookings/:bookingID/complete", bookingHandler.CompleteBooking)
		admin.POST("/workouts/programs", workoutHandler.CreateProgram)
		admin.POST("/users/:userID/deactivate", userHandler.Deactivate)
		admin.GET("/tenants", tenantHandler.ListTenants)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.GET("/test-email", TestEmail(emailService))
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
		http: &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: router,
		},
	}
}

func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, X-Tenant-ID, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
