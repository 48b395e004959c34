package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/systrack/systrack-api/docs"
	"github.com/systrack/systrack-api/internal/api/handler"
	"github.com/systrack/systrack-api/internal/api/middleware"
	"github.com/systrack/systrack-api/internal/core/domain"
	"github.com/systrack/systrack-api/internal/core/ports"
)

// Deps carries everything the HTTP layer calls into. Mongo and Redis are
// only used by the readiness probe and may be nil.
type Deps struct {
	Parts       ports.PartService
	Systems     ports.SystemService
	Assignments ports.AssignmentService
	Employees   ports.EmployeeService
	Audit       ports.AuditReader
	Stats       ports.StatsService
	Auth        ports.AuthService

	JWTSecret string
	Log       zerolog.Logger

	Mongo *mongo.Database
	Redis *redis.Client

	// Registry receives the HTTP request metrics. Nil means the default
	// Prometheus registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if d.Registry != nil {
		registerer, gatherer = d.Registry, d.Registry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "systrack",
		Registerer: registerer,
	}))

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Mongo, d.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth)
	partHandler := handler.NewPartHandler(d.Parts)
	systemHandler := handler.NewSystemHandler(d.Systems)
	assignmentHandler := handler.NewAssignmentHandler(d.Assignments)
	employeeHandler := handler.NewEmployeeHandler(d.Employees)
	auditHandler := handler.NewAuditHandler(d.Audit, d.Stats)

	// --- Auth routes ---
	users := e.Group("/api/users")
	users.POST("/signup", authHandler.Register)
	users.POST("/login", authHandler.Login)

	// Everything below requires a token. Any operator may read; only
	// admins may change the inventory.
	authMiddleware := middleware.Auth(d.JWTSecret)
	read := middleware.RBAC(domain.RoleAdmin, domain.RoleStaff)
	write := middleware.RBAC(domain.RoleAdmin)

	protected := e.Group("/api", authMiddleware)

	// --- Parts ---
	part := protected.Group("/part")
	part.POST("", partHandler.Register, write)
	part.GET("", partHandler.List, read)
	part.GET("/freeparts", partHandler.Free, read)
	part.GET("/unusable", partHandler.Unusable, read)
	part.GET("/:id", partHandler.Get, read)
	part.PUT("/:id", partHandler.Update, write)
	part.DELETE("/:id", partHandler.Delete, write)
	part.PATCH("/:id/unusable", partHandler.MarkUnusable, write)
	part.PATCH("/:id/restore", partHandler.Restore, write)

	// --- Systems ---
	system := protected.Group("/system")
	system.POST("", systemHandler.Create, write)
	system.GET("/allsys", systemHandler.List, read)
	system.GET("/stats", auditHandler.Stats, read)
	system.POST("/updateSystem/:id", systemHandler.Update, write)
	system.GET("/by-system/:systemId", systemHandler.Parts, read)
	system.GET("/:systemId", systemHandler.Get, read)
	system.GET("/:systemId/parts", systemHandler.Parts, read)
	system.PUT("/:systemId/remove-part/:partId", systemHandler.RemovePart, write)
	system.POST("/assignSystem/:systemId", assignmentHandler.Assign, write)
	system.PATCH("/unassign/:systemId", assignmentHandler.Unassign, write)
	system.PATCH("/deallocate/:systemId", assignmentHandler.Deallocate, write)

	// --- Employees ---
	employee := protected.Group("/employee")
	employee.POST("", employeeHandler.Create, write)
	employee.GET("/allemployee", employeeHandler.List, read)
	employee.GET("/unassigned", employeeHandler.Unassigned, read)
	employee.GET("/:id", employeeHandler.Get, read)
	employee.PUT("/:id", employeeHandler.Update, write)
	employee.DELETE("/:id", employeeHandler.Delete, write)

	// --- Audit ---
	protected.GET("/logs", auditHandler.Logs, read)

	return e
}
