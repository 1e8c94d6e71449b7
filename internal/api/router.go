package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jurisdesk/case-tracker/internal/api/handler"
	"github.com/jurisdesk/case-tracker/internal/api/middleware"
	"github.com/jurisdesk/case-tracker/internal/core/ports"
	"github.com/jurisdesk/case-tracker/internal/web"
	"github.com/jurisdesk/case-tracker/pkg/logger"
)

// Services groups the use-case implementations the router wires to routes.
type Services struct {
	Auth      ports.AuthService
	Processes ports.ProcessService
	Petitions ports.PetitionService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, svcs Services) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("casetracker"))

	authHandler := handler.NewAuthHandler(svcs.Auth)
	processHandler := handler.NewProcessHandler(svcs.Processes)
	petitionHandler := handler.NewPetitionHandler(svcs.Petitions)
	gate := middleware.Auth(svcs.Auth)

	// --- Auth routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.GET("/api/auth/me", authHandler.Me, gate)

	// --- Process routes (owner-scoped) ---
	processes := e.Group("/api/processes", gate)
	processes.POST("", processHandler.Create)
	processes.GET("", processHandler.List)
	processes.GET("/:id", processHandler.Get)
	processes.PUT("/:id", processHandler.Update)
	processes.DELETE("/:id", processHandler.Delete)

	// --- Petition routes (shared) ---
	petitions := e.Group("/api/petitions", gate)
	petitions.POST("", petitionHandler.Create)
	petitions.GET("", petitionHandler.List)
	petitions.GET("/:id", petitionHandler.Get)
	petitions.PUT("/:id", petitionHandler.Update)
	petitions.DELETE("/:id", petitionHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/docs/*", echoswagger.WrapHandler)

	// --- Embedded single-page client ---
	e.StaticFS("/", echo.MustSubFS(web.Assets, "static"))

	return e
}
