package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/serverest/usuarios-api/internal/api/handler"
	"github.com/serverest/usuarios-api/internal/core/ports"
)

// Dependencies carries everything the router needs. Mongo and Redis are nil
// when the service runs on the in-memory store; the readiness probe then
// skips them.
type Dependencies struct {
	Users ports.UserService
	Auth  ports.AuthService
	Mongo *mongo.Database
	Redis *redis.Client
	Log   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("usuarios"))

	// --- Contract routes ---
	userHandler := handler.NewUserHandler(deps.Users)
	authHandler := handler.NewAuthHandler(deps.Auth)

	e.GET("/usuarios", userHandler.List)
	e.POST("/usuarios", userHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational surfaces ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
