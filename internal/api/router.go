package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/clientdesk/client-management/docs"
	"github.com/clientdesk/client-management/internal/api/handler"
	"github.com/clientdesk/client-management/internal/api/middleware"
	"github.com/clientdesk/client-management/internal/core/ports"
	"github.com/clientdesk/client-management/internal/core/service"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rateLimit caps requests per second per client IP; zero disables the limiter.
//
// The Prometheus middleware registers its collectors with the default
// registry, so build at most one router per process.
func NewRouter(repo ports.ClientRepository, version string, rateLimit int, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("clients"))
	if rateLimit > 0 {
		e.Use(middleware.RateLimit(middleware.RateLimitConfig{RequestsPerSecond: rateLimit}))
	}

	// --- Dependencies ---
	clientService := service.NewClientService(repo, log)
	clientHandler := handler.NewClientHandler(clientService)

	// --- Client routes ---
	e.GET("/clients", clientHandler.List)
	e.POST("/clients", clientHandler.Create)
	e.GET("/clients/:id", clientHandler.Get)
	e.PUT("/clients/:id", clientHandler.Update)
	e.DELETE("/clients/:id", clientHandler.Delete)

	// --- Health probes and service info ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(repo)
	rootHandler := handler.NewRootHandler(version)

	e.GET("/", rootHandler.Info)
	e.GET("/health", healthHandler.Liveness)           // is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // is the store readable?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
