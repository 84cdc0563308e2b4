package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/sirpyerre/user-api/internal/api/handler"
	"github.com/sirpyerre/user-api/internal/api/middleware"
	"github.com/sirpyerre/user-api/internal/core/ports"
	_ "github.com/sirpyerre/user-api/internal/docs"
)

const defaultBodyLimit = "10M"

// Options carries what the router needs from main.
type Options struct {
	Service ports.UserService
	// Probes are pinged by the readiness endpoint, keyed by dependency name.
	Probes    map[string]handler.Pinger
	Logger    zerolog.Logger
	BodyLimit string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)
	e.Validator = handler.NewValidator()

	bodyLimit := opts.BodyLimit
	if bodyLimit == "" {
		bodyLimit = defaultBodyLimit
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(opts.Logger))
	e.Use(middleware.Metrics())
	e.Use(echomiddleware.BodyLimit(bodyLimit))

	// --- User API ---
	users := handler.NewUserHandler(opts.Service, opts.Logger)

	e.GET("/", users.Home)
	e.POST("/user/new", users.Create)
	e.GET("/user/detail", users.Detail)
	e.GET("/user/detail/:user_id", users.DetailByID)
	e.PUT("/user/update/:user_id", users.Update)
	e.POST("/user/login", users.Login)
	e.POST("/contact", users.Contact)
	e.POST("/post-image", users.UploadImage)

	// --- Operational endpoints ---
	health := handler.NewHealthHandler(opts.Probes)

	e.GET("/health", health.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", health.Readiness) // readiness – is the directory backend up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/docs/*", echoSwagger.WrapHandler)

	return e
}
