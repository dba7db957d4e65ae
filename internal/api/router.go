package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/taskhive/todo-api/internal/api/handler"
	"github.com/taskhive/todo-api/internal/api/middleware"
	"github.com/taskhive/todo-api/internal/core/ports"
	"github.com/taskhive/todo-api/internal/core/service"

	_ "github.com/taskhive/todo-api/docs" // swagger spec
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(users ports.UserRepository, todos ports.TodoRepository, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("todoapi"))

	// --- Dependencies ---
	tokenService := service.NewTokenService(jwtSecret, tokenTTL)
	authService := service.NewAuthService(users, tokenService, log)
	todoService := service.NewTodoService(todos, log)

	authHandler := handler.NewAuthHandler(authService)
	todoHandler := handler.NewTodoHandler(todoService)
	healthHandler := handler.NewHealthHandler()

	authMiddleware := middleware.Auth(tokenService)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	apiGroup := e.Group("/api")
	apiGroup.GET("/health", healthHandler.Liveness)

	// --- Auth routes (unauthenticated) ---
	apiGroup.POST("/auth/register", authHandler.Register)
	apiGroup.POST("/auth/login", authHandler.Login)

	// --- Todo routes (authenticated) ---
	todoGroup := apiGroup.Group("/todos", authMiddleware)
	todoGroup.GET("", todoHandler.List)
	todoGroup.POST("", todoHandler.Create)
	todoGroup.GET("/:id", todoHandler.Get)
	todoGroup.PUT("/:id", todoHandler.Update)
	todoGroup.DELETE("/:id", todoHandler.Delete)

	return e
}
