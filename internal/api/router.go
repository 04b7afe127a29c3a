package api

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/clientdesk/crm-backend/docs"
	"github.com/clientdesk/crm-backend/internal/api/handler"
	"github.com/clientdesk/crm-backend/internal/api/middleware"
	"github.com/clientdesk/crm-backend/internal/core/domain"
	"github.com/clientdesk/crm-backend/internal/core/service"
	pgstore "github.com/clientdesk/crm-backend/internal/infrastructure/db/postgres"
	redisdb "github.com/clientdesk/crm-backend/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("crm"))

	// --- Dependencies ---
	userRepo := pgstore.NewUserRepository(pool)
	customerRepo := pgstore.NewCustomerRepository(pool)
	taskRepo := pgstore.NewTaskRepository(pool)
	denylist := redisdb.NewTokenDenylist(rdb)

	authService := service.NewAuthService(userRepo, denylist, jwtSecret, 24*time.Hour)
	customerService := service.NewCustomerService(customerRepo, log)
	taskService := service.NewTaskService(taskRepo, log)
	userService := service.NewUserService(userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	customerHandler := handler.NewCustomerHandler(customerService)
	taskHandler := handler.NewTaskHandler(taskService)
	userHandler := handler.NewUserHandler(userService)

	auth := middleware.Auth(jwtSecret, denylist)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	anyRole := middleware.RBAC()

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, auth)

	// --- Customer routes ---
	customers := e.Group("/customers", auth)
	customers.POST("", customerHandler.Create, adminOnly)
	customers.GET("", customerHandler.List, anyRole)
	customers.GET("/:id", customerHandler.Get, anyRole)
	customers.PATCH("/:id", customerHandler.Update, adminOnly)
	customers.DELETE("/:id", customerHandler.Delete, adminOnly)

	// --- Task routes ---
	tasks := e.Group("/tasks", auth)
	tasks.POST("", taskHandler.Create, adminOnly)
	tasks.GET("", taskHandler.List, anyRole)
	tasks.PATCH("/:id/status", taskHandler.UpdateStatus, anyRole)

	// --- User routes ---
	users := e.Group("/users", auth, adminOnly)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PATCH("/:id/role", userHandler.UpdateRole)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
