// Package api assembles the HTTP surface of the gateway: routes, middleware,
// and the central error handler.
package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/pawhaven/adoption-gateway/docs"
	"github.com/pawhaven/adoption-gateway/internal/api/handler"
	"github.com/pawhaven/adoption-gateway/internal/api/middleware"
	"github.com/pawhaven/adoption-gateway/internal/core/service"
	"github.com/pawhaven/adoption-gateway/internal/infrastructure/config"
	mongostore "github.com/pawhaven/adoption-gateway/internal/infrastructure/db/mongo"
	redisstore "github.com/pawhaven/adoption-gateway/internal/infrastructure/db/redis"
	"github.com/pawhaven/adoption-gateway/internal/infrastructure/upstream"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, api *upstream.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("petadopt"))

	// --- Dependencies ---
	sessions := mongostore.NewSessionStore(db, cfg.SessionTTL)
	notifier := redisstore.NewNotifier(rdb, cfg.NotificationTTL)
	inflight := redisstore.NewInflightGuard(rdb, 0)

	e.HTTPErrorHandler = NewHTTPErrorHandler(log, sessions, notifier)
	e.Use(middleware.Session(sessions, cfg.SessionSecret))

	authService := service.NewAuthService(api, sessions, cfg.SessionSecret, cfg.SessionTTL, log)
	petService := service.NewPetService(api, log)
	adoptionService := service.NewAdoptionService(api, inflight, notifier, log)
	adminService := service.NewAdminService(api, inflight, notifier, log)

	authHandler := handler.NewAuthHandler(authService)
	petHandler := handler.NewPetHandler(petService)
	adoptionHandler := handler.NewAdoptionHandler(adoptionService)
	adminHandler := handler.NewAdminHandler(adminService)
	notificationHandler := handler.NewNotificationHandler(notifier)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me, middleware.RequireUser())

	// --- Public browsing ---
	// /pets/breeds must be registered before /pets/:id or Echo would route
	// "breeds" as a pet ID.
	e.GET("/pets", petHandler.Browse)
	e.GET("/pets/breeds", petHandler.Breeds)
	e.GET("/pets/:id", petHandler.Detail)

	// --- Adopter routes ---
	adoptions := e.Group("/adoptions", middleware.RequireUser())
	adoptions.POST("", adoptionHandler.Submit)
	adoptions.GET("", adoptionHandler.Dashboard)
	adoptions.DELETE("/:id", adoptionHandler.Withdraw)

	notifications := e.Group("/notifications", middleware.RequireUser())
	notifications.GET("/current", notificationHandler.Current)
	notifications.DELETE("/current", notificationHandler.Dismiss)

	// --- Admin console ---
	admin := e.Group("/admin", middleware.RequireAdmin())
	admin.GET("/pets", adminHandler.Pets)
	admin.POST("/pets", adminHandler.CreatePet)
	admin.PUT("/pets/:id", adminHandler.UpdatePet)
	admin.DELETE("/pets/:id", adminHandler.DeletePet)
	admin.GET("/adoptions", adminHandler.Adoptions)
	admin.PUT("/adoptions/:id/approve", adminHandler.Approve)
	admin.PUT("/adoptions/:id/reject", adminHandler.Reject)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
