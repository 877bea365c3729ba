package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/arvandy/contacts-backend/internal/handlers"
	"github.com/arvandy/contacts-backend/internal/logger"
	"github.com/arvandy/contacts-backend/internal/middleware"
)

type RouterConfig struct {
	Log            *logger.Logger
	AuthMiddleware *middleware.AuthMiddleware
	HealthHandler  *handlers.HealthHandler
	UserHandler    *handlers.UserHandler
	ContactHandler *handlers.ContactHandler
	AddressHandler *handlers.AddressHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware("contacts-backend"))
	router.Use(middleware.RequestLogger(cfg.Log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// Public
	if cfg.HealthHandler != nil {
		router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	api := router.Group("/api")
	{
		api.POST("/users", cfg.UserHandler.Register)
		api.POST("/users/login", cfg.UserHandler.Login)
	}

	// Protected
	protected := api.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	{
		// User
		protected.GET("/users/current", cfg.UserHandler.GetCurrent)
		protected.PATCH("/users/current", cfg.UserHandler.UpdateCurrent)
		protected.DELETE("/users/current", cfg.UserHandler.Logout)

		// Contact
		protected.POST("/contacts", cfg.ContactHandler.Create)
		protected.GET("/contacts", cfg.ContactHandler.Search)
		protected.GET("/contacts/:contactId", cfg.ContactHandler.Get)
		protected.PUT("/contacts/:contactId", cfg.ContactHandler.Update)
		protected.DELETE("/contacts/:contactId", cfg.ContactHandler.Delete)

		// Address (nested under an owned contact)
		protected.POST("/contacts/:contactId/addresses", cfg.AddressHandler.Create)
		protected.GET("/contacts/:contactId/addresses", cfg.AddressHandler.List)
		protected.GET("/contacts/:contactId/addresses/:addressId", cfg.AddressHandler.Get)
		protected.PUT("/contacts/:contactId/addresses/:addressId", cfg.AddressHandler.Update)
		protected.DELETE("/contacts/:contactId/addresses/:addressId", cfg.AddressHandler.Delete)
	}

	return router
}
