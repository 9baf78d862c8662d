// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"stockgate/internal/domain/staging"
	"stockgate/internal/infrastructure/http/v1/handlers"
	"stockgate/internal/infrastructure/http/v1/middleware"
	"stockgate/internal/infrastructure/upstream"
	"stockgate/pkg/logger"
)

// RouterConfig holds the router's collaborators.
type RouterConfig struct {
	// Logger for request logging
	Logger *logger.Logger

	// Upstream is the inventory backend client.
	Upstream *upstream.Client

	// Staging is the pending stock-batch accumulator.
	Staging *staging.Service

	// Redis is only used by readiness checks; nil disables the check.
	Redis redis.UniversalClient
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	base := handlers.NewBaseHandler()

	// Health endpoints (no session required)
	healthHandler := handlers.NewHealthHandler(cfg.Redis)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	// API v1
	api := router.Group("/api/v1")
	{
		authHandler := handlers.NewAuthHandler(base, cfg.Upstream)
		api.POST("/auth/login", authHandler.Login)

		// Everything below requires an upstream-issued session token.
		protected := api.Group("")
		protected.Use(middleware.Session())

		categoryHandler := handlers.NewCategoryHandler(base, cfg.Upstream)
		categories := protected.Group("/categories")
		{
			categories.POST("", categoryHandler.Create)
			categories.GET("", categoryHandler.List)
			categories.GET("/:id", categoryHandler.Get)
			categories.PUT("/:id", categoryHandler.Update)
			categories.PUT("/:id/status", categoryHandler.SetStatus)
		}

		unitHandler := handlers.NewUnitHandler(base, cfg.Upstream)
		units := protected.Group("/units")
		{
			units.POST("", unitHandler.Create)
			units.GET("", unitHandler.List)
			units.GET("/:id", unitHandler.Get)
			units.PUT("/:id", unitHandler.Update)
			units.PUT("/:id/status", unitHandler.SetStatus)
		}

		productHandler := handlers.NewProductHandler(base, cfg.Upstream)
		products := protected.Group("/products")
		{
			products.POST("", productHandler.Create)
			products.POST("/bulk", productHandler.BulkCreate)
			products.GET("", productHandler.List)
			products.GET("/:id", productHandler.Get)
			products.PUT("/:id", productHandler.Update)
			products.PUT("/:id/status", productHandler.SetStatus)
			products.POST("/:id/vendor", productHandler.AddVendor)
			products.PUT("/:id/vendor/:vendorId", productHandler.UpdateVendor)
		}

		stockHandler := handlers.NewStockHandler(base, cfg.Staging, cfg.Upstream)
		stock := protected.Group("/stock")
		{
			stock.GET("/products", stockHandler.Products)
			stock.POST("/products/:id/add", stockHandler.AddProductStock)
			stock.GET("/stores", stockHandler.Stores)
			stock.GET("/batch/:slot", stockHandler.Batch)
			stock.POST("/batch/:slot", stockHandler.Stage)
			stock.DELETE("/batch/:slot/:index", stockHandler.Unstage)
			stock.POST("/batch/:slot/submit", stockHandler.Submit)
		}

		orderHandler := handlers.NewOrderHandler(base, cfg.Upstream)
		ordersGroup := protected.Group("/orders")
		{
			ordersGroup.GET("", orderHandler.List)
			ordersGroup.GET("/:id", orderHandler.Get)
			ordersGroup.PUT("/:id/status", orderHandler.SetStatus)
		}
	}

	return router
}
