package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inventory-service/internal/config"
	"inventory-service/internal/handlers"
	"inventory-service/internal/repository"
	"inventory-service/pkg/logger"
	"inventory-service/pkg/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "inventory-service/docs" // Import docs for Swagger
)

// @title           Inventory Service API
// @version         1.0
// @description     CRUD API for inventory items backed by SQLite

// @host      localhost:8080
// @BasePath  /api/v1

// @schemes   http
func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	appLogger := logger.New(cfg.Environment)
	defer appLogger.Sync()

	appLogger.Info("Starting Inventory Service",
		zap.String("environment", cfg.Environment),
		zap.String("port", cfg.Port),
		zap.String("sqlite_path", cfg.SQLitePath),
	)

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize the store. One long-lived instance per process; schema
	// init runs here, before any request is served.
	store, err := repository.NewSQLiteInventoryRepository(cfg.SQLitePath, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize inventory store", zap.Error(err))
	}
	defer store.Close()

	// Initialize router
	router := gin.New()

	// CORS middleware (must be first to handle preflight requests)
	router.Use(middleware.CORSMiddleware())

	router.Use(middleware.RecoveryHandler(appLogger))
	router.Use(logger.GinMiddleware(appLogger))
	router.Use(middleware.RequestIDMiddleware(appLogger))
	router.Use(middleware.ErrorHandler(appLogger))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Initialize handlers
	inventoryHandler := handlers.NewInventoryHandler(appLogger, store)

	// API routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)

		v1.GET("/inventory", inventoryHandler.GetInventory)

		items := v1.Group("/inventory/items")
		{
			items.POST("", inventoryHandler.AddItem)
			items.GET("/:id", inventoryHandler.GetItem)
			items.PUT("/:id", inventoryHandler.UpdateItem)
			items.DELETE("/:id", inventoryHandler.DeleteItem)
		}
	}

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		appLogger.Info("Starting inventory service",
			zap.String("port", cfg.Port),
			zap.String("environment", cfg.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	appLogger.Info("Server exited")
}

// healthCheck godoc
// @Summary      Health check endpoint
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "inventory-service",
	})
}
