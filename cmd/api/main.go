package main

import (
	"fmt"
	"net/http"
	"os"

	"monevo/internal/chat"
	"monevo/internal/config"
	"monevo/internal/database"
	"monevo/internal/handlers"
	"monevo/internal/logger"
	"monevo/internal/middleware"
	"monevo/internal/services"
	"monevo/internal/store"
	"monevo/internal/validator"

	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize the ledger store and services
	ledger := store.NewGormLedger(dbManager.DB())
	facade := services.NewFacade(ledger)
	processor := chat.NewProcessor(facade, nil)

	// Initialize handlers
	budgetHandler := handlers.NewBudgetHandler(facade)
	movementHandler := handlers.NewMovementHandler(facade)
	chatHandler := handlers.NewChatHandler(processor)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group; every route is scoped to the caller in X-User-ID
	v1 := router.Group("/api/v1")
	v1.Use(middleware.UserIdentity())

	// Budget routes
	budgets := v1.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetSummary)
	budgets.PUT("/:category", budgetHandler.UpdateBudget)
	budgets.DELETE("/:category", budgetHandler.DeleteBudget)
	budgets.GET("/:category/exists", budgetHandler.BudgetExists)
	budgets.GET("/:category/movements", movementHandler.GetHistory)

	// Movement routes
	movements := v1.Group("/movements")
	movements.POST("", movementHandler.RecordMovement)

	// Conversational route
	v1.POST("/chat", chatHandler.ProcessMessage)

	log.Infof("Starting Monevo backend server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
