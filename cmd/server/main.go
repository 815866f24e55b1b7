package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"hostel-admin-svc/docs"
	"hostel-admin-svc/internal/config"
	"hostel-admin-svc/internal/database"
	"hostel-admin-svc/internal/handler"
	"hostel-admin-svc/internal/mailer"
	"hostel-admin-svc/internal/middleware"
	"hostel-admin-svc/internal/repository"
	"hostel-admin-svc/internal/scheduler"
	"hostel-admin-svc/internal/service"
	"hostel-admin-svc/pkg/jwt"
	"hostel-admin-svc/pkg/logger"
)

// @title Hostel Admin Service API
// @version 1.0
// @description RESTful API for role-based hostel administration
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Swagger documentation
	docs.SwaggerInfo.Title = "Hostel Admin Service API"
	docs.SwaggerInfo.Description = "RESTful API for role-based hostel administration"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.Server.Port)
	docs.SwaggerInfo.BasePath = ""
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Initialize logger
	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	appLogger.Info("Starting Hostel Admin Service...")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		appLogger.WithField("error", err).Fatal("Failed to connect to database")
	}
	appLogger.Info("Database connected successfully")

	// Run auto migration
	if err := db.AutoMigrate(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to run database migrations")
	}
	appLogger.Info("Database migrations completed successfully")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.DB)
	roomRepo := repository.NewRoomRepository(db.DB)
	assignmentRepo := repository.NewAssignmentRepository(db.DB)
	bookRepo := repository.NewBookRepository(db.DB)
	placementRepo := repository.NewPlacementRepository(db.DB)
	feedbackRepo := repository.NewFeedbackRepository(db.DB)
	auditLogRepo := repository.NewAuditLogRepository(db.DB)
	dashboardRepo := repository.NewDashboardRepository(db.DB)

	// Initialize mail gateway: Brevo API first, SMTP as fallback
	mailGateway := mailer.NewGateway(appLogger,
		mailer.NewBrevoTransport(&cfg.Brevo),
		mailer.NewSMTPTransport(&cfg.SMTP, cfg.Brevo.FromEmail, cfg.Brevo.FromName),
	)

	// Initialize services
	assignmentService := service.NewAssignmentService(assignmentRepo, roomRepo, userRepo, appLogger)
	roomService := service.NewRoomService(roomRepo, appLogger)
	userService := service.NewUserService(userRepo, assignmentService, mailGateway, appLogger)
	bookService := service.NewBookService(bookRepo, appLogger)
	placementService := service.NewPlacementService(placementRepo, userRepo, mailGateway, appLogger)
	feedbackService := service.NewFeedbackService(feedbackRepo, appLogger)
	dashboardService := service.NewDashboardService(dashboardRepo, appLogger)

	// Initialize session tokens
	tokens := jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour)

	// Initialize Gin router
	router := gin.New()

	// Add middleware
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.LoggerMiddleware(appLogger))
	router.Use(middleware.ErrorHandler())
	router.NoRoute(middleware.NoRouteHandler())
	router.NoMethod(middleware.NoMethodHandler())

	// Setup routes
	handler.SetupRoutes(router, tokens, userService, roomService, assignmentService, bookService, placementService, feedbackService, dashboardService, appLogger)

	// Start occupancy auditor
	auditor := scheduler.NewOccupancyAuditor(assignmentRepo, auditLogRepo, appLogger, cfg.Scheduler.OccupancyAuditCronExpression)
	if err := auditor.Start(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to start occupancy auditor")
	}

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		appLogger.WithField("port", cfg.Server.Port).Info("Server starting...")
		appLogger.WithField("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)).Info("Swagger documentation available")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithField("error", err).Fatal("Failed to start server")
		}
	}()

	appLogger.WithField("port", cfg.Server.Port).Info("Server started successfully")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Stop the auditor before draining requests
	auditor.Stop()

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithField("error", err).Fatal("Server forced to shutdown")
	}

	// Close database connection
	if err := db.Close(); err != nil {
		appLogger.WithField("error", err).Error("Failed to close database connection")
	}

	appLogger.Info("Server exited successfully")
}
