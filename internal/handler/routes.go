package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hostel-admin-svc/internal/middleware"
	"hostel-admin-svc/internal/models"
	"hostel-admin-svc/internal/service"
	"hostel-admin-svc/pkg/jwt"
	"hostel-admin-svc/pkg/logger"
)

// SetupRoutes sets up all API routes. Role requirements are enforced per
// route group before dispatch.
func SetupRoutes(
	router *gin.Engine,
	tokens *jwt.Manager,
	userService service.UserService,
	roomService service.RoomService,
	assignmentService service.AssignmentService,
	bookService service.BookService,
	placementService service.PlacementService,
	feedbackService service.FeedbackService,
	dashboardService service.DashboardService,
	logger *logger.Logger,
) {
	// Initialize handlers
	authHandler := NewAuthHandler(userService, tokens, logger)
	roomHandler := NewRoomHandler(roomService, assignmentService, logger)
	studentHandler := NewStudentHandler(userService, roomService, logger)
	bookHandler := NewBookHandler(bookService, logger)
	placementHandler := NewPlacementHandler(placementService, logger)
	feedbackHandler := NewFeedbackHandler(feedbackService, logger)
	dashboardHandler := NewDashboardHandler(dashboardService, logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", HealthCheck)

		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.Auth(tokens), middleware.RequireRole(models.RoleAdmin))
		{
			rooms := admin.Group("/rooms")
			{
				rooms.POST("", roomHandler.CreateRoom)
				rooms.GET("", roomHandler.ListRooms)
				rooms.GET("/export", roomHandler.ExportRooms)
				rooms.POST("/unassign", roomHandler.UnassignStudent)
				rooms.GET("/:id", roomHandler.GetRoom)
				rooms.PUT("/:id", roomHandler.UpdateRoom)
				rooms.DELETE("/:id", roomHandler.DeleteRoom)
				rooms.POST("/:id/assign", roomHandler.AssignStudent)
			}

			students := admin.Group("/students")
			{
				students.POST("", studentHandler.CreateStudent)
				students.GET("", studentHandler.ListStudents)
				students.GET("/:id", studentHandler.GetStudent)
				students.PUT("/:id", studentHandler.UpdateStudent)
				students.DELETE("/:id", studentHandler.DeleteStudent)
			}

			books := admin.Group("/books")
			{
				books.POST("", bookHandler.CreateBook)
				books.GET("", bookHandler.ListBooks)
				books.POST("/import", bookHandler.ImportBooks)
				books.PUT("/:id", bookHandler.UpdateBook)
				books.DELETE("/:id", bookHandler.DeleteBook)
			}

			placements := admin.Group("/placements")
			{
				placements.POST("", placementHandler.CreatePlacement)
				placements.GET("", placementHandler.ListPlacements)
				placements.PUT("/:id", placementHandler.UpdatePlacement)
				placements.DELETE("/:id", placementHandler.DeletePlacement)
			}

			admin.GET("/feedback", feedbackHandler.ListFeedback)
		}

		// Student routes
		student := v1.Group("/student")
		student.Use(middleware.Auth(tokens), middleware.RequireRole(models.RoleStudent))
		{
			student.GET("/placements", placementHandler.ListPlacements)
			student.GET("/books", bookHandler.ListBooks)
			student.GET("/room", studentHandler.GetOwnRoom)
			student.POST("/feedback", feedbackHandler.SubmitFeedback)
		}

		// Warden routes
		warden := v1.Group("/warden")
		warden.Use(middleware.Auth(tokens), middleware.RequireRole(models.RoleWarden))
		{
			warden.GET("/dashboard", dashboardHandler.GetDashboard)
			warden.GET("/rooms", roomHandler.ListRooms)
			warden.GET("/feedback", feedbackHandler.ListFeedback)
		}
	}
}

// HealthCheck reports service liveness
func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "Hostel Admin Service",
	})
}
