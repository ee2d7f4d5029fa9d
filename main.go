package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"mehendi-studio-server/config"
	"mehendi-studio-server/database"
	"mehendi-studio-server/jobs"
	"mehendi-studio-server/middleware"
	"mehendi-studio-server/routes"
	ws "mehendi-studio-server/websocket"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load configuration
	config.Load()

	// Initialize database
	if err := database.Initialize(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	// Ensure the operator account exists
	if err := seedAdminUser(); err != nil {
		log.Fatal("Failed to seed admin user:", err)
	}

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Disable automatic redirects for trailing slashes
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	// Security headers (must be first)
	router.Use(middleware.SecurityHeadersMiddleware())

	// Input validation
	router.Use(middleware.InputValidationMiddleware())

	// Rate limiting
	router.Use(middleware.RateLimitMiddleware())
	middleware.StartRateLimiterCleanup(10 * time.Minute)

	// CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	// Audit logging
	router.Use(middleware.AuditLogMiddleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Mehendi Studio Server is running",
			"time":    time.Now().UTC(),
		})
	})

	// Admin dashboard event feed
	eventHub := ws.NewHub()
	go eventHub.Run()
	routes.SetEventHub(eventHub)

	// API routes
	api := router.Group("/api/v1")
	{
		// Public catalog
		api.GET("/designs", routes.GetDesigns)
		api.GET("/service-types", routes.GetServiceTypes)

		// Public booking and inquiry submission
		api.POST("/bookings", routes.SubmitBooking)
		api.POST("/inquiries", routes.SubmitInquiry)

		// Admin authentication routes (no authentication required) - with strict rate limiting
		adminAuth := api.Group("/admin/auth")
		adminAuth.Use(middleware.AuthRateLimitMiddleware())
		adminAuth.POST("/login", routes.AdminLogin)
		adminAuth.POST("/refresh", routes.AdminRefreshToken)

		// Admin event feed (token validated from query parameter)
		api.GET("/admin/ws", routes.AdminFeed(eventHub))

		// Admin routes (protected with admin authentication)
		adminRoutes := api.Group("/admin")
		adminRoutes.Use(routes.AdminAuthMiddleware())
		{
			// Admin current user and logout
			adminRoutes.GET("/auth/me", routes.GetCurrentAdmin)
			adminRoutes.POST("/auth/logout", routes.AdminLogout)

			// Admin dashboard
			adminRoutes.GET("/dashboard/stats", routes.GetDashboardStats)

			// Admin design management
			adminRoutes.POST("/designs", routes.CreateDesign)
			adminRoutes.PUT("/designs/:id", routes.UpdateDesign)
			adminRoutes.DELETE("/designs/:id", routes.DeleteDesign)

			// Admin booking management
			adminRoutes.GET("/bookings", routes.GetAllBookings)
			adminRoutes.PATCH("/bookings/:id/complete", routes.CompleteBooking)
			adminRoutes.DELETE("/bookings/:id", routes.DeleteBooking)

			// Admin inquiry management
			adminRoutes.GET("/inquiries", routes.GetAllInquiries)
			adminRoutes.PATCH("/inquiries/:id/read", routes.MarkInquiryRead)
			adminRoutes.DELETE("/inquiries/:id", routes.DeleteInquiry)
		}
	}

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start background jobs
	tokenCleanupJob := jobs.NewTokenCleanupJob()
	tokenCleanupJob.Start()
	defer tokenCleanupJob.Stop()

	log.Printf("Server starting on port %s", port)
	if err := router.Run("0.0.0.0:" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
