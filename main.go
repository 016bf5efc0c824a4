package main

import (
	"log"
	"os"
	"time"

	"hackreg/database"
	"hackreg/handlers"
	"hackreg/handlers/admin"
	"hackreg/middleware"
	"hackreg/models"
	"hackreg/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	// Validate critical environment variables
	validateEnvironment()

	// Initialize database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}
	defer database.Close(db)

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("FATAL: failed to run migrations: %v", err)
	}

	// Outbound mail: queued worker, started once, stopped on shutdown
	mailer := services.NewSMTPMailer(
		os.Getenv("SMTP_HOST"),
		getEnv("SMTP_PORT", "587"),
		os.Getenv("SMTP_USER"),
		os.Getenv("SMTP_PASS"),
		getEnv("MAIL_FROM", "hr@infotactlearning.in"),
	)
	mailer.Start()
	defer mailer.Stop()

	secret := []byte(os.Getenv("JWT_SECRET"))
	tokenTTL := parseTokenTTL()

	// Services, constructed once and threaded through explicitly
	teamService := services.NewTeamService(db, mailer)
	authService := services.NewAuthService(db, secret, tokenTTL)
	problemService := services.NewProblemService(db)

	teamHandler := handlers.NewTeamHandler(teamService)
	authHandler := handlers.NewAuthHandler(authService)
	problemHandler := handlers.NewProblemHandler(problemService)
	adminHandler := admin.NewHandler(authService, teamService)
	guard := middleware.NewGuard(secret)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    1 * 1024 * 1024, // 1MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	// API Routes
	api := app.Group("/api")

	api.Post("/register-team", teamHandler.RegisterTeam)
	api.Post("/login/team", authHandler.LoginTeam)
	api.Post("/problems", problemHandler.CreateProblem)
	api.Get("/problems", problemHandler.ListProblems)

	// Dashboard routes (require authentication)
	api.Get("/me",
		guard.RequireRoles(models.RoleLeader, models.RoleMember, models.RoleAdmin),
		authHandler.Me)
	api.Get("/team",
		guard.RequireRoles(models.RoleLeader, models.RoleMember),
		teamHandler.GetMyTeam)
	api.Get("/team/members",
		guard.RequireRoles(models.RoleLeader),
		teamHandler.GetTeamMembers)

	// Admin routes
	adminGroup := api.Group("/admin")
	adminGroup.Post("/login", adminHandler.Login)

	adminProtected := adminGroup.Group("", guard.RequireRoles(models.RoleAdmin))
	adminProtected.Get("/teams", adminHandler.ListTeams)
	adminProtected.Get("/teams/:id", adminHandler.GetTeam)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	log.Printf("HTTP server starting on port %s", port)
	log.Printf("Environment: %s", getEnv("APP_ENV", "development"))
	log.Printf("Token TTL: %s", tokenTTL)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// validateEnvironment checks for required environment variables
func validateEnvironment() {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("FATAL: JWT_SECRET environment variable must be set. Generate one with: openssl rand -base64 64")
	}
	if len(jwtSecret) < 32 {
		log.Fatal("FATAL: JWT_SECRET must be at least 32 characters long")
	}

	if os.Getenv("SMTP_HOST") == "" {
		log.Println("WARNING: SMTP_HOST not set, credential emails will not be delivered")
	}
}

// parseTokenTTL reads TOKEN_TTL (default 24h).
func parseTokenTTL() time.Duration {
	raw := getEnv("TOKEN_TTL", "24h")
	ttl, err := time.ParseDuration(raw)
	if err != nil || ttl <= 0 {
		log.Printf("WARNING: invalid TOKEN_TTL %q, using 24h", raw)
		return 24 * time.Hour
	}
	return ttl
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Don't expose internal errors in production
	if os.Getenv("APP_ENV") == "production" && code == 500 {
		message = "An error occurred. Please try again later."
	}

	return c.Status(code).JSON(fiber.Map{
		"error": message,
	})
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
