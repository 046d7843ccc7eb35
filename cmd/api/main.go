package main

import (
	"log"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"matrimony-be/internal/config"
	"matrimony-be/internal/database"
	"matrimony-be/internal/handler"
	"matrimony-be/internal/middleware"
	"matrimony-be/internal/repository"
	"matrimony-be/internal/service"
	"matrimony-be/internal/service/auth"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	redis, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redis.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (photo upload will not work)", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redis, minioClient, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health" || c.Path() == "/metrics"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))
	app.Use(middleware.RequestInfo())

	prometheus := fiberprometheus.New("matrimony-be")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	setupRoutes(app, handlers, services.Auth)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService auth.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	authRoutes := v1.Group("/auth")
	authRoutes.Post("/register", h.Auth.Register)
	authRoutes.Post("/login", h.Auth.Login)
	authRoutes.Post("/refresh", h.Auth.RefreshToken)
	authRoutes.Get("/verify-email", h.Auth.VerifyEmail)
	authRoutes.Post("/forgot-password", h.Auth.ForgotPassword)
	authRoutes.Post("/reset-password", h.Auth.ResetPassword)

	protected := v1.Group("", middleware.AuthRequired(authService))

	protected.Get("/me", h.Auth.Me)

	profiles := protected.Group("/profiles")
	profiles.Post("/", h.Profile.Create)
	profiles.Get("/", h.Profile.Browse)
	profiles.Get("/me", h.Profile.GetOwn)
	profiles.Put("/me", h.Profile.Update)
	profiles.Get("/:profileId", h.Profile.Get)
	profiles.Post("/:profileId/save", h.Saved.Save)
	profiles.Delete("/:profileId/save", h.Saved.Unsave)

	protected.Get("/saved-profiles", h.Saved.List)

	photos := protected.Group("/photos")
	photos.Post("/", h.Photo.Upload)
	photos.Get("/", h.Photo.List)
	photos.Delete("/:photoId", h.Photo.Delete)
	photos.Patch("/:photoId/main", h.Photo.SetMain)

	proposals := protected.Group("/proposals")
	proposals.Post("/", h.Proposal.Create)
	proposals.Get("/", h.Proposal.List)
	proposals.Get("/:proposalId", h.Proposal.Get)
	proposals.Patch("/:proposalId/accept", h.Proposal.Accept)
	proposals.Patch("/:proposalId/reject", h.Proposal.Reject)
	proposals.Post("/:proposalId/withdraw", h.Proposal.Withdraw)

	messages := protected.Group("/messages")
	messages.Post("/", h.Message.Send)
	messages.Get("/conversations", h.Message.ListConversations)
	messages.Get("/with/:userId", h.Message.ListWith)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/unread-count", h.Notification.UnreadCount)
	notifications.Patch("/:notificationId/read", h.Notification.MarkAsRead)
	notifications.Post("/mark-all-read", h.Notification.MarkAllAsRead)

	admin := protected.Group("/admin", middleware.RequireAdmin())
	admin.Get("/profiles", h.Admin.ListProfiles)
	admin.Put("/profiles/:profileId/approve", h.Admin.ApproveProfile)
	admin.Put("/profiles/:profileId/refuse", h.Admin.RefuseProfile)
	admin.Post("/photos/:photoId/approve", h.Admin.ApprovePhoto)
	admin.Get("/users", h.Admin.ListUsers)
	admin.Post("/users/:userId/activate", h.Admin.ActivateUser)
	admin.Post("/users/:userId/deactivate", h.Admin.DeactivateUser)
}
