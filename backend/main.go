package main

import (
	"log"

	"github.com/dsgnbruno/member-area-v2/backend/catalog"
	"github.com/dsgnbruno/member-area-v2/backend/config"
	"github.com/dsgnbruno/member-area-v2/backend/middleware"
	"github.com/dsgnbruno/member-area-v2/backend/nocodb"
	"github.com/dsgnbruno/member-area-v2/backend/routes"
	"github.com/dsgnbruno/member-area-v2/backend/session"
	"github.com/dsgnbruno/member-area-v2/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Remote record service
	client := nocodb.NewClient(cfg.NocoHost, cfg.NocoBaseID, cfg.NocoToken)
	usersTable := client.Table(cfg.UsersTable)
	coursesTable := client.Table(cfg.CoursesTable)
	notificationsTable := client.Table(cfg.NotificationsTable)

	// Local state
	sessions := session.Open(cfg.SessionFile)
	sessions.Subscribe(func() {
		logger.Println("session state changed")
	})
	gate := session.NewGate(sessions, usersTable, cfg.EmailFieldID, cfg.PasswordFieldID, cfg.UserTypeFieldID)
	store := catalog.NewStore(catalog.Seed())

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, routes.Deps{
		Catalog:       store,
		Sessions:      sessions,
		Gate:          gate,
		Courses:       coursesTable,
		Notifications: notificationsTable,
	}, cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
