package routes

import (
	"github.com/dsgnbruno/member-area-v2/backend/catalog"
	"github.com/dsgnbruno/member-area-v2/backend/config"
	"github.com/dsgnbruno/member-area-v2/backend/controllers"
	"github.com/dsgnbruno/member-area-v2/backend/middleware"
	"github.com/dsgnbruno/member-area-v2/backend/nocodb"
	"github.com/dsgnbruno/member-area-v2/backend/session"

	"github.com/gofiber/fiber/v2"
)

// Deps carries everything the route table wires together.
type Deps struct {
	Catalog       *catalog.Store
	Sessions      *session.Store
	Gate          *session.Gate
	Courses       *nocodb.Table
	Notifications *nocodb.Table
}

func SetupRoutes(app *fiber.App, deps Deps, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(deps.Gate, cfg)
	app.Post("/api/auth/login", authController.Login)
	app.Post("/api/auth/logout", authController.Logout)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware(cfg)

	app.Get("/api/auth/me", authMiddleware, authController.Me)

	// Courses routes
	coursesController := controllers.NewCoursesController(deps.Catalog)
	courses := app.Group("/api/courses", authMiddleware)
	courses.Get("/", coursesController.GetCourses)
	courses.Get("/bookmarked", coursesController.GetBookmarked)
	courses.Get("/:id", coursesController.GetCourseDetails)
	courses.Post("/:id/bookmark", coursesController.ToggleBookmark)
	courses.Get("/:id/classroom", coursesController.GetClassroom)

	// Notifications: active coupons for members, full CRUD for admins
	notificationsController := controllers.NewNotificationsController(deps.Notifications)
	app.Get("/api/notifications", authMiddleware, notificationsController.GetActive)

	adminNotifications := app.Group("/api/admin/notifications", authMiddleware, adminMiddleware)
	adminNotifications.Get("/", notificationsController.ListNotifications)
	adminNotifications.Post("/", notificationsController.CreateNotification)
	adminNotifications.Patch("/:id", notificationsController.UpdateNotification)
	adminNotifications.Delete("/:id", notificationsController.DeleteNotification)

	// Admin routes for the remote course catalog
	adminCoursesController := controllers.NewAdminCoursesController(deps.Courses)
	adminCourses := app.Group("/api/admin/courses", authMiddleware, adminMiddleware)
	adminCourses.Get("/", adminCoursesController.ListCourses)
	adminCourses.Post("/", adminCoursesController.CreateCourse)
	adminCourses.Patch("/:id", adminCoursesController.UpdateCourse)
	adminCourses.Delete("/:id", adminCoursesController.DeleteCourse)
	app.Get("/api/admin/status", authMiddleware, adminMiddleware, adminCoursesController.Status)

	// Settings routes
	settingsController := controllers.NewSettingsController(deps.Sessions)
	app.Get("/api/settings/theme", settingsController.GetTheme)
	app.Put("/api/settings/theme", settingsController.SetTheme)
}
