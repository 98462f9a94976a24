package main

import (
	"log"

	"github.com/Vikasthangavel/CTC/app/config"
	"github.com/Vikasthangavel/CTC/app/database"
	"github.com/Vikasthangavel/CTC/app/routes/attendance"
	"github.com/Vikasthangavel/CTC/app/routes/auth"
	"github.com/Vikasthangavel/CTC/app/routes/dashboard"
	"github.com/Vikasthangavel/CTC/app/routes/fees"
	"github.com/Vikasthangavel/CTC/app/routes/instructions"
	"github.com/Vikasthangavel/CTC/app/routes/parents"
	"github.com/Vikasthangavel/CTC/app/routes/reports"
	"github.com/Vikasthangavel/CTC/app/routes/students"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
)

// customErrorHandler renders error pages for web requests
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title":       "Page Not Found - CTC Learning Center",
			"CurrentPage": "",
		})
	case 500:
		log.Printf("Request failed: %v", err)
		return c.Status(500).Render("500", fiber.Map{
			"Title":        "Server Error - CTC Learning Center",
			"CurrentPage":  "",
			"ErrorCode":    "500",
			"ErrorTitle":   "Internal Server Error",
			"ErrorMessage": "We're experiencing technical difficulties. Please try again later.",
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - CTC Learning Center",
			"CurrentPage":  "",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	// Load configuration and connect to the database
	config.Load()
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Initialize template engine
	engine := html.New("./app/templates", ".html")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Static files
	app.Static("/static", "./static")

	// Root: send each role to its own dashboard
	app.Get("/", func(c *fiber.Ctx) error {
		claims := auth.CurrentSession(c)
		switch {
		case claims == nil:
			return c.Redirect("/login")
		case claims.Role == auth.RoleAdmin:
			return c.Redirect("/dashboard")
		default:
			return c.Redirect("/parent-dashboard")
		}
	})

	// Routes
	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	students.SetupStudentsRoutes(app)
	attendance.SetupAttendanceRoutes(app)
	fees.SetupFeesRoutes(app)
	instructions.SetupInstructionsRoutes(app)
	reports.SetupReportsRoutes(app)
	parents.SetupParentsRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	// Start server
	addr := ":" + config.AppConfig.Port
	log.Println("Server starting on", addr)
	log.Fatal(app.Listen(addr))
}
