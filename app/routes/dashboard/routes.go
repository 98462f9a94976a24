package dashboard

import (
	"github.com/Vikasthangavel/CTC/app/config"
	"github.com/Vikasthangavel/CTC/app/database"
	"github.com/Vikasthangavel/CTC/app/flash"
	"github.com/Vikasthangavel/CTC/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/dashboard", auth.AdminMiddleware, DashboardPage)
}

func DashboardPage(c *fiber.Ctx) error {
	stats, err := database.GetDashboardStats(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load dashboard stats")
	}

	return c.Render("dashboard/index", fiber.Map{
		"Title":       "Dashboard - CTC Learning Center",
		"CurrentPage": "dashboard",
		"Flash":       flash.Get(c),
		"stats":       stats,
	})
}
