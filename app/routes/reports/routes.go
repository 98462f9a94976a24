package reports

import (
	"log"

	"github.com/Vikasthangavel/CTC/app/config"
	"github.com/Vikasthangavel/CTC/app/database"
	"github.com/Vikasthangavel/CTC/app/flash"
	"github.com/Vikasthangavel/CTC/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupReportsRoutes(app *fiber.App) {
	reports := app.Group("/reports")
	reports.Use(auth.AdminMiddleware)

	reports.Get("/", ReportsPage)
	reports.Post("/mark_read/:id", MarkReadAPI)
}

// ReportsPage lists parent-submitted reports, newest first
func ReportsPage(c *fiber.Ctx) error {
	all, err := database.GetAllReports(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load reports")
	}

	return c.Render("reports/index", fiber.Map{
		"Title":       "Parent Reports - CTC Learning Center",
		"CurrentPage": "reports",
		"Flash":       flash.Get(c),
		"reports":     all,
	})
}

func MarkReadAPI(c *fiber.Ctx) error {
	reportID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid report id")
	}

	if err := database.MarkReportRead(config.GetDB(), reportID); err != nil {
		log.Printf("Failed to mark report %d read: %v", reportID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update report")
	}

	return c.Redirect("/reports")
}
