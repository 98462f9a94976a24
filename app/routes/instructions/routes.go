package instructions

import (
	"github.com/Vikasthangavel/CTC/app/config"
	"github.com/Vikasthangavel/CTC/app/database"
	"github.com/Vikasthangavel/CTC/app/flash"
	"github.com/Vikasthangavel/CTC/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupInstructionsRoutes(app *fiber.App) {
	instructions := app.Group("/instructions")
	instructions.Use(auth.AdminMiddleware)

	instructions.Get("/", InstructionsPage)
	instructions.Post("/add", AddInstructionAPI)
	instructions.Post("/delete/:id", DeleteInstructionAPI)
}

func InstructionsPage(c *fiber.Ctx) error {
	db := config.GetDB()

	recent, err := database.GetRecentInstructions(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load announcements")
	}
	roster, err := database.GetAllStudents(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load students")
	}

	return c.Render("instructions/index", fiber.Map{
		"Title":        "Announcements - CTC Learning Center",
		"CurrentPage":  "instructions",
		"Flash":        flash.Get(c),
		"instructions": recent,
		"students":     roster,
	})
}
