package fees

import (
	"database/sql"

	"github.com/Vikasthangavel/CTC/app/config"
	"github.com/Vikasthangavel/CTC/app/database"
	"github.com/Vikasthangavel/CTC/app/dates"
	"github.com/Vikasthangavel/CTC/app/flash"
	"github.com/Vikasthangavel/CTC/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupFeesRoutes(app *fiber.App) {
	fees := app.Group("/fees")
	fees.Use(auth.AdminMiddleware)

	fees.Get("/", FeesPage)
	fees.Post("/quick_pay", QuickPayAPI)
	fees.Get("/student/:id", StudentFeesPage)
	fees.Post("/student/:id", AddFeeAPI)
	fees.Post("/update/:feeId", UpdateFeeAPI)
}

// FeesPage shows every student's fee state for one month. Students with no
// record for the month display as Unpaid at their configured monthly fee.
func FeesPage(c *fiber.Ctx) error {
	db := config.GetDB()

	selectedMonth := c.Query("month", dates.CurrentMonth())
	monthLabel, err := dates.MonthLabel(selectedMonth)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	roster, err := database.GetAllStudents(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load students")
	}
	monthFees, err := database.GetFeesByMonth(db, selectedMonth)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load fees")
	}

	return c.Render("fees/index", fiber.Map{
		"Title":         "Fees - CTC Learning Center",
		"CurrentPage":   "fees",
		"Flash":         flash.Get(c),
		"rows":          database.BuildMonthlyFeeRows(roster, monthFees),
		"selectedMonth": selectedMonth,
		"monthLabel":    monthLabel,
	})
}

// StudentFeesPage shows one student's full payment history with the manual
// entry form
func StudentFeesPage(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}

	db := config.GetDB()
	student, err := database.GetStudentByID(db, studentID)
	if err == sql.ErrNoRows {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load student")
	}

	history, err := database.GetFeesByStudent(db, studentID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load fee history")
	}

	return c.Render("fees/student", fiber.Map{
		"Title":        "Fees - " + student.Name + " - CTC Learning Center",
		"CurrentPage":  "fees",
		"Flash":        flash.Get(c),
		"student":      student,
		"fees":         history,
		"currentMonth": dates.CurrentMonth(),
	})
}
