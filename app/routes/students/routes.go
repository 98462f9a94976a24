package students

import (
	"database/sql"
	"strconv"

	"github.com/Vikasthangavel/CTC/app/config"
	"github.com/Vikasthangavel/CTC/app/database"
	"github.com/Vikasthangavel/CTC/app/dates"
	"github.com/Vikasthangavel/CTC/app/flash"
	"github.com/Vikasthangavel/CTC/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupStudentsRoutes(app *fiber.App) {
	students := app.Group("/students")
	students.Use(auth.AdminMiddleware)

	students.Get("/", StudentsPage)
	students.Post("/add", AddStudentAPI)
	students.Get("/edit/:id", EditStudentPage)
	students.Post("/edit/:id", UpdateStudentAPI)
	students.Post("/delete/:id", DeleteStudentAPI)
	students.Post("/add_activity", AddActivityAPI)
	students.Get("/activity_report/:id", ActivityReportPage)

	app.Post("/activity/delete/:id", auth.AdminMiddleware, DeleteActivityAPI)
}

func StudentsPage(c *fiber.Ctx) error {
	roster, err := database.GetAllStudents(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load students")
	}

	return c.Render("students/index", fiber.Map{
		"Title":       "Students - CTC Learning Center",
		"CurrentPage": "students",
		"Flash":       flash.Get(c),
		"students":    roster,
		"today":       dates.Today(),
	})
}

func EditStudentPage(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}

	student, err := database.GetStudentByID(config.GetDB(), studentID)
	if err == sql.ErrNoRows {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load student")
	}

	return c.Render("students/edit", fiber.Map{
		"Title":       "Edit " + student.Name + " - CTC Learning Center",
		"CurrentPage": "students",
		"student":     student,
	})
}

// ActivityReportPage shows one student's activity log for a month, defaulting
// to the current one
func ActivityReportPage(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}

	student, err := database.GetStudentByID(config.GetDB(), studentID)
	if err == sql.ErrNoRows {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load student")
	}

	month := c.Query("month", dates.CurrentMonth())
	monthLabel, err := dates.MonthLabel(month)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	activities, err := database.GetActivitiesByMonth(config.GetDB(), studentID, month)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load activities")
	}

	return c.Render("students/activity_report", fiber.Map{
		"Title":         "Activity Report - " + student.Name + " - CTC Learning Center",
		"CurrentPage":   "students",
		"Flash":         flash.Get(c),
		"student":       student,
		"activities":    activities,
		"selectedMonth": month,
		"monthLabel":    monthLabel,
	})
}

// monthOfDate extracts YYYY-MM from a stored YYYY-MM-DD value, falling back
// to the current month for malformed historical rows
func monthOfDate(date string) string {
	if len(date) >= 7 {
		if _, err := dates.ParseMonth(date[:7]); err == nil {
			return date[:7]
		}
	}
	return dates.CurrentMonth()
}

func redirectToActivityReport(c *fiber.Ctx, studentID int, month string) error {
	return c.Redirect("/students/activity_report/" + strconv.Itoa(studentID) + "?month=" + month)
}
