package attendance

import (
	"github.com/Vikasthangavel/CTC/app/config"
	"github.com/Vikasthangavel/CTC/app/database"
	"github.com/Vikasthangavel/CTC/app/dates"
	"github.com/Vikasthangavel/CTC/app/flash"
	"github.com/Vikasthangavel/CTC/app/models"
	"github.com/Vikasthangavel/CTC/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupAttendanceRoutes(app *fiber.App) {
	attendance := app.Group("/attendance")
	attendance.Use(auth.AdminMiddleware)

	attendance.Get("/", AttendancePage)
	attendance.Post("/mark", MarkAttendanceAPI)
	attendance.Get("/history", AttendanceHistoryPage)
}

// AttendancePage shows the marking grid for a chosen date along with the
// monthly percentage summary
func AttendancePage(c *fiber.Ctx) error {
	db := config.GetDB()

	roster, err := database.GetAllStudents(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load students")
	}

	selectedDate := c.Query("date")
	marks := map[int]models.AttendanceStatus{}
	if selectedDate != "" {
		if _, err := dates.ParseDay(selectedDate); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		marks, err = database.GetAttendanceByDate(db, selectedDate)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load attendance")
		}
	}

	selectedMonth := c.Query("month", dates.CurrentMonth())
	monthLabel, err := dates.MonthLabel(selectedMonth)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	stats, err := database.GetMonthlyStats(db, selectedMonth)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load monthly stats")
	}

	return c.Render("attendance/index", fiber.Map{
		"Title":         "Attendance - CTC Learning Center",
		"CurrentPage":   "attendance",
		"Flash":         flash.Get(c),
		"students":      roster,
		"date":          selectedDate,
		"attendance":    marks,
		"stats":         stats,
		"selectedMonth": selectedMonth,
		"monthLabel":    monthLabel,
	})
}

func AttendanceHistoryPage(c *fiber.Ctx) error {
	history, err := database.GetAttendanceHistory(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load attendance history")
	}

	return c.Render("attendance/history", fiber.Map{
		"Title":       "Attendance History - CTC Learning Center",
		"CurrentPage": "attendance",
		"history":     history,
	})
}
