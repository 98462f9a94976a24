package parents

import (
	"database/sql"

	"github.com/Vikasthangavel/CTC/app/config"
	"github.com/Vikasthangavel/CTC/app/database"
	"github.com/Vikasthangavel/CTC/app/dates"
	"github.com/Vikasthangavel/CTC/app/flash"
	"github.com/Vikasthangavel/CTC/app/models"
	"github.com/Vikasthangavel/CTC/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupParentsRoutes(app *fiber.App) {
	app.Get("/parent-dashboard", auth.ParentMiddleware, ParentDashboardPage)

	parent := app.Group("/parent")
	parent.Use(auth.ParentMiddleware)
	parent.Get("/activity_report/:id", ParentActivityReportPage)
	parent.Post("/report", SubmitReportAPI)
}

// childSummary is one child's card on the parent dashboard
type childSummary struct {
	Student    *models.Student
	Stats      *models.AttendanceStat
	Fees       []*models.Fee
	Activities []*models.Activity
}

// ParentDashboardPage shows every child registered under the session phone:
// all-time attendance percentage, the last 5 fee records, the last 2
// activity entries, plus the announcements targeted at this family.
func ParentDashboardPage(c *fiber.Ctx) error {
	db := config.GetDB()
	phone := auth.ParentPhone(c)

	children, err := database.GetStudentsByParentContact(db, phone)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load students")
	}

	summaries := make([]*childSummary, 0, len(children))
	for _, child := range children {
		stats, err := database.GetStudentStats(db, child.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load attendance stats")
		}
		fees, err := database.GetRecentFeesByStudent(db, child.ID, 5)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load fees")
		}
		activities, err := database.GetRecentActivities(db, child.ID, 2)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load activities")
		}
		summaries = append(summaries, &childSummary{
			Student:    child,
			Stats:      stats,
			Fees:       fees,
			Activities: activities,
		})
	}

	recent, err := database.GetRecentInstructions(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load announcements")
	}

	return c.Render("parents/dashboard", fiber.Map{
		"Title":         "Parent Dashboard - CTC Learning Center",
		"CurrentPage":   "parent-dashboard",
		"Flash":         flash.Get(c),
		"children":      summaries,
		"announcements": models.VisibleInstructions(recent, children),
	})
}

// ParentActivityReportPage shows one child's monthly activity log. The
// student must belong to the session phone; anything else bounces back to
// the dashboard with a notice.
func ParentActivityReportPage(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}

	db := config.GetDB()
	student, err := database.GetOwnedStudent(db, studentID, auth.ParentPhone(c))
	if err == sql.ErrNoRows {
		flash.Set(c, "Access Denied.")
		return c.Redirect("/parent-dashboard")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load student")
	}

	month := c.Query("month", dates.CurrentMonth())
	monthLabel, err := dates.MonthLabel(month)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	activities, err := database.GetActivitiesByMonth(db, studentID, month)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load activities")
	}

	return c.Render("parents/activity_report", fiber.Map{
		"Title":         "Activity Report - " + student.Name + " - CTC Learning Center",
		"CurrentPage":   "parent-dashboard",
		"student":       student,
		"activities":    activities,
		"selectedMonth": month,
		"monthLabel":    monthLabel,
	})
}
