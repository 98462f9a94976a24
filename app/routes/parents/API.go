package parents

import (
	"database/sql"
	"log"
	"strconv"
	"strings"

	"github.com/Vikasthangavel/CTC/app/config"
	"github.com/Vikasthangavel/CTC/app/database"
	"github.com/Vikasthangavel/CTC/app/flash"
	"github.com/Vikasthangavel/CTC/app/models"
	"github.com/Vikasthangavel/CTC/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// SubmitReportAPI records a parent's message about one of their children.
// The target student is taken from the form, so ownership is checked against
// the session phone before anything is written.
func SubmitReportAPI(c *fiber.Ctx) error {
	studentID, err := strconv.Atoi(c.FormValue("student_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}

	db := config.GetDB()
	if _, err := database.GetOwnedStudent(db, studentID, auth.ParentPhone(c)); err != nil {
		if err == sql.ErrNoRows {
			flash.Set(c, "Access Denied.")
			return c.Redirect("/parent-dashboard")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to verify student")
	}

	message := strings.TrimSpace(c.FormValue("message"))
	if message == "" {
		flash.Set(c, "Report message is required.")
		return c.Redirect("/parent-dashboard")
	}

	report := &models.ParentReport{StudentID: studentID, Message: message}
	if err := database.CreateParentReport(db, report); err != nil {
		log.Printf("Failed to save parent report for student %d: %v", studentID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to submit report")
	}

	flash.Set(c, "Report submitted. Thank you!")
	return c.Redirect("/parent-dashboard")
}
