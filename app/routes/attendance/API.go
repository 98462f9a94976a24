package attendance

import (
	"log"
	"strconv"

	"github.com/Vikasthangavel/CTC/app/config"
	"github.com/Vikasthangavel/CTC/app/database"
	"github.com/Vikasthangavel/CTC/app/dates"
	"github.com/Vikasthangavel/CTC/app/models"
	"github.com/gofiber/fiber/v2"
)

// MarkAttendanceAPI records one student's status for a date. Marking is
// idempotent: re-marking the same pair overwrites the status.
func MarkAttendanceAPI(c *fiber.Ctx) error {
	date := c.FormValue("date")
	if _, err := dates.ParseDay(date); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	studentID, err := strconv.Atoi(c.FormValue("student_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}

	var status models.AttendanceStatus
	switch c.FormValue("status") {
	case string(models.Present):
		status = models.Present
	case string(models.Absent):
		status = models.Absent
	default:
		return fiber.NewError(fiber.StatusBadRequest, "Invalid status. Must be Present or Absent")
	}

	if err := database.MarkAttendance(config.GetDB(), studentID, date, status); err != nil {
		log.Printf("Failed to mark attendance for student %d on %s: %v", studentID, date, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save attendance record")
	}

	return c.Redirect("/attendance?date=" + date)
}
