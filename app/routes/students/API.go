package students

import (
	"database/sql"
	"log"
	"strconv"
	"strings"

	"github.com/Vikasthangavel/CTC/app/config"
	"github.com/Vikasthangavel/CTC/app/database"
	"github.com/Vikasthangavel/CTC/app/dates"
	"github.com/Vikasthangavel/CTC/app/flash"
	"github.com/Vikasthangavel/CTC/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func AddStudentAPI(c *fiber.Ctx) error {
	student, err := studentFromForm(c)
	if err != nil {
		flash.Set(c, err.Error())
		return c.Redirect("/students")
	}

	if err := database.CreateStudent(config.GetDB(), student); err != nil {
		log.Printf("Failed to create student: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to add student")
	}

	flash.Set(c, "Student added successfully!")
	return c.Redirect("/students")
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}

	student, err := studentFromForm(c)
	if err != nil {
		flash.Set(c, err.Error())
		return c.Redirect("/students/edit/" + strconv.Itoa(studentID))
	}
	student.ID = studentID

	if err := database.UpdateStudent(config.GetDB(), student); err != nil {
		log.Printf("Failed to update student %d: %v", studentID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update student")
	}

	flash.Set(c, "Student updated successfully!")
	return c.Redirect("/students")
}

func DeleteStudentAPI(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}

	if err := database.DeleteStudent(config.GetDB(), studentID); err != nil {
		log.Printf("Failed to delete student %d: %v", studentID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete student")
	}

	flash.Set(c, "Student deleted successfully!")
	return c.Redirect("/students")
}

func AddActivityAPI(c *fiber.Ctx) error {
	studentID, err := strconv.Atoi(c.FormValue("student_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}

	activityDate := c.FormValue("activity_date")
	if activityDate == "" {
		activityDate = dates.Today()
	} else if _, err := dates.ParseDay(activityDate); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	activity := &models.Activity{
		StudentID:    studentID,
		ActivityDate: activityDate,
		Content:      strings.TrimSpace(c.FormValue("content")),
	}
	if err := validate.Struct(activity); err != nil {
		flash.Set(c, "Activity content is required.")
		return c.Redirect("/students")
	}

	if err := database.CreateActivity(config.GetDB(), activity); err != nil {
		log.Printf("Failed to log activity for student %d: %v", studentID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to log activity")
	}

	flash.Set(c, "Activity logged successfully.")
	return c.Redirect("/students")
}

// DeleteActivityAPI removes an entry and returns to the report for the month
// it belonged to
func DeleteActivityAPI(c *fiber.Ctx) error {
	activityID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid activity id")
	}

	activity, err := database.GetActivityByID(config.GetDB(), activityID)
	if err == sql.ErrNoRows {
		return c.Redirect("/students")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load activity")
	}

	if err := database.DeleteActivity(config.GetDB(), activityID); err != nil {
		log.Printf("Failed to delete activity %d: %v", activityID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete activity")
	}

	flash.Set(c, "Activity deleted.")
	return redirectToActivityReport(c, activity.StudentID, monthOfDate(activity.ActivityDate))
}

// studentFromForm parses and validates the add/edit student form
func studentFromForm(c *fiber.Ctx) (*models.Student, error) {
	grade, err := strconv.Atoi(c.FormValue("grade"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Grade must be a number")
	}
	monthlyFee := 0.0
	if v := c.FormValue("monthly_fee"); v != "" {
		monthlyFee, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Monthly fee must be a number")
		}
	}

	student := &models.Student{
		Name:          strings.TrimSpace(c.FormValue("name")),
		Grade:         grade,
		ParentName:    strings.TrimSpace(c.FormValue("parent_name")),
		ParentContact: strings.TrimSpace(c.FormValue("parent_contact")),
		MonthlyFee:    monthlyFee,
	}
	if dob := c.FormValue("dob"); dob != "" {
		student.DOB = &dob
	}
	if bloodGroup := c.FormValue("blood_group"); bloodGroup != "" {
		student.BloodGroup = &bloodGroup
	}

	if err := validate.Struct(student); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Name, grade, parent name and parent contact are required")
	}
	return student, nil
}
