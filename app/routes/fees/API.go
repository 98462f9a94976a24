package fees

import (
	"log"
	"strconv"

	"github.com/Vikasthangavel/CTC/app/config"
	"github.com/Vikasthangavel/CTC/app/database"
	"github.com/Vikasthangavel/CTC/app/dates"
	"github.com/Vikasthangavel/CTC/app/flash"
	"github.com/Vikasthangavel/CTC/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// QuickPayAPI marks a month paid in one click. Updates the existing row for
// that (student, month) pair or inserts one; payment date is today.
func QuickPayAPI(c *fiber.Ctx) error {
	studentID, err := strconv.Atoi(c.FormValue("student_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}
	monthYear := c.FormValue("month_year")
	if _, err := dates.ParseMonth(monthYear); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	amount, err := strconv.ParseFloat(c.FormValue("amount"), 64)
	if err != nil || amount < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Amount must be a non-negative number")
	}

	if err := database.QuickPayFee(config.GetDB(), studentID, monthYear, amount); err != nil {
		log.Printf("Quick pay failed for student %d month %s: %v", studentID, monthYear, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record payment")
	}

	flash.Set(c, "Payment recorded.")
	return c.Redirect("/fees?month=" + monthYear)
}

// AddFeeAPI is the manual entry path. It inserts unconditionally, so it can
// create a second row for a month quick-pay already covered; historical data
// depends on that, so it stays.
func AddFeeAPI(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}
	monthYear := c.FormValue("month_year")
	if _, err := dates.ParseMonth(monthYear); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	amount, err := strconv.ParseFloat(c.FormValue("amount"), 64)
	if err != nil || amount < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Amount must be a non-negative number")
	}
	paymentDate := c.FormValue("payment_date")
	if paymentDate != "" {
		if _, err := dates.ParseDay(paymentDate); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}

	fee := &models.Fee{
		StudentID:   studentID,
		MonthYear:   monthYear,
		Amount:      amount,
		Status:      c.FormValue("status"),
		PaymentDate: paymentDate,
	}
	if err := validate.Struct(fee); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Status must be Paid or Unpaid")
	}

	if err := database.AddFee(config.GetDB(), fee); err != nil {
		log.Printf("Failed to add fee for student %d: %v", studentID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to add fee record")
	}

	flash.Set(c, "Fee record added.")
	return c.Redirect("/fees/student/" + strconv.Itoa(studentID))
}

// UpdateFeeAPI edits status and payment date on an existing record. This is
// the one place a Paid row can go back to Unpaid.
func UpdateFeeAPI(c *fiber.Ctx) error {
	feeID, err := c.ParamsInt("feeId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid fee id")
	}
	studentID, err := strconv.Atoi(c.FormValue("student_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}

	status := c.FormValue("status")
	if status != models.FeePaid && status != models.FeeUnpaid {
		return fiber.NewError(fiber.StatusBadRequest, "Status must be Paid or Unpaid")
	}
	paymentDate := c.FormValue("payment_date")
	if paymentDate != "" {
		if _, err := dates.ParseDay(paymentDate); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}

	if err := database.UpdateFee(config.GetDB(), feeID, status, paymentDate); err != nil {
		log.Printf("Failed to update fee %d: %v", feeID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update fee record")
	}

	flash.Set(c, "Fee record updated.")
	return c.Redirect("/fees/student/" + strconv.Itoa(studentID))
}
