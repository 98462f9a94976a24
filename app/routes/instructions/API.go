package instructions

import (
	"log"
	"strconv"
	"strings"

	"github.com/Vikasthangavel/CTC/app/config"
	"github.com/Vikasthangavel/CTC/app/database"
	"github.com/Vikasthangavel/CTC/app/flash"
	"github.com/Vikasthangavel/CTC/app/models"
	"github.com/gofiber/fiber/v2"
)

func AddInstructionAPI(c *fiber.Ctx) error {
	message := strings.TrimSpace(c.FormValue("message"))
	if message == "" {
		flash.Set(c, "Announcement message is required.")
		return c.Redirect("/instructions")
	}

	targetType := c.FormValue("target_type", models.TargetAll)
	targetValue := strings.TrimSpace(c.FormValue("target_value"))
	switch targetType {
	case models.TargetAll:
		targetValue = ""
	case models.TargetGrade, models.TargetStudent:
		if _, err := strconv.Atoi(targetValue); err != nil {
			flash.Set(c, "Target must be a grade number or student id.")
			return c.Redirect("/instructions")
		}
	default:
		return fiber.NewError(fiber.StatusBadRequest, "Invalid target type")
	}

	instruction := &models.Instruction{
		Message:     message,
		TargetType:  targetType,
		TargetValue: targetValue,
	}
	if err := database.CreateInstruction(config.GetDB(), instruction); err != nil {
		log.Printf("Failed to create instruction: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to post announcement")
	}

	flash.Set(c, "Announcement posted.")
	return c.Redirect("/instructions")
}

func DeleteInstructionAPI(c *fiber.Ctx) error {
	instructionID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid announcement id")
	}

	if err := database.DeleteInstruction(config.GetDB(), instructionID); err != nil {
		log.Printf("Failed to delete instruction %d: %v", instructionID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete announcement")
	}

	flash.Set(c, "Announcement deleted.")
	return c.Redirect("/instructions")
}
