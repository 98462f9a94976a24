package auth

import (
	"log"
	"strings"
	"time"

	"github.com/Vikasthangavel/CTC/app/config"
	"github.com/Vikasthangavel/CTC/app/database"
	"github.com/gofiber/fiber/v2"
)

// LoginAPI handles both halves of the login form. The privileged phone gets
// a second step asking for the rotating daily password; any other phone is
// matched against registered parent contacts.
func LoginAPI(c *fiber.Ctx) error {
	phone := strings.TrimSpace(c.FormValue("phone"))
	password := c.FormValue("password")

	if phone == "" {
		return renderLogin(c, "", "Phone number is required.", false)
	}

	// Admin login: phone must match the configured privileged number
	if phone == config.AppConfig.AdminPhone {
		if password == "" {
			// First step passed, show the password field
			return renderLogin(c, phone, "", true)
		}
		if password != DailyPassword(time.Now()) {
			return renderLogin(c, phone, "Invalid Admin Password", true)
		}

		token, err := GenerateSessionToken(RoleAdmin, "")
		if err != nil {
			log.Printf("Failed to sign admin session: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to start session")
		}
		setSessionCookie(c, token)
		return c.Redirect("/dashboard")
	}

	// Parent login: the phone must be registered on at least one student
	students, err := database.GetStudentsByParentContact(config.GetDB(), phone)
	if err != nil {
		log.Printf("Parent lookup failed: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}
	if len(students) == 0 {
		return renderLogin(c, phone, "Phone number not registered with any student.", false)
	}

	token, err := GenerateSessionToken(RoleParent, phone)
	if err != nil {
		log.Printf("Failed to sign parent session: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to start session")
	}
	setSessionCookie(c, token)
	return c.Redirect("/parent-dashboard")
}

func LogoutAPI(c *fiber.Ctx) error {
	clearSessionCookie(c)
	return c.Redirect("/login")
}

func renderLogin(c *fiber.Ctx, phone, errorMessage string, adminMode bool) error {
	return c.Render("auth/login", fiber.Map{
		"Title":     "Login - CTC Learning Center",
		"Error":     errorMessage,
		"Phone":     phone,
		"AdminMode": adminMode,
	}, "")
}
