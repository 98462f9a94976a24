package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	app.Get("/login", ShowLoginPage)
	app.Post("/login", LoginAPI)
	app.Post("/logout", LogoutAPI)
}

func ShowLoginPage(c *fiber.Ctx) error {
	// Already logged in: send to the matching dashboard
	if claims := CurrentSession(c); claims != nil {
		if claims.Role == RoleAdmin {
			return c.Redirect("/dashboard")
		}
		return c.Redirect("/parent-dashboard")
	}

	return c.Render("auth/login", fiber.Map{
		"Title": "Login - CTC Learning Center",
	}, "")
}

// CurrentSession returns the verified session claims, or nil for anonymous
// callers
func CurrentSession(c *fiber.Ctx) *SessionClaims {
	tokenString := c.Cookies(sessionCookie)
	if tokenString == "" {
		return nil
	}
	claims, err := ValidateSessionToken(tokenString)
	if err != nil {
		return nil
	}
	return claims
}

func setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

func clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
}

// AdminMiddleware guards admin pages; anyone else is sent to the login page
func AdminMiddleware(c *fiber.Ctx) error {
	claims := CurrentSession(c)
	if claims == nil || claims.Role != RoleAdmin {
		return c.Redirect("/login")
	}
	c.Locals("role", RoleAdmin)
	return c.Next()
}

// ParentMiddleware guards parent pages and exposes the session phone, which
// scopes every query made on behalf of the parent
func ParentMiddleware(c *fiber.Ctx) error {
	claims := CurrentSession(c)
	if claims == nil || claims.Role != RoleParent || claims.Phone == "" {
		return c.Redirect("/login")
	}
	c.Locals("role", RoleParent)
	c.Locals("parent_phone", claims.Phone)
	return c.Next()
}

// ParentPhone returns the phone the current parent session is scoped to.
// Only valid behind ParentMiddleware.
func ParentPhone(c *fiber.Ctx) string {
	phone, _ := c.Locals("parent_phone").(string)
	return phone
}
