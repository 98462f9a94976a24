// Package flash carries one-shot notices between a redirect and the next
// page render, using a short-lived cookie.
package flash

import (
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
)

const cookieName = "flash"

// Set stores a notice to be shown on the next rendered page
func Set(c *fiber.Ctx, message string) {
	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    url.QueryEscape(message),
		Expires:  time.Now().Add(time.Minute),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// Get returns the pending notice, if any, and clears it
func Get(c *fiber.Ctx) string {
	raw := c.Cookies(cookieName)
	if raw == "" {
		return ""
	}
	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	message, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return message
}
