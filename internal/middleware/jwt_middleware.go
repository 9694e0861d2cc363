package middleware

import (
	"log"
	"net/url"
	"strings"

	"homefit/internal/models"
	"homefit/internal/services"

	"github.com/gofiber/fiber/v2"
)

// TokenCookie is the cookie holding the session token issued at login.
const TokenCookie = "token"

const userKey = "current_user"

// Authenticate resolves the session token, if any, and stores the user in the
// request context. It never rejects a request.
func Authenticate(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		resolveUser(c, authService)
		return c.Next()
	}
}

// AuthRequired lets only signed-in users through. Anonymous browsers are
// redirected to the login page with the current path as "next"; requests
// that presented a bearer token get a 401 instead.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := CurrentUser(c); !ok {
			resolveUser(c, authService)
		}
		if _, ok := CurrentUser(c); ok {
			return c.Next()
		}
		if strings.HasPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}
		return c.Redirect("/login?next=" + url.QueryEscape(c.OriginalURL()))
	}
}

// CurrentUser returns the authenticated user of the request.
func CurrentUser(c *fiber.Ctx) (models.CurrentUser, bool) {
	user, ok := c.Locals(userKey).(models.CurrentUser)
	return user, ok
}

func resolveUser(c *fiber.Ctx, authService *services.AuthService) {
	token := tokenFrom(c)
	if token == "" {
		return
	}
	user, err := authService.ValidateToken(token)
	if err != nil {
		log.Printf("JWT validation failed: %v", err)
		return
	}
	c.Locals(userKey, user)
}

func tokenFrom(c *fiber.Ctx) string {
	if header := c.Get(fiber.HeaderAuthorization); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}
	return c.Cookies(TokenCookie)
}
