package handlers

import (
	"log"

	"homefit/internal/flash"
	"homefit/internal/middleware"
	"homefit/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CSRFContextKey is the c.Locals key under which the csrf middleware leaves its token.
const CSRFContextKey = "csrf"

const layout = "layouts/main"

// View renders pages inside the shared layout and carries flash notices.
type View struct {
	flashes *flash.Store
}

// NewView creates a View that reads and writes notices through flashes.
func NewView(flashes *flash.Store) *View {
	return &View{flashes: flashes}
}

// Flash queues a notice for the next rendered page.
func (v *View) Flash(c *fiber.Ctx, msg string) {
	if err := v.flashes.Add(c, msg); err != nil {
		log.Printf("Error storing flash message: %v", err)
	}
}

// Render executes the named page template with bind plus the values every
// page needs: the signed-in user, pending flash notices and the CSRF token.
func (v *View) Render(c *fiber.Ctx, name string, bind fiber.Map) error {
	if bind == nil {
		bind = fiber.Map{}
	}
	msgs, err := v.flashes.Pop(c)
	if err != nil {
		log.Printf("Error reading flash messages: %v", err)
	}
	bind["Flashes"] = msgs
	addCommon(c, bind)
	return c.Render(name, bind, layout)
}

func addCommon(c *fiber.Ctx, bind fiber.Map) {
	var user *models.CurrentUser
	if u, ok := middleware.CurrentUser(c); ok {
		user = &u
	}
	bind["User"] = user
	token, _ := c.Locals(CSRFContextKey).(string)
	bind["CSRF"] = token
}

// currentUser is the signed-in user; routes using it sit behind AuthRequired.
func currentUser(c *fiber.Ctx) (models.CurrentUser, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return models.CurrentUser{}, fiber.ErrUnauthorized
	}
	return user, nil
}
