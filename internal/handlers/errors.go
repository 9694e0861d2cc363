package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler renders the error page. Any error that is not a *fiber.Error,
// including a missing record, is reported as a 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Something went wrong on our side."
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}
	log.Printf("Error handling %s %s: %v", c.Method(), c.OriginalURL(), err)

	bind := fiber.Map{"Title": "Error", "Status": code, "Message": message}
	addCommon(c, bind)
	if renderErr := c.Status(code).Render("error", bind, layout); renderErr != nil {
		log.Printf("Error rendering error page: %v", renderErr)
		return c.Status(code).SendString(message)
	}
	return nil
}
