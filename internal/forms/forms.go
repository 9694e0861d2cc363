// Package forms declares the HTML forms accepted by the application and
// validates their submissions with go-playground/validator.
package forms

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors under the form input name rather than the Go field name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// notblank rejects whitespace-only input, which "required" lets through.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Errors maps an input name to its error message.
type Errors map[string]string

// Has reports whether the named input failed validation.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Get returns the message for the named input, or "".
func (e Errors) Get(field string) string {
	return e[field]
}

// Validate checks form against its validate tags.
func Validate(form interface{}) Errors {
	errs := Errors{}
	err := validate.Struct(form)
	if err == nil {
		return errs
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["_form"] = err.Error()
		return errs
	}
	for _, e := range validationErrors {
		if errs.Has(e.Field()) {
			continue
		}
		errs[e.Field()] = message(e)
	}
	return errs
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "notblank":
		return "This field is required."
	case "email":
		return "Invalid email address."
	case "min":
		return fmt.Sprintf("Field must be at least %s characters long.", e.Param())
	case "max":
		return fmt.Sprintf("Field cannot be longer than %s characters.", e.Param())
	default:
		return fmt.Sprintf("Field failed on the '%s' tag.", e.Tag())
	}
}

// ValidateOnSubmit binds a POSTed form body into form and validates it.
// It returns false with no errors for any non-POST request, so callers can
// treat "not submitted" and "invalid" the same way when rendering.
func ValidateOnSubmit(c *fiber.Ctx, form interface{}) (bool, Errors, error) {
	if c.Method() != fiber.MethodPost {
		return false, Errors{}, nil
	}
	if err := c.BodyParser(form); err != nil {
		return false, nil, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid form body: %v", err))
	}
	errs := Validate(form)
	return len(errs) == 0, errs, nil
}
