package handlers

import (
	"errors"
	"log"
	"strings"

	"homefit/internal/forms"
	"homefit/internal/middleware"
	"homefit/internal/models"
	"homefit/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles sign-up, sign-in and sign-out pages.
type AuthHandler struct {
	authService *services.AuthService
	view        *View
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, view *View) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		view:        view,
	}
}

// RegisterRoutes registers the public account routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleIndex)
	router.Get("/register", h.HandleRegister)
	router.Post("/register", h.HandleRegister)
	router.Get("/login", h.HandleLogin)
	router.Post("/login", h.HandleLogin)
	router.Get("/logout", h.HandleLogout)
}

func (h *AuthHandler) HandleIndex(c *fiber.Ctx) error {
	return h.view.Render(c, "index", nil)
}

// HandleRegister creates an account and signs the new user in.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var form forms.RegisterForm
	ok, errs, err := forms.ValidateOnSubmit(c, &form)
	if err != nil {
		return err
	}
	if ok {
		user := &models.User{Username: form.Username, Email: form.Email, Password: form.Password}
		err := h.authService.RegisterUser(c.UserContext(), user)
		switch {
		case errors.Is(err, services.ErrUsernameTaken):
			errs["username"] = "That username is already taken."
		case errors.Is(err, services.ErrEmailTaken):
			errs["email"] = "That email is already registered."
		case err != nil:
			return err
		default:
			if err := h.signIn(c, user); err != nil {
				return err
			}
			h.view.Flash(c, "Welcome, "+user.Username+"!")
			return c.Redirect("/")
		}
	}
	form.Password = ""
	return h.view.Render(c, "register", fiber.Map{
		"Title":  "Register",
		"Form":   form,
		"Errors": errs,
	})
}

// HandleLogin signs a user in and sends them back to where they were going.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	next := safeNext(c.Query("next"))
	var form forms.LoginForm
	ok, errs, err := forms.ValidateOnSubmit(c, &form)
	if err != nil {
		return err
	}
	if ok {
		token, err := h.authService.LoginUser(c.UserContext(), form.Username, form.Password)
		if errors.Is(err, services.ErrInvalidCredentials) {
			log.Printf("Failed login for user %s", form.Username)
			h.view.Flash(c, "Invalid username or password.")
		} else if err != nil {
			return err
		} else {
			setTokenCookie(c, token)
			return c.Redirect(next)
		}
	}
	form.Password = ""
	return h.view.Render(c, "login", fiber.Map{
		"Title":  "Log in",
		"Form":   form,
		"Errors": errs,
		"Next":   c.Query("next"),
	})
}

func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	c.ClearCookie(middleware.TokenCookie)
	h.view.Flash(c, "You have been logged out.")
	return c.Redirect("/")
}

func (h *AuthHandler) signIn(c *fiber.Ctx, user *models.User) error {
	token, err := h.authService.IssueToken(user)
	if err != nil {
		return err
	}
	setTokenCookie(c, token)
	return nil
}

func setTokenCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// safeNext only allows redirects to local paths.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, "\\") {
		return "/"
	}
	return next
}
