package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"homefit/internal/middleware"
	"homefit/internal/models"
	"homefit/internal/repositories"
	"homefit/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T) (*fiber.App, *services.AuthService) {
	t.Helper()
	store, err := repositories.NewMemDBStore()
	require.NoError(t, err)
	authService := services.NewAuthService(store.Users, "test_jwt_secret", time.Hour)

	app := fiber.New()
	app.Use(middleware.Authenticate(authService))
	app.Get("/public", func(c *fiber.Ctx) error {
		if user, ok := middleware.CurrentUser(c); ok {
			return c.SendString("hello " + user.Username)
		}
		return c.SendString("hello stranger")
	})
	app.Get("/private", middleware.AuthRequired(authService), func(c *fiber.Ctx) error {
		user, _ := middleware.CurrentUser(c)
		return c.SendString(user.ID)
	})
	return app, authService
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return string(b)
}

func TestAuthRequired_RedirectsAnonymousToLogin(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/private?x=1", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login?next=%2Fprivate%3Fx%3D1", resp.Header.Get("Location"))
}

func TestAuthRequired_AcceptsCookieAndBearer(t *testing.T) {
	app, authService := setupApp(t)
	token, err := authService.IssueToken(&models.User{ID: "user-1", Username: "alice"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: middleware.TokenCookie, Value: token})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "user-1", body(t, resp))

	req = httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthRequired_RejectsBadBearer(t *testing.T) {
	app, _ := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthenticate_IsOptional(t *testing.T) {
	app, authService := setupApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/public", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, "hello stranger", body(t, resp))

	token, err := authService.IssueToken(&models.User{ID: "user-1", Username: "alice"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	req.AddCookie(&http.Cookie{Name: middleware.TokenCookie, Value: token})
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "hello alice", body(t, resp))
}
