package server_test

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"regexp"
	"strings"
	"testing"
	"time"

	"homefit/internal/models"
	"homefit/internal/repositories"
	"homefit/internal/server"
	"homefit/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var csrfField = regexp.MustCompile(`name="csrf_token" value="([^"]+)"`)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func setupApp(t *testing.T, csrfEnabled bool) (*fiber.App, *repositories.Store, string) {
	t.Helper()
	store, err := repositories.NewMemDBStore()
	require.NoError(t, err)

	authService := services.NewAuthService(store.Users, "test_jwt_secret", time.Hour)
	user := &models.User{Username: "alice", Email: "alice@example.com", Password: "password123"}
	require.NoError(t, authService.RegisterUser(context.Background(), user))
	token, err := authService.IssueToken(user)
	require.NoError(t, err)

	app := server.New(server.Deps{
		Auth:        authService,
		Beds:        services.NewBedService(store.Beds, nil),
		Workouts:    services.NewWorkoutService(store.Workouts, nil, services.WorkoutPolicy),
		CSRFEnabled: csrfEnabled,
		Quiet:       true,
	})
	return app, store, token
}

func postBed(t *testing.T, app *fiber.App, token string, form url.Values, cookies []*http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/bed/new", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+token)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func bedForm() url.Values {
	return url.Values{
		"BedLength":   {"200"},
		"BedWidth":    {"90"},
		"MatressType": {"foam"},
		"BedSize":     {"single"},
	}
}

func TestCSRF_RejectsPostWithoutToken(t *testing.T) {
	app, store, token := setupApp(t, true)

	resp := postBed(t, app, token, bedForm(), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	beds, err := store.Beds.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, beds)
}

func TestCSRF_AcceptsRenderedToken(t *testing.T) {
	app, store, token := setupApp(t, true)

	req := httptest.NewRequest(http.MethodGet, "/bed/new", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	match := csrfField.FindStringSubmatch(string(body))
	require.Len(t, match, 2, "form carries no csrf_token field")

	form := bedForm()
	form.Set("csrf_token", match[1])
	resp = postBed(t, app, token, form, resp.Cookies())
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Location"), "/bed/"))

	beds, err := store.Beds.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, beds, 1)
}

func TestCSRF_Disabled(t *testing.T) {
	app, _, token := setupApp(t, false)

	resp := postBed(t, app, token, bedForm(), nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	app, _, _ := setupApp(t, true)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
