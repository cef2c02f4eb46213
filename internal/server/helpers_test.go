package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"duet/internal/config"
	"duet/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "server-test-secret-not-for-production",
		JWTTTLMinutes: 30,
		Port:          "0",
		Env:           "test",
	}
}

// setupTestApp builds a fully wired Fiber app over in-memory SQLite.
func setupTestApp(t *testing.T) (*fiber.App, *Server, *gorm.DB) {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Match{}, &models.Message{}))

	srv := NewServerWithDeps(testConfig(), db, nil)
	return srv.App(), srv, db
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// registerAndLogin creates an account through the API and returns its bearer token.
func registerAndLogin(t *testing.T, app *fiber.App, email, name string) string {
	t.Helper()

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/register", map[string]string{
		"email":    email,
		"password": "password123",
		"name":     name,
		"role":     "Guitarist",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/auth/token", map[string]string{
		"email":    email,
		"password": "password123",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body TokenResponse
	decodeBody(t, resp, &body)
	require.NotEmpty(t, body.AccessToken)
	return body.AccessToken
}

func authedRequest(t *testing.T, method, target, token string, body any) *http.Request {
	t.Helper()
	req := jsonRequest(t, method, target, body)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}
