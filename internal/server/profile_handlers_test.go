package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMyProfile(t *testing.T) {
	app, _, _ := setupTestApp(t)

	token := registerAndLogin(t, app, "ana@example.com", "Ana")

	resp, err := app.Test(authedRequest(t, http.MethodGet, "/api/profiles/me", token, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "ana@example.com", body["email"])
	assert.Equal(t, "Ana", body["name"])
}

func TestUpdateMyProfile(t *testing.T) {
	app, _, _ := setupTestApp(t)

	token := registerAndLogin(t, app, "ana@example.com", "Ana")

	resp, err := app.Test(authedRequest(t, http.MethodPut, "/api/profiles/me", token, map[string]string{
		"role":      "Producer",
		"image_url": "https://cdn.example.com/ana.png",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "Producer", body["role"])
	assert.Equal(t, "https://cdn.example.com/ana.png", body["image_url"])
	// Untouched fields survive the partial update
	assert.Equal(t, "Ana", body["name"])

	// The change is visible on the next read
	resp, err = app.Test(authedRequest(t, http.MethodGet, "/api/profiles/me", token, nil))
	require.NoError(t, err)
	decodeBody(t, resp, &body)
	assert.Equal(t, "Producer", body["role"])
}

func TestUpdateMyProfile_InvalidName(t *testing.T) {
	app, _, _ := setupTestApp(t)

	token := registerAndLogin(t, app, "ana@example.com", "Ana")

	resp, err := app.Test(authedRequest(t, http.MethodPut, "/api/profiles/me", token, map[string]string{
		"name": "   ",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestHealthEndpoints(t *testing.T) {
	app, _, _ := setupTestApp(t)

	for _, path := range []string{"/api/", "/api/healthz", "/api/readyz"} {
		resp, err := app.Test(jsonRequest(t, http.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		_ = resp.Body.Close()
	}
}
