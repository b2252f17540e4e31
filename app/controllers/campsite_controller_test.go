package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleCampsiteSearch_UnknownProvince(t *testing.T) {
	app := fiber.New()
	app.Get("/api/campsites", HandleCampsiteSearch)

	req := httptest.NewRequest(http.MethodGet, "/api/campsites?province=atlantis", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var payload struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.False(t, payload.Success)
	assert.Equal(t, "bad_request", payload.Error)
}

func TestHandleCampsiteSearch_UnknownType(t *testing.T) {
	app := fiber.New()
	app.Get("/api/campsites", HandleCampsiteSearch)

	req := httptest.NewRequest(http.MethodGet, "/api/campsites?type=treehouse", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
