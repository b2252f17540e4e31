package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVitalsApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/vitals", HandleVitalsBeacon)
	return app
}

func TestHandleVitalsBeacon_RatesSample(t *testing.T) {
	app := newVitalsApp()

	req := httptest.NewRequest(http.MethodPost, "/api/vitals",
		strings.NewReader(`{"name":"LCP","value":3100,"page":"/campsites/abc123"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Success bool `json:"success"`
		Data    struct {
			Name   string `json:"name"`
			Rating string `json:"rating"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.True(t, payload.Success)
	assert.Equal(t, "LCP", payload.Data.Name)
	assert.Equal(t, "needs-improvement", payload.Data.Rating)
}

func TestHandleVitalsBeacon_UnknownMetricIsAccepted(t *testing.T) {
	app := newVitalsApp()

	req := httptest.NewRequest(http.MethodPost, "/api/vitals",
		strings.NewReader(`{"name":"LONGTASK","value":120}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Data struct {
			Rating string `json:"rating"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "good", payload.Data.Rating)
}

func TestHandleVitalsBeacon_MissingName(t *testing.T) {
	app := newVitalsApp()

	req := httptest.NewRequest(http.MethodPost, "/api/vitals",
		strings.NewReader(`{"value":3100}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleVitalsBeacon_MalformedBody(t *testing.T) {
	app := newVitalsApp()

	req := httptest.NewRequest(http.MethodPost, "/api/vitals", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
