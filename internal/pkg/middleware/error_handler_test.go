package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorHandlerApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Use(recover.New())
	app.Get("/api/boom", func(c *fiber.Ctx) error {
		panic("boom")
	})
	app.Get("/api/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		panic("boom")
	})
	return app
}

func TestErrorHandler_APIPanicGetsJSONEnvelope(t *testing.T) {
	app := newErrorHandlerApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/boom", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "application/json")

	var payload struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.False(t, payload.Success)
	assert.Equal(t, "internal_server_error", payload.Error)
	// the panic value must not leak to the client
	assert.NotContains(t, payload.Message, "boom")
}

func TestErrorHandler_APIFiberErrorKeepsCodeAndMessage(t *testing.T) {
	app := newErrorHandlerApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/teapot", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "short and stout", payload.Message)
}

func TestErrorHandler_APIUnknownRouteIsJSON404(t *testing.T) {
	app := newErrorHandlerApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/no-such-route", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "application/json")

	var payload struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "not_found", payload.Error)
}

func TestErrorHandler_HTMLRouteGetsFallbackPage(t *testing.T) {
	app := newErrorHandlerApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "กลับหน้าหลัก"))
	assert.NotContains(t, string(body), "boom")
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "not_found", errorCode(fiber.StatusNotFound))
	assert.Equal(t, "too_many_requests", errorCode(fiber.StatusTooManyRequests))
	assert.Equal(t, "internal_server_error", errorCode(fiber.StatusInternalServerError))
	assert.Equal(t, "internal_server_error", errorCode(999))
}
