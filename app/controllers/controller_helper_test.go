package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantPage    int
		wantPerPage int
	}{
		{"defaults", "", 1, DefaultPageSize},
		{"explicit", "page=3&per_page=24", 3, 24},
		{"negative page", "page=-2", 1, DefaultPageSize},
		{"zero per_page", "per_page=0", 1, DefaultPageSize},
		{"capped per_page", "per_page=500", 1, MaxPageSize},
		{"garbage", "page=abc&per_page=xyz", 1, DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				page, perPage := parsePage(c)
				assert.Equal(t, tt.wantPage, page)
				assert.Equal(t, tt.wantPerPage, perPage)
				return c.SendStatus(fiber.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, totalPages(0, 12))
	assert.Equal(t, 1, totalPages(12, 12))
	assert.Equal(t, 2, totalPages(13, 12))
	assert.Equal(t, 5, totalPages(60, 12))
}

func TestIsDuplicateEntry(t *testing.T) {
	assert.False(t, isDuplicateEntry(nil))
	assert.False(t, isDuplicateEntry(errors.New("record not found")))
	assert.True(t, isDuplicateEntry(errors.New("Error 1062 (23000): Duplicate entry 'a-b' for key 'idx_wishlist_pair'")))
}

func TestGetClientIP(t *testing.T) {
	app := fiber.New()
	app.Get("/ip", func(c *fiber.Ctx) error {
		ipv4, ipv6 := GetClientIP(c)
		return c.JSON(fiber.Map{"ipv4": ipv4, "ipv6": ipv6})
	})

	tests := []struct {
		name     string
		headers  map[string]string
		wantIPv4 string
		wantIPv6 string
	}{
		{
			name:     "cloudflare header wins",
			headers:  map[string]string{"CF-Connecting-IP": "203.0.113.9", "X-Forwarded-For": "198.51.100.1"},
			wantIPv4: "203.0.113.9",
		},
		{
			name:     "cloudflare ipv6",
			headers:  map[string]string{"CF-Connecting-IP": "2001:db8::1"},
			wantIPv6: "2001:db8::1",
		},
		{
			name:     "forwarded list takes first",
			headers:  map[string]string{"X-Forwarded-For": "198.51.100.1, 10.0.0.1"},
			wantIPv4: "198.51.100.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ip", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)

			var got struct {
				IPv4 string `json:"ipv4"`
				IPv6 string `json:"ipv6"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
			assert.Equal(t, tt.wantIPv4, got.IPv4)
			assert.Equal(t, tt.wantIPv6, got.IPv6)
		})
	}
}

func TestJSONValidationErrorShape(t *testing.T) {
	type form struct {
		Name  string `validate:"required,min=3"`
		Email string `validate:"required,email"`
	}

	app := fiber.New()
	app.Post("/validate", func(c *fiber.Ctx) error {
		err := validate.Struct(form{Name: "x", Email: "not-an-email"})
		require.Error(t, err)
		return jsonValidationError(c, err)
	})

	req := httptest.NewRequest(http.MethodPost, "/validate", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload struct {
		Success bool              `json:"success"`
		Error   string            `json:"error"`
		Fields  map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.False(t, payload.Success)
	assert.Equal(t, "validation_failed", payload.Error)
	assert.Equal(t, "min", payload.Fields["name"])
	assert.Equal(t, "email", payload.Fields["email"])
}
