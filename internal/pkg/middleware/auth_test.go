package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThanawatK/CampSiam/internal/pkg/usercontext"
)

func newGuardedApp(guard fiber.Handler, userCtx *usercontext.UserContext) *fiber.App {
	app := fiber.New()
	if userCtx != nil {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("USER_CONTEXT", *userCtx)
			return c.Next()
		})
	}
	app.Get("/protected", guard, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func requestStatus(t *testing.T, app *fiber.App) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestRequireAuth(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		app := newGuardedApp(RequireAuth, nil)
		assert.Equal(t, fiber.StatusUnauthorized, requestStatus(t, app))
	})

	t.Run("logged in", func(t *testing.T) {
		app := newGuardedApp(RequireAuth, &usercontext.UserContext{UserID: 7, IsLoggedIn: true})
		assert.Equal(t, fiber.StatusNoContent, requestStatus(t, app))
	})
}

func TestRequireOwner(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		app := newGuardedApp(RequireOwner, nil)
		assert.Equal(t, fiber.StatusUnauthorized, requestStatus(t, app))
	})

	t.Run("plain user", func(t *testing.T) {
		app := newGuardedApp(RequireOwner, &usercontext.UserContext{UserID: 7, IsLoggedIn: true})
		assert.Equal(t, fiber.StatusForbidden, requestStatus(t, app))
	})

	t.Run("owner", func(t *testing.T) {
		app := newGuardedApp(RequireOwner, &usercontext.UserContext{UserID: 7, IsLoggedIn: true, IsOwner: true})
		assert.Equal(t, fiber.StatusNoContent, requestStatus(t, app))
	})

	t.Run("admin passes too", func(t *testing.T) {
		app := newGuardedApp(RequireOwner, &usercontext.UserContext{UserID: 1, IsLoggedIn: true, IsAdmin: true})
		assert.Equal(t, fiber.StatusNoContent, requestStatus(t, app))
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Run("owner is not enough", func(t *testing.T) {
		app := newGuardedApp(RequireAdmin, &usercontext.UserContext{UserID: 7, IsLoggedIn: true, IsOwner: true})
		assert.Equal(t, fiber.StatusForbidden, requestStatus(t, app))
	})

	t.Run("admin", func(t *testing.T) {
		app := newGuardedApp(RequireAdmin, &usercontext.UserContext{UserID: 1, IsLoggedIn: true, IsAdmin: true})
		assert.Equal(t, fiber.StatusNoContent, requestStatus(t, app))
	})
}
