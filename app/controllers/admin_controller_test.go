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
	"gorm.io/gorm"

	"github.com/ThanawatK/CampSiam/app/models"
	"github.com/ThanawatK/CampSiam/app/repository"
)

// Doubles embed the interface and override only what a test touches. Every
// lookup misses so the handlers never reach a database.
type missingCampsiteRepo struct{ repository.CampsiteRepository }

func (missingCampsiteRepo) GetByID(id uint) (*models.Campsite, error) {
	return nil, gorm.ErrRecordNotFound
}

type missingOwnerRequestRepo struct{ repository.OwnerRequestRepository }

func (missingOwnerRequestRepo) Reject(id uint, reason string, resolvedBy uint) error {
	return gorm.ErrRecordNotFound
}

type missingReviewRepo struct{ repository.ReviewRepository }

func (missingReviewRepo) Hide(reviewID uint, reason string, resolvedBy uint) error {
	return gorm.ErrRecordNotFound
}

func (missingReviewRepo) GetByID(id uint) (*models.Review, error) {
	return nil, gorm.ErrRecordNotFound
}

func installMissingRepos(t *testing.T) {
	t.Helper()
	restore := repository.SetGlobalRepositoriesForTesting(&repository.Repositories{
		Campsite:     missingCampsiteRepo{},
		OwnerRequest: missingOwnerRequestRepo{},
		Review:       missingReviewRepo{},
	})
	t.Cleanup(restore)
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeErrorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var payload struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload.Error
}

func TestHandleAdminRejectCampsite_ReasonLength(t *testing.T) {
	installMissingRepos(t)

	app := fiber.New()
	app.Post("/api/admin/campsites/:id/reject", HandleAdminRejectCampsite)

	t.Run("nine characters blocked", func(t *testing.T) {
		resp := postJSON(t, app, "/api/admin/campsites/1/reject", `{"reason":"123456789"}`)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "reason_too_short", decodeErrorCode(t, resp))
	})

	t.Run("whitespace padding does not count", func(t *testing.T) {
		resp := postJSON(t, app, "/api/admin/campsites/1/reject", `{"reason":"  short     "}`)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("ten characters pass the gate", func(t *testing.T) {
		// the double misses the campsite, so reaching 404 proves the reason
		// was accepted and no state changed
		resp := postJSON(t, app, "/api/admin/campsites/1/reject", `{"reason":"1234567890"}`)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "not_found", decodeErrorCode(t, resp))
	})
}

func TestHandleAdminRejectOwnerRequest_ReasonLength(t *testing.T) {
	installMissingRepos(t)

	app := fiber.New()
	app.Post("/api/admin/owner-requests/:id/reject", HandleAdminRejectOwnerRequest)

	t.Run("short reason blocked", func(t *testing.T) {
		resp := postJSON(t, app, "/api/admin/owner-requests/1/reject", `{"reason":"too short"}`)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "reason_too_short", decodeErrorCode(t, resp))
	})

	t.Run("ten characters pass the gate", func(t *testing.T) {
		resp := postJSON(t, app, "/api/admin/owner-requests/1/reject", `{"reason":"not active"}`)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestHandleAdminHideReview_ReasonLength(t *testing.T) {
	installMissingRepos(t)

	app := fiber.New()
	app.Post("/api/admin/reviews/:id/hide", HandleAdminHideReview)

	t.Run("four characters blocked", func(t *testing.T) {
		resp := postJSON(t, app, "/api/admin/reviews/1/hide", `{"reason":"spam"}`)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "reason_too_short", decodeErrorCode(t, resp))
	})

	t.Run("five characters pass the gate", func(t *testing.T) {
		resp := postJSON(t, app, "/api/admin/reviews/1/hide", `{"reason":"spam!"}`)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
