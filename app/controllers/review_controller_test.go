package controllers

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func newReportReviewApp(t *testing.T) *fiber.App {
	t.Helper()
	installMissingRepos(t)

	app := fiber.New()
	app.Post("/api/reviews/:id/report", HandleReportReview)
	return app
}

func TestHandleReportReview_UnknownReason(t *testing.T) {
	app := newReportReviewApp(t)

	resp := postJSON(t, app, "/api/reviews/1/report", `{"reason":"rude"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "invalid_reason", decodeErrorCode(t, resp))
}

func TestHandleReportReview_OtherRequiresDetails(t *testing.T) {
	app := newReportReviewApp(t)

	t.Run("missing details blocked", func(t *testing.T) {
		resp := postJSON(t, app, "/api/reviews/1/report", `{"reason":"other"}`)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "details_required", decodeErrorCode(t, resp))
	})

	t.Run("four characters blocked", func(t *testing.T) {
		resp := postJSON(t, app, "/api/reviews/1/report", `{"reason":"other","details":"spam"}`)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("five characters pass the gate", func(t *testing.T) {
		// the double misses the review, so 404 proves the details were accepted
		resp := postJSON(t, app, "/api/reviews/1/report", `{"reason":"other","details":"wrong place"}`)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestHandleReportReview_EnumReasonNeedsNoDetails(t *testing.T) {
	app := newReportReviewApp(t)

	resp := postJSON(t, app, "/api/reviews/1/report", `{"reason":"spam"}`)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
