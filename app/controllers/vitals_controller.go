package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ThanawatK/CampSiam/internal/pkg/vitals"
)

// HandleVitalsBeacon ingests a web-vitals sample from the browser. The
// rating is computed server-side; a broken sink never surfaces to the
// client beyond a 400 for malformed payloads.
func HandleVitalsBeacon(c *fiber.Ctx) error {
	var beacon vitals.Beacon
	if err := c.BodyParser(&beacon); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	if beacon.Name == "" {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Metric name is required")
	}

	recorded := vitals.Record(beacon)
	return jsonData(c, fiber.Map{
		"name":   recorded.Name,
		"rating": recorded.Rating,
	})
}
