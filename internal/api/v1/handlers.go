package apiv1

import (
	"github.com/gofiber/fiber/v2"

	// Delegate to existing controllers to keep behavior consistent
	"github.com/ThanawatK/CampSiam/app/controllers"
	"github.com/ThanawatK/CampSiam/app/models"
	"github.com/ThanawatK/CampSiam/app/repository"
	"github.com/ThanawatK/CampSiam/internal/pkg/database"
	"github.com/ThanawatK/CampSiam/internal/pkg/photoprocessor"
)

// Pong is the ping response payload.
type Pong struct {
	Ping string `json:"ping"`
}

// APIServer implements the versioned public API surface
type APIServer struct{}

// NewAPIServer creates a new API server instance
func NewAPIServer() *APIServer {
	return &APIServer{}
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	response := Pong{
		Ping: "pong",
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// GetCampsites runs the public search. Delegates to the existing controller
// for consistent response shape.
func (s *APIServer) GetCampsites(c *fiber.Ctx) error {
	return controllers.HandleCampsiteSearch(c)
}

// GetCampsite returns a public listing by share code.
func (s *APIServer) GetCampsite(c *fiber.Ctx) error {
	return controllers.HandleCampsiteDetail(c)
}

// GetPhotoStatus returns processing status for an uploaded photo (JSON)
func (s *APIServer) GetPhotoStatus(c *fiber.Ctx) error {
	uuid := c.Params("uuid")
	if uuid == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "uuid missing"})
	}
	complete := photoprocessor.IsPhotoProcessingComplete(uuid)

	// resolve the listing link when the photo row exists already
	var viewURL string
	if complete {
		var photo models.CampsitePhoto
		err := database.GetDB().Where("uuid = ?", uuid).First(&photo).Error
		if err == nil {
			campsiteRepo := repository.GetGlobalFactory().GetCampsiteRepository()
			if campsite, err := campsiteRepo.GetByID(photo.CampsiteID); err == nil {
				viewURL = "/campsites/" + campsite.ShareCode
			}
		}
	}
	return c.JSON(fiber.Map{
		"complete": complete,
		"failed":   photoprocessor.IsPhotoProcessingFailed(uuid),
		"view_url": viewURL,
	})
}

// RegisterHandlers wires the v1 surface onto a fiber router group.
func RegisterHandlers(r fiber.Router, s *APIServer) {
	r.Get("/ping", s.GetPing)
	r.Get("/campsites", s.GetCampsites)
	r.Get("/campsites/:code", s.GetCampsite)
	r.Get("/photos/:uuid/status", s.GetPhotoStatus)
}
