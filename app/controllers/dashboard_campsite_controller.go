package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ThanawatK/CampSiam/app/models"
	"github.com/ThanawatK/CampSiam/app/repository"
	"github.com/ThanawatK/CampSiam/internal/pkg/statistics"
	"github.com/ThanawatK/CampSiam/internal/pkg/usercontext"
)

type campsiteRequest struct {
	Name        string   `json:"name"`
	NameEN      string   `json:"name_en"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Province    string   `json:"province"`
	PriceMin    int      `json:"price_min"`
	PriceMax    int      `json:"price_max"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	AmenityIDs  []uint   `json:"amenity_ids"`
}

// HandleDashboardCampsites lists the owner's listings in every status.
func HandleDashboardCampsites(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	repo := repository.GetGlobalFactory().GetCampsiteRepository()
	campsites, err := repo.GetByOwnerID(userCtx.UserID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load campsites")
	}

	return jsonData(c, campsites)
}

// HandleDashboardCreateCampsite creates a listing from the submission wizard.
// New listings always start in the moderation queue.
func HandleDashboardCreateCampsite(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	var req campsiteRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	if !models.IsValidProvince(req.Province) {
		return jsonError(c, fiber.StatusUnprocessableEntity, "invalid_province", "Unknown province")
	}

	campsite := &models.Campsite{
		OwnerID:     userCtx.UserID,
		Name:        req.Name,
		NameEN:      req.NameEN,
		Description: req.Description,
		Type:        req.Type,
		Province:    req.Province,
		PriceMin:    req.PriceMin,
		PriceMax:    req.PriceMax,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Status:      models.CampsiteStatusPending,
	}
	if err := validate.Struct(campsite); err != nil {
		return jsonValidationError(c, err)
	}

	repo := repository.GetGlobalFactory().GetCampsiteRepository()
	if err := repo.Create(campsite); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to save campsite")
	}

	if len(req.AmenityIDs) > 0 {
		if err := repo.SetAmenities(campsite, req.AmenityIDs); err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to save amenities")
		}
	}

	go statistics.UpdateCacheIfNeeded()

	return jsonCreated(c, campsite)
}

// HandleDashboardUpdateCampsite updates a listing. Editing an approved
// listing keeps the approval; saving a rejected one resubmits it to the
// moderation queue.
func HandleDashboardUpdateCampsite(c *fiber.Ctx) error {
	campsite, errResp := loadOwnCampsite(c)
	if campsite == nil {
		return errResp
	}

	var req campsiteRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	if !models.IsValidProvince(req.Province) {
		return jsonError(c, fiber.StatusUnprocessableEntity, "invalid_province", "Unknown province")
	}

	wasRejected := campsite.Status == models.CampsiteStatusRejected

	campsite.Name = req.Name
	campsite.NameEN = req.NameEN
	campsite.Description = req.Description
	campsite.Type = req.Type
	campsite.Province = req.Province
	campsite.PriceMin = req.PriceMin
	campsite.PriceMax = req.PriceMax
	campsite.Latitude = req.Latitude
	campsite.Longitude = req.Longitude
	if err := validate.Struct(campsite); err != nil {
		return jsonValidationError(c, err)
	}

	if wasRejected {
		campsite.Status = models.CampsiteStatusPending
		campsite.RejectionReason = ""
	}

	repo := repository.GetGlobalFactory().GetCampsiteRepository()
	if err := repo.Update(campsite); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to save campsite")
	}

	if req.AmenityIDs != nil {
		if err := repo.SetAmenities(campsite, req.AmenityIDs); err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to save amenities")
		}
	}

	if wasRejected {
		go statistics.UpdateCacheIfNeeded()
	}

	return jsonData(c, campsite)
}

// HandleDashboardDeleteCampsite removes a listing and its dependents.
func HandleDashboardDeleteCampsite(c *fiber.Ctx) error {
	campsite, errResp := loadOwnCampsite(c)
	if campsite == nil {
		return errResp
	}

	repo := repository.GetGlobalFactory().GetCampsiteRepository()
	if err := repo.Delete(campsite.ID); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to delete campsite")
	}

	return jsonData(c, fiber.Map{"deleted": true})
}

// loadOwnCampsite resolves the :id path param to a campsite owned by the
// current user. On failure the returned error is the response already sent.
func loadOwnCampsite(c *fiber.Ctx) (*models.Campsite, error) {
	userCtx := usercontext.GetUserContext(c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return nil, jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid campsite id")
	}

	repo := repository.GetGlobalFactory().GetCampsiteRepository()
	campsite, err := repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, jsonError(c, fiber.StatusNotFound, "not_found", "Campsite not found")
		}
		return nil, jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load campsite")
	}
	if campsite.OwnerID != userCtx.UserID && !userCtx.IsAdmin {
		return nil, jsonError(c, fiber.StatusForbidden, "forbidden", "This campsite belongs to another owner")
	}
	return campsite, nil
}
