package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ThanawatK/CampSiam/app/models"
	"github.com/ThanawatK/CampSiam/app/repository"
	"github.com/ThanawatK/CampSiam/internal/pkg/counter"
	"github.com/ThanawatK/CampSiam/internal/pkg/database"
	"github.com/ThanawatK/CampSiam/internal/pkg/seo"
	"github.com/ThanawatK/CampSiam/internal/pkg/usercontext"
)

// HandleCampsiteSearch runs the public search over approved campsites.
// Results carry crawler-stable pagination links.
func HandleCampsiteSearch(c *fiber.Ctx) error {
	page, perPage := parsePage(c)

	search := repository.CampsiteSearch{
		Query:    c.Query("q"),
		Province: c.Query("province"),
		Type:     c.Query("type"),
		Page:     page,
		PerPage:  perPage,
	}

	if search.Province != "" && !models.IsValidProvince(search.Province) {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Unknown province")
	}
	if search.Type != "" && !models.IsValidCampsiteType(search.Type) {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Unknown campsite type")
	}

	repo := repository.GetGlobalFactory().GetCampsiteRepository()
	campsites, total, err := repo.SearchApproved(search)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Search failed")
	}

	pages := totalPages(total, perPage)
	return c.JSON(fiber.Map{
		"success": true,
		"data":    campsites,
		"meta": fiber.Map{
			"page":        page,
			"per_page":    perPage,
			"total":       total,
			"total_pages": pages,
			"links": seo.SearchPaginationURLs("/search", seo.SearchParams{
				Query:    search.Query,
				Province: search.Province,
				Type:     search.Type,
				Page:     page,
			}, pages),
		},
	})
}

// HandleCampsiteDetail returns a public listing by its share code and counts
// the view.
func HandleCampsiteDetail(c *fiber.Ctx) error {
	code := c.Params("code")

	repo := repository.GetGlobalFactory().GetCampsiteRepository()
	campsite, err := repo.GetDetailByShareCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "Campsite not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load campsite")
	}

	userCtx := usercontext.GetUserContext(c)
	isOwnListing := userCtx.IsLoggedIn && userCtx.UserID == campsite.OwnerID
	if !campsite.IsApproved() && !isOwnListing && !userCtx.IsAdmin {
		// Pending and rejected listings look like missing pages to the public
		return jsonError(c, fiber.StatusNotFound, "not_found", "Campsite not found")
	}

	if campsite.IsApproved() && !isOwnListing {
		_ = counter.AddCampsiteView(campsite.ID)
	}

	wishlisted := false
	if userCtx.IsLoggedIn {
		wishlisted, _ = repository.GetGlobalFactory().GetWishlistRepository().Contains(userCtx.UserID, campsite.ID)
	}

	path := "/campsites/" + campsite.ShareCode
	return c.JSON(fiber.Map{
		"success": true,
		"data":    campsite,
		"meta": fiber.Map{
			"wishlisted": wishlisted,
			"canonical":  seo.CanonicalURL(path),
			"alternates": seo.AlternateURLs(path),
		},
	})
}

// HandleProvinces returns the static bilingual province list.
func HandleProvinces(c *fiber.Ctx) error {
	return jsonData(c, models.Provinces)
}

// HandleAmenities returns the amenity catalog.
func HandleAmenities(c *fiber.Ctx) error {
	var amenities []models.Amenity
	if err := database.GetDB().Order("id ASC").Find(&amenities).Error; err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load amenities")
	}
	return jsonData(c, amenities)
}
