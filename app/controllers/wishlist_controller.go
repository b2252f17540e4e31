package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ThanawatK/CampSiam/app/repository"
	"github.com/ThanawatK/CampSiam/internal/pkg/usercontext"
)

// HandleWishlistToggle saves or removes a campsite on the user's wishlist
// and reports the resulting state.
func HandleWishlistToggle(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	campsiteID, err := strconv.ParseUint(c.Params("campsiteID"), 10, 32)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid campsite id")
	}

	campsiteRepo := repository.GetGlobalFactory().GetCampsiteRepository()
	campsite, err := campsiteRepo.GetByID(uint(campsiteID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "Campsite not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load campsite")
	}
	if !campsite.IsApproved() {
		return jsonError(c, fiber.StatusNotFound, "not_found", "Campsite not found")
	}

	wishlistRepo := repository.GetGlobalFactory().GetWishlistRepository()
	saved, err := wishlistRepo.Toggle(userCtx.UserID, campsite.ID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update wishlist")
	}

	return jsonData(c, fiber.Map{
		"campsite_id": campsite.ID,
		"wishlisted":  saved,
	})
}

// HandleWishlist returns the user's saved campsites, newest first.
func HandleWishlist(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	wishlistRepo := repository.GetGlobalFactory().GetWishlistRepository()
	items, err := wishlistRepo.GetByUserID(userCtx.UserID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load wishlist")
	}

	return jsonData(c, items)
}
