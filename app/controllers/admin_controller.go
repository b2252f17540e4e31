package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ThanawatK/CampSiam/app/models"
	"github.com/ThanawatK/CampSiam/app/repository"
	"github.com/ThanawatK/CampSiam/internal/pkg/database"
	"github.com/ThanawatK/CampSiam/internal/pkg/statistics"
	"github.com/ThanawatK/CampSiam/internal/pkg/usercontext"
)

// MinRejectReasonLength applies to campsite and owner request rejections.
const MinRejectReasonLength = 10

type rejectRequest struct {
	Reason string `json:"reason"`
}

// HandleAdminStats returns the moderation badge counters. A cache failure
// shows zeros rather than breaking the console.
func HandleAdminStats(c *fiber.Ctx) error {
	return jsonData(c, statistics.GetModerationCounts())
}

// HandleAdminPendingCampsites lists the campsite moderation queue.
func HandleAdminPendingCampsites(c *fiber.Ctx) error {
	page, perPage := parsePage(c)

	repo := repository.GetGlobalFactory().GetCampsiteRepository()
	campsites, total, err := repo.GetPending((page-1)*perPage, perPage)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load pending campsites")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    campsites,
		"meta": fiber.Map{
			"page":        page,
			"per_page":    perPage,
			"total":       total,
			"total_pages": totalPages(total, perPage),
		},
	})
}

// HandleAdminApproveCampsite publishes a pending or rejected listing.
func HandleAdminApproveCampsite(c *fiber.Ctx) error {
	campsite, errResp := loadCampsiteParam(c)
	if campsite == nil {
		return errResp
	}

	if err := campsite.Approve(database.GetDB()); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to approve campsite")
	}

	go statistics.UpdateCacheIfNeeded()

	return jsonData(c, campsite)
}

// HandleAdminRejectCampsite rejects a listing with a reason the owner sees.
// A reason under 10 characters is refused and nothing changes.
func HandleAdminRejectCampsite(c *fiber.Ctx) error {
	var req rejectRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	reason := strings.TrimSpace(req.Reason)
	if len(reason) < MinRejectReasonLength {
		return jsonError(c, fiber.StatusUnprocessableEntity, "reason_too_short", "Rejection reason must be at least 10 characters")
	}

	campsite, errResp := loadCampsiteParam(c)
	if campsite == nil {
		return errResp
	}

	if err := campsite.Reject(database.GetDB(), reason); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to reject campsite")
	}

	go statistics.UpdateCacheIfNeeded()

	return jsonData(c, campsite)
}

// HandleAdminPendingOwnerRequests lists open owner applications.
func HandleAdminPendingOwnerRequests(c *fiber.Ctx) error {
	page, perPage := parsePage(c)

	repo := repository.GetGlobalFactory().GetOwnerRequestRepository()
	requests, total, err := repo.GetPending((page-1)*perPage, perPage)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load owner requests")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    requests,
		"meta": fiber.Map{
			"page":        page,
			"per_page":    perPage,
			"total":       total,
			"total_pages": totalPages(total, perPage),
		},
	})
}

// HandleAdminApproveOwnerRequest grants the applicant the owner role.
func HandleAdminApproveOwnerRequest(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request id")
	}

	repo := repository.GetGlobalFactory().GetOwnerRequestRepository()
	if err := repo.Approve(uint(id), userCtx.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "Owner request not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to approve request")
	}

	go statistics.UpdateCacheIfNeeded()

	return jsonData(c, fiber.Map{"approved": true})
}

// HandleAdminRejectOwnerRequest declines an application with a reason.
func HandleAdminRejectOwnerRequest(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request id")
	}

	var req rejectRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	reason := strings.TrimSpace(req.Reason)
	if len(reason) < MinRejectReasonLength {
		return jsonError(c, fiber.StatusUnprocessableEntity, "reason_too_short", "Rejection reason must be at least 10 characters")
	}

	repo := repository.GetGlobalFactory().GetOwnerRequestRepository()
	if err := repo.Reject(uint(id), reason, userCtx.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "Owner request not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to reject request")
	}

	go statistics.UpdateCacheIfNeeded()

	return jsonData(c, fiber.Map{"rejected": true})
}

// loadCampsiteParam resolves the :id path param for admin moderation
// endpoints.
func loadCampsiteParam(c *fiber.Ctx) (*models.Campsite, error) {
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
	return campsite, nil
}
