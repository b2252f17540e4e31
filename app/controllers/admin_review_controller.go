package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ThanawatK/CampSiam/app/repository"
	"github.com/ThanawatK/CampSiam/internal/pkg/statistics"
	"github.com/ThanawatK/CampSiam/internal/pkg/usercontext"
)

// MinHideReasonLength applies to review moderation. Hide reasons are shorter
// than reject reasons because they address the reporter, not the author.
const MinHideReasonLength = 5

type hideReviewRequest struct {
	Reason string `json:"reason"`
}

// HandleAdminReportedReviews lists reviews with open reports, most reported
// first, with the reports attached.
func HandleAdminReportedReviews(c *fiber.Ctx) error {
	page, perPage := parsePage(c)

	repo := repository.GetGlobalFactory().GetReviewRepository()
	reviews, total, err := repo.GetReported((page-1)*perPage, perPage)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load reported reviews")
	}

	type reportedReview struct {
		Review  interface{} `json:"review"`
		Reports interface{} `json:"reports"`
	}
	data := make([]reportedReview, 0, len(reviews))
	for i := range reviews {
		reports, err := repo.GetOpenReportsByReviewID(reviews[i].ID)
		if err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load reports")
		}
		data = append(data, reportedReview{Review: reviews[i], Reports: reports})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
		"meta": fiber.Map{
			"page":        page,
			"per_page":    perPage,
			"total":       total,
			"total_pages": totalPages(total, perPage),
		},
	})
}

// HandleAdminHideReview hides a review from public pages and resolves its
// open reports.
func HandleAdminHideReview(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid review id")
	}

	var req hideReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	reason := strings.TrimSpace(req.Reason)
	if len(reason) < MinHideReasonLength {
		return jsonError(c, fiber.StatusUnprocessableEntity, "reason_too_short", "Hide reason must be at least 5 characters")
	}

	repo := repository.GetGlobalFactory().GetReviewRepository()
	if err := repo.Hide(uint(id), reason, userCtx.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "Review not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to hide review")
	}

	go statistics.UpdateCacheIfNeeded()

	return jsonData(c, fiber.Map{"hidden": true})
}

// HandleAdminDeleteReview deletes a review and cascades its reports.
func HandleAdminDeleteReview(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid review id")
	}

	repo := repository.GetGlobalFactory().GetReviewRepository()
	if _, err := repo.GetByID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "Review not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load review")
	}
	if err := repo.Delete(uint(id)); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to delete review")
	}

	go statistics.UpdateCacheIfNeeded()

	return jsonData(c, fiber.Map{"deleted": true})
}

// HandleAdminDismissReport dismisses one report. The review's report count
// drops with it and the reported flag clears at zero.
func HandleAdminDismissReport(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid report id")
	}

	repo := repository.GetGlobalFactory().GetReviewRepository()
	if err := repo.DismissReport(uint(id), userCtx.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "Report not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to dismiss report")
	}

	go statistics.UpdateCacheIfNeeded()

	return jsonData(c, fiber.Map{"dismissed": true})
}
