package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ThanawatK/CampSiam/app/models"
	"github.com/ThanawatK/CampSiam/app/repository"
	"github.com/ThanawatK/CampSiam/internal/pkg/usercontext"
)

type createReviewRequest struct {
	Rating int    `json:"rating"`
	Body   string `json:"body"`
}

type reportReviewRequest struct {
	Reason  string `json:"reason"`
	Details string `json:"details"`
}

// HandleCreateReview posts a review on an approved campsite. One review per
// user and campsite; the unique index turns a second attempt into a 409.
func HandleCreateReview(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	var req createReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}

	campsiteRepo := repository.GetGlobalFactory().GetCampsiteRepository()
	campsite, err := campsiteRepo.GetByShareCode(c.Params("code"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "Campsite not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load campsite")
	}
	if !campsite.IsApproved() {
		return jsonError(c, fiber.StatusNotFound, "not_found", "Campsite not found")
	}
	if campsite.OwnerID == userCtx.UserID {
		return jsonError(c, fiber.StatusForbidden, "forbidden", "Owners cannot review their own campsite")
	}

	review := &models.Review{
		CampsiteID: campsite.ID,
		UserID:     userCtx.UserID,
		Rating:     req.Rating,
		Body:       strings.TrimSpace(req.Body),
	}
	if err := validate.Struct(review); err != nil {
		return jsonValidationError(c, err)
	}

	reviewRepo := repository.GetGlobalFactory().GetReviewRepository()
	if err := reviewRepo.Create(review); err != nil {
		if isDuplicateEntry(err) {
			return jsonError(c, fiber.StatusConflict, "already_reviewed", "You have already reviewed this campsite")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to save review")
	}

	return jsonCreated(c, review)
}

// HandleReportReview flags a review for moderation. A (review, reporter)
// pair may report only once.
func HandleReportReview(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	reviewID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid review id")
	}

	var req reportReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	if !models.IsValidReportReason(req.Reason) {
		return jsonError(c, fiber.StatusUnprocessableEntity, "invalid_reason", "Unknown report reason")
	}
	details := strings.TrimSpace(req.Details)
	if req.Reason == models.ReportReasonOther && len(details) < 5 {
		return jsonError(c, fiber.StatusUnprocessableEntity, "details_required", "Please describe the problem (at least 5 characters)")
	}

	reviewRepo := repository.GetGlobalFactory().GetReviewRepository()
	review, err := reviewRepo.GetByID(uint(reviewID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "Review not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load review")
	}
	if review.UserID == userCtx.UserID {
		return jsonError(c, fiber.StatusForbidden, "forbidden", "You cannot report your own review")
	}

	ipv4, ipv6 := GetClientIP(c)
	report := &models.ReviewReport{
		ReviewID:     review.ID,
		ReporterID:   userCtx.UserID,
		Reason:       req.Reason,
		Details:      details,
		Status:       models.ReportStatusOpen,
		ReporterIPv4: ipv4,
		ReporterIPv6: ipv6,
	}

	if err := reviewRepo.CreateReport(report); err != nil {
		if isDuplicateEntry(err) {
			return jsonError(c, fiber.StatusConflict, "already_reported", "You have already reported this review")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to save report")
	}

	return jsonCreated(c, report)
}
