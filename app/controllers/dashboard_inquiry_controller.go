package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/ThanawatK/CampSiam/app/models"
	"github.com/ThanawatK/CampSiam/app/repository"
	"github.com/ThanawatK/CampSiam/internal/pkg/database"
	"github.com/ThanawatK/CampSiam/internal/pkg/mail"
	"github.com/ThanawatK/CampSiam/internal/pkg/usercontext"
)

// MinReplyLength keeps owners from closing inquiries with empty replies.
const MinReplyLength = 10

type replyRequest struct {
	Reply string `json:"reply"`
}

type inquiryStatusRequest struct {
	Status string `json:"status"`
}

// HandleDashboardInquiries lists the owner's inbox with an optional status
// filter.
func HandleDashboardInquiries(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	page, perPage := parsePage(c)

	status := c.Query("status")
	if status != "" && !models.IsValidInquiryStatus(status) {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Unknown inquiry status")
	}

	repo := repository.GetGlobalFactory().GetInquiryRepository()
	inquiries, total, err := repo.GetByOwnerID(userCtx.UserID, status, (page-1)*perPage, perPage)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load inquiries")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    inquiries,
		"meta": fiber.Map{
			"page":        page,
			"per_page":    perPage,
			"total":       total,
			"total_pages": totalPages(total, perPage),
		},
	})
}

// HandleDashboardReplyInquiry stores the owner's answer and emails the
// guest. The inquiry moves to in_progress.
func HandleDashboardReplyInquiry(c *fiber.Ctx) error {
	inquiry, errResp := loadOwnInquiry(c)
	if inquiry == nil {
		return errResp
	}

	var req replyRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	reply := strings.TrimSpace(req.Reply)
	if len(reply) < MinReplyLength {
		return jsonError(c, fiber.StatusUnprocessableEntity, "reply_too_short", "Reply must be at least 10 characters")
	}

	repo := repository.GetGlobalFactory().GetInquiryRepository()
	updated, err := repo.Reply(inquiry.ID, reply)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to save reply")
	}

	campsiteName := ""
	if updated.Campsite != nil {
		campsiteName = updated.Campsite.Name
	}
	if err := mail.SendInquiryReply(updated.GuestEmail, updated.GuestName, campsiteName, reply); err != nil {
		// The reply is stored either way; the owner can follow up manually
		log.Warnf("[Dashboard] Reply mail to %s failed: %v", updated.GuestEmail, err)
	}

	return jsonData(c, updated)
}

// HandleDashboardInquiryStatus moves an inquiry through its lifecycle.
func HandleDashboardInquiryStatus(c *fiber.Ctx) error {
	inquiry, errResp := loadOwnInquiry(c)
	if inquiry == nil {
		return errResp
	}

	var req inquiryStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	if !models.IsValidInquiryStatus(req.Status) {
		return jsonError(c, fiber.StatusUnprocessableEntity, "invalid_status", "Unknown inquiry status")
	}

	repo := repository.GetGlobalFactory().GetInquiryRepository()
	if err := repo.SetStatus(inquiry.ID, req.Status); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update inquiry")
	}
	inquiry.Status = req.Status

	return jsonData(c, inquiry)
}

// HandleDashboardMarkInquiryRead stamps the read timestamp once.
func HandleDashboardMarkInquiryRead(c *fiber.Ctx) error {
	inquiry, errResp := loadOwnInquiry(c)
	if inquiry == nil {
		return errResp
	}

	if err := inquiry.MarkRead(database.GetDB()); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update inquiry")
	}

	return jsonData(c, inquiry)
}

// loadOwnInquiry resolves the :id path param to an inquiry addressed to the
// current owner. On failure the returned error is the response already sent.
func loadOwnInquiry(c *fiber.Ctx) (*models.Inquiry, error) {
	userCtx := usercontext.GetUserContext(c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return nil, jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid inquiry id")
	}

	repo := repository.GetGlobalFactory().GetInquiryRepository()
	inquiry, err := repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, jsonError(c, fiber.StatusNotFound, "not_found", "Inquiry not found")
		}
		return nil, jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load inquiry")
	}
	if inquiry.OwnerID != userCtx.UserID && !userCtx.IsAdmin {
		return nil, jsonError(c, fiber.StatusForbidden, "forbidden", "This inquiry belongs to another owner")
	}
	return inquiry, nil
}
