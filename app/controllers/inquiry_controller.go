package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ThanawatK/CampSiam/app/models"
	"github.com/ThanawatK/CampSiam/app/repository"
	"github.com/ThanawatK/CampSiam/internal/pkg/hcaptcha"
)

type createInquiryRequest struct {
	GuestName    string `json:"guest_name"`
	GuestEmail   string `json:"guest_email"`
	Message      string `json:"message"`
	CaptchaToken string `json:"h-captcha-response"`
}

// HandleCreateInquiry accepts a booking question from a guest. No account
// is needed; a captcha keeps the form from being a spam sink.
func HandleCreateInquiry(c *fiber.Ctx) error {
	var req createInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}

	if hcaptcha.Enabled() {
		valid, err := hcaptcha.Verify(req.CaptchaToken)
		if err != nil || !valid {
			return jsonError(c, fiber.StatusBadRequest, "captcha_failed", "Captcha validation failed. Please try again.")
		}
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

	inquiry := &models.Inquiry{
		CampsiteID: campsite.ID,
		OwnerID:    campsite.OwnerID,
		GuestName:  strings.TrimSpace(req.GuestName),
		GuestEmail: strings.TrimSpace(req.GuestEmail),
		Message:    strings.TrimSpace(req.Message),
		Status:     models.InquiryStatusNew,
	}
	if err := validate.Struct(inquiry); err != nil {
		return jsonValidationError(c, err)
	}

	inquiryRepo := repository.GetGlobalFactory().GetInquiryRepository()
	if err := inquiryRepo.Create(inquiry); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to save inquiry")
	}

	return jsonCreated(c, inquiry)
}
