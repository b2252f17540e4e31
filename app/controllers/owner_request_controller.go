package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ThanawatK/CampSiam/app/models"
	"github.com/ThanawatK/CampSiam/app/repository"
	"github.com/ThanawatK/CampSiam/internal/pkg/statistics"
	"github.com/ThanawatK/CampSiam/internal/pkg/usercontext"
)

type ownerRequestRequest struct {
	BusinessName        string `json:"business_name"`
	BusinessDescription string `json:"business_description"`
	Phone               string `json:"phone"`
}

// HandleCreateOwnerRequest lets a logged-in user apply for the owner role.
// One open application per user.
func HandleCreateOwnerRequest(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	if userCtx.IsOwner {
		return jsonError(c, fiber.StatusConflict, "already_owner", "You already have the owner role")
	}

	var req ownerRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}

	repo := repository.GetGlobalFactory().GetOwnerRequestRepository()
	if _, err := repo.GetPendingByUserID(userCtx.UserID); err == nil {
		return jsonError(c, fiber.StatusConflict, "request_pending", "You already have a pending application")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to check applications")
	}

	request := &models.OwnerRequest{
		UserID:              userCtx.UserID,
		BusinessName:        strings.TrimSpace(req.BusinessName),
		BusinessDescription: strings.TrimSpace(req.BusinessDescription),
		Phone:               strings.TrimSpace(req.Phone),
		Status:              models.RequestStatusPending,
	}
	if err := validate.Struct(request); err != nil {
		return jsonValidationError(c, err)
	}

	if err := repo.Create(request); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to save application")
	}

	go statistics.UpdateCacheIfNeeded()

	return jsonCreated(c, request)
}
