package controllers

import (
	"errors"
	"io"
	"path/filepath"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ThanawatK/CampSiam/app/models"
	"github.com/ThanawatK/CampSiam/app/repository"
	"github.com/ThanawatK/CampSiam/internal/pkg/database"
	"github.com/ThanawatK/CampSiam/internal/pkg/photoprocessor"
	"github.com/ThanawatK/CampSiam/internal/pkg/upload"
)

type reorderRequest struct {
	Photos []models.PhotoOrder `json:"photos"`
}

// HandleDashboardUploadPhoto accepts one multipart photo for a campsite
// gallery. The file is sniffed for a real image type, processed into WebP
// variants and appended at the end of the gallery. The first photo of a
// gallery becomes the primary.
func HandleDashboardUploadPhoto(c *fiber.Ctx) error {
	campsite, errResp := loadOwnCampsite(c)
	if campsite == nil {
		return errResp
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "No photo in request")
	}
	if err := upload.ValidatePhotoSize(fileHeader.Size); err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, "photo_too_large", err.Error())
	}

	photoRepo := repository.GetGlobalFactory().GetPhotoRepository()
	existing, err := photoRepo.CountByCampsiteID(campsite.ID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to count photos")
	}
	if err := upload.ValidatePhotoCount(int(existing), 1); err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, "gallery_full", err.Error())
	}

	file, err := fileHeader.Open()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to read photo")
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to read photo")
	}

	contentType, err := upload.ValidatePhotoBySniff(fileHeader.Filename, data)
	if err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, "unsupported_photo", err.Error())
	}

	photoUUID := uuid.New().String()
	_ = photoprocessor.SetPhotoStatus(photoUUID, photoprocessor.STATUS_PROCESSING)

	result, err := photoprocessor.Process(c.Context(), photoUUID, fileHeader.Filename, data)
	if err != nil {
		_ = photoprocessor.SetPhotoStatus(photoUUID, photoprocessor.STATUS_FAILED)
		return jsonError(c, fiber.StatusUnprocessableEntity, "processing_failed", "Could not process this photo")
	}
	_ = photoprocessor.SetPhotoStatus(photoUUID, photoprocessor.STATUS_COMPLETED)

	sortOrder, err := photoRepo.NextSortOrder(campsite.ID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to place photo")
	}

	photo := &models.CampsitePhoto{
		UUID:            photoUUID,
		CampsiteID:      campsite.ID,
		FilePath:        result.FilePath,
		FileName:        result.FileName,
		FileSize:        fileHeader.Size,
		FileType:        contentType,
		Width:           result.Width,
		Height:          result.Height,
		SortOrder:       sortOrder,
		IsPrimary:       existing == 0,
		ThumbSmallPath:  result.ThumbSmallPath,
		ThumbMediumPath: result.ThumbMediumPath,
		ExifData:        models.JSON(result.ExifJSON()),
	}
	if err := photoRepo.Create(photo); err != nil {
		photoprocessor.Remove(c.Context(), filepath.Join(result.FilePath, result.FileName), result.ThumbSmallPath, result.ThumbMediumPath)
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to save photo")
	}

	// Prefill listing coordinates from EXIF if the owner left them empty
	if campsite.Latitude == nil && campsite.Longitude == nil && result.Latitude != nil && result.Longitude != nil {
		err := database.GetDB().Model(campsite).Updates(map[string]interface{}{
			"latitude":  *result.Latitude,
			"longitude": *result.Longitude,
		}).Error
		if err != nil {
			log.Warnf("[Dashboard] EXIF coordinate prefill failed for campsite %d: %v", campsite.ID, err)
		}
	}

	return jsonCreated(c, fiber.Map{
		"photo": photo,
		"urls": fiber.Map{
			"original":     photoprocessor.WebPath(filepath.Join(photo.FilePath, photo.FileName)),
			"thumb_small":  photoprocessor.WebPath(photo.ThumbSmallPath),
			"thumb_medium": photoprocessor.WebPath(photo.ThumbMediumPath),
		},
	})
}

// HandleDashboardReorderPhotos rewrites the gallery order. The request must
// mention exactly the campsite's photos; the response carries the full
// gallery in its new dense order.
func HandleDashboardReorderPhotos(c *fiber.Ctx) error {
	campsite, errResp := loadOwnCampsite(c)
	if campsite == nil {
		return errResp
	}

	var req reorderRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	if len(req.Photos) == 0 {
		return jsonError(c, fiber.StatusUnprocessableEntity, "empty_order", "No photo order given")
	}

	photoRepo := repository.GetGlobalFactory().GetPhotoRepository()
	photos, err := photoRepo.Reorder(campsite.ID, req.Photos)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusUnprocessableEntity, "order_mismatch", "Photo order must mention each gallery photo exactly once")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to reorder photos")
	}

	return jsonData(c, photos)
}

// HandleDashboardSetPrimaryPhoto marks one photo as the gallery cover.
func HandleDashboardSetPrimaryPhoto(c *fiber.Ctx) error {
	campsite, errResp := loadOwnCampsite(c)
	if campsite == nil {
		return errResp
	}

	photoID, err := strconv.ParseUint(c.Params("photoID"), 10, 32)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid photo id")
	}

	photoRepo := repository.GetGlobalFactory().GetPhotoRepository()
	if err := photoRepo.SetPrimary(campsite.ID, uint(photoID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "Photo not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to set primary photo")
	}

	return jsonData(c, fiber.Map{"photo_id": photoID, "is_primary": true})
}

// HandleDashboardDeletePhoto removes a photo record and its stored files.
// Deleting the primary does not promote another photo; the owner picks the
// next cover explicitly.
func HandleDashboardDeletePhoto(c *fiber.Ctx) error {
	campsite, errResp := loadOwnCampsite(c)
	if campsite == nil {
		return errResp
	}

	photoID, err := strconv.ParseUint(c.Params("photoID"), 10, 32)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid photo id")
	}

	photoRepo := repository.GetGlobalFactory().GetPhotoRepository()
	photo, err := photoRepo.GetByID(uint(photoID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "Photo not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load photo")
	}
	if photo.CampsiteID != campsite.ID {
		return jsonError(c, fiber.StatusNotFound, "not_found", "Photo not found")
	}

	if err := photoRepo.Delete(photo.ID); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to delete photo")
	}

	photoprocessor.Remove(c.Context(), filepath.Join(photo.FilePath, photo.FileName), photo.ThumbSmallPath, photo.ThumbMediumPath)

	return jsonData(c, fiber.Map{"deleted": true})
}
