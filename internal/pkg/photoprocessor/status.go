package photoprocessor

import (
	"fmt"
	"time"

	"github.com/ThanawatK/CampSiam/internal/pkg/cache"
)

// Cache key format for photo processing status
const (
	PhotoStatusKeyFormat = "photo:status:%s" // Format: photo:status:<uuid>
)

// Status constants for photo processing
const (
	STATUS_PENDING    = "pending"    // Photo is queued for processing
	STATUS_PROCESSING = "processing" // Photo is currently being processed
	STATUS_COMPLETED  = "completed"  // Photo processing is complete
	STATUS_FAILED     = "failed"     // Photo processing failed
)

// GetCacheImplementation is swappable for tests.
var GetCacheImplementation = cache.Get

// SetCacheImplementation is swappable for tests.
var SetCacheImplementation = func(key string, value interface{}) error {
	return cache.Set(key, value, 24*time.Hour)
}

// SetPhotoStatus sets the processing status of a photo in the cache
func SetPhotoStatus(photoUUID string, status string) error {
	key := fmt.Sprintf(PhotoStatusKeyFormat, photoUUID)
	return SetCacheImplementation(key, status)
}

// GetPhotoStatus retrieves the processing status of a photo from the cache
func GetPhotoStatus(photoUUID string) (string, error) {
	key := fmt.Sprintf(PhotoStatusKeyFormat, photoUUID)
	return GetCacheImplementation(key)
}

// IsPhotoProcessingComplete checks if photo processing is complete
func IsPhotoProcessingComplete(photoUUID string) bool {
	if photoUUID == "" {
		return false
	}
	status, err := GetPhotoStatus(photoUUID)
	return err == nil && status == STATUS_COMPLETED
}

// IsPhotoProcessingFailed checks if photo processing failed
func IsPhotoProcessingFailed(photoUUID string) bool {
	if photoUUID == "" {
		return false
	}
	status, err := GetPhotoStatus(photoUUID)
	return err == nil && status == STATUS_FAILED
}
