package statistics

import (
	"log"
	"sync"
	"time"

	"github.com/ThanawatK/CampSiam/app/models"
	"github.com/ThanawatK/CampSiam/internal/pkg/cache"
	"github.com/ThanawatK/CampSiam/internal/pkg/database"
)

const (
	CacheKeyPendingCampsites     = "statistics:moderation:pending_campsites"
	CacheKeyPendingOwnerRequests = "statistics:moderation:pending_owner_requests"
	CacheKeyReportedReviews      = "statistics:moderation:reported_reviews"
	CacheExpiration              = 5 * time.Minute
)

// ModerationCounts drives the admin console badge counters.
type ModerationCounts struct {
	PendingCampsites     int `json:"pending_campsites"`
	PendingOwnerRequests int `json:"pending_owner_requests"`
	ReportedReviews      int `json:"reported_reviews"`
}

var (
	lastCacheUpdate     time.Time
	cacheUpdateMutex    sync.Mutex
	cacheUpdateInterval = 1 * time.Minute
)

// ShouldUpdateCache checks whether the cached counts are stale.
func ShouldUpdateCache() bool {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	return time.Since(lastCacheUpdate) > cacheUpdateInterval
}

// UpdateCacheIfNeeded refreshes the cached counts when they are stale.
func UpdateCacheIfNeeded() {
	if ShouldUpdateCache() {
		cacheUpdateMutex.Lock()
		defer cacheUpdateMutex.Unlock()

		if err := UpdateModerationCache(); err != nil {
			log.Printf("Failed to update moderation statistics cache: %v", err)
		} else {
			lastCacheUpdate = time.Now()
		}
	}
}

// UpdateModerationCache recounts the moderation queues and stores the
// results in Redis.
func UpdateModerationCache() error {
	db := database.GetDB()
	if db == nil {
		return nil
	}

	var pendingCampsites, pendingRequests, reportedReviews int64

	if err := db.Model(&models.Campsite{}).Where("status = ?", models.CampsiteStatusPending).Count(&pendingCampsites).Error; err != nil {
		return err
	}
	if err := db.Model(&models.OwnerRequest{}).Where("status = ?", models.RequestStatusPending).Count(&pendingRequests).Error; err != nil {
		return err
	}
	if err := db.Model(&models.Review{}).Where("is_reported = ? AND is_hidden = ?", true, false).Count(&reportedReviews).Error; err != nil {
		return err
	}

	if err := cache.Set(CacheKeyPendingCampsites, pendingCampsites, CacheExpiration); err != nil {
		return err
	}
	if err := cache.Set(CacheKeyPendingOwnerRequests, pendingRequests, CacheExpiration); err != nil {
		return err
	}
	return cache.Set(CacheKeyReportedReviews, reportedReviews, CacheExpiration)
}

// GetModerationCounts returns the badge counts for the admin console.
// Cache misses degrade to zero instead of failing the stats endpoint.
func GetModerationCounts() ModerationCounts {
	UpdateCacheIfNeeded()

	counts := ModerationCounts{}
	if v, err := cache.GetInt(CacheKeyPendingCampsites); err == nil {
		counts.PendingCampsites = v
	}
	if v, err := cache.GetInt(CacheKeyPendingOwnerRequests); err == nil {
		counts.PendingOwnerRequests = v
	}
	if v, err := cache.GetInt(CacheKeyReportedReviews); err == nil {
		counts.ReportedReviews = v
	}
	return counts
}
