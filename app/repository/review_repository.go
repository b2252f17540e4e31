package repository

import (
	"time"

	"github.com/ThanawatK/CampSiam/app/models"
	"gorm.io/gorm"
)

// reviewRepository implements the ReviewRepository interface
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository instance
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create creates a new review in the database
func (r *reviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

// GetByID retrieves a review by its ID
func (r *reviewRepository) GetByID(id uint) (*models.Review, error) {
	var review models.Review
	err := r.db.Preload("User").First(&review, id).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// GetVisibleByCampsiteID retrieves the reviews shown on the public detail
// page, newest first
func (r *reviewRepository) GetVisibleByCampsiteID(campsiteID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Preload("User").
		Where("campsite_id = ? AND is_hidden = ?", campsiteID, false).
		Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

// Delete removes a review and its reports in one transaction
func (r *reviewRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("review_id = ?", id).Delete(&models.ReviewReport{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Review{}, id).Error
	})
}

// CreateReport inserts a report and bumps the review's denormalized report
// counters in the same transaction. A duplicate (review, reporter) pair
// surfaces as a MySQL 1062 error from the unique index.
func (r *reviewRepository) CreateReport(report *models.ReviewReport) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(report).Error; err != nil {
			return err
		}
		return tx.Model(&models.Review{}).
			Where("id = ?", report.ReviewID).
			Updates(map[string]interface{}{
				"report_count": gorm.Expr("report_count + 1"),
				"is_reported":  true,
			}).Error
	})
}

// GetReported retrieves reviews with open reports for the moderation queue,
// most reported first
func (r *reviewRepository) GetReported(offset, limit int) ([]models.Review, int64, error) {
	var total int64
	base := r.db.Model(&models.Review{}).Where("is_reported = ? AND is_hidden = ?", true, false)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.Review
	err := r.db.Preload("User").Preload("Campsite").
		Where("is_reported = ? AND is_hidden = ?", true, false).
		Order("report_count DESC, created_at ASC").
		Offset(offset).Limit(limit).Find(&reviews).Error
	return reviews, total, err
}

// GetOpenReportsByReviewID retrieves the open reports against a review
func (r *reviewRepository) GetOpenReportsByReviewID(reviewID uint) ([]models.ReviewReport, error) {
	var reports []models.ReviewReport
	err := r.db.Preload("Reporter").
		Where("review_id = ? AND status = ?", reviewID, models.ReportStatusOpen).
		Order("created_at ASC").Find(&reports).Error
	return reports, err
}

// GetReportByID retrieves a single report
func (r *reviewRepository) GetReportByID(id uint) (*models.ReviewReport, error) {
	var report models.ReviewReport
	err := r.db.First(&report, id).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// Hide marks a review hidden and resolves all of its open reports in one
// transaction.
func (r *reviewRepository) Hide(reviewID uint, reason string, resolvedBy uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var review models.Review
		if err := tx.First(&review, reviewID).Error; err != nil {
			return err
		}

		err := tx.Model(&models.Review{}).Where("id = ?", reviewID).
			Updates(map[string]interface{}{
				"is_hidden":     true,
				"hidden_reason": reason,
				"is_reported":   false,
			}).Error
		if err != nil {
			return err
		}

		now := time.Now()
		return tx.Model(&models.ReviewReport{}).
			Where("review_id = ? AND status = ?", reviewID, models.ReportStatusOpen).
			Updates(map[string]interface{}{
				"status":         models.ReportStatusResolved,
				"resolved_by_id": resolvedBy,
				"resolved_at":    now,
			}).Error
	})
}

// DismissReport dismisses one report and decrements the review's
// report_count, clearing is_reported when the count reaches zero, all in one
// transaction.
func (r *reviewRepository) DismissReport(reportID uint, resolvedBy uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var report models.ReviewReport
		if err := tx.First(&report, reportID).Error; err != nil {
			return err
		}
		if report.Status != models.ReportStatusOpen {
			return gorm.ErrRecordNotFound
		}

		now := time.Now()
		err := tx.Model(&report).Updates(map[string]interface{}{
			"status":         models.ReportStatusDismissed,
			"resolved_by_id": resolvedBy,
			"resolved_at":    now,
		}).Error
		if err != nil {
			return err
		}

		var review models.Review
		if err := tx.First(&review, report.ReviewID).Error; err != nil {
			return err
		}
		newCount, stillReported := models.NextReportCount(review.ReportCount)
		return tx.Model(&review).Updates(map[string]interface{}{
			"report_count": newCount,
			"is_reported":  stillReported,
		}).Error
	})
}
