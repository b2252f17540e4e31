package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ReportStatusOpen      = "open"
	ReportStatusResolved  = "resolved"
	ReportStatusDismissed = "dismissed"
)

// Report reasons accepted from guests.
const (
	ReportReasonSpam          = "spam"
	ReportReasonInappropriate = "inappropriate"
	ReportReasonFake          = "fake"
	ReportReasonOther         = "other"
)

// ReportReasons lists the valid report reasons.
var ReportReasons = []string{ReportReasonSpam, ReportReasonInappropriate, ReportReasonFake, ReportReasonOther}

// IsValidReportReason reports whether reason is in the accepted enum.
func IsValidReportReason(reason string) bool {
	for _, r := range ReportReasons {
		if r == reason {
			return true
		}
	}
	return false
}

// ReviewReport flags a review for moderation. A given (review, reporter)
// pair may report at most once; the unique index turns a duplicate insert
// into a MySQL 1062 error.
type ReviewReport struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	ReviewID     uint           `gorm:"not null;uniqueIndex:idx_review_reporter" json:"review_id"`
	Review       *Review        `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE" json:"review,omitempty"`
	ReporterID   uint           `gorm:"not null;uniqueIndex:idx_review_reporter" json:"reporter_id"`
	Reporter     *User          `gorm:"foreignKey:ReporterID;constraint:OnDelete:CASCADE" json:"reporter,omitempty"`
	Reason       string         `gorm:"type:varchar(50);not null" json:"reason"`
	Details      string         `gorm:"type:text" json:"details"`
	Status       string         `gorm:"type:varchar(20);default:'open'" json:"status"`
	ReporterIPv4 string         `gorm:"type:varchar(15);default:null" json:"-"`
	ReporterIPv6 string         `gorm:"type:varchar(45);default:null" json:"-"`
	ResolvedByID *uint          `gorm:"index" json:"resolved_by_id,omitempty"`
	ResolvedBy   *User          `gorm:"foreignKey:ResolvedByID" json:"resolved_by,omitempty"`
	ResolvedAt   *time.Time     `json:"resolved_at,omitempty"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
