package models

import (
	"time"

	"gorm.io/gorm"
)

// Review is a guest's rating of a campsite. ReportCount and IsReported are
// denormalized from review_reports and maintained inside the same
// transaction as the report mutation.
type Review struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	CampsiteID   uint           `gorm:"index;not null;uniqueIndex:idx_review_author" json:"campsite_id"`
	Campsite     *Campsite      `gorm:"foreignKey:CampsiteID" json:"campsite,omitempty"`
	UserID       uint           `gorm:"index;not null;uniqueIndex:idx_review_author" json:"user_id"`
	User         *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Rating       int            `gorm:"type:int;not null" json:"rating" validate:"required,gte=1,lte=5"`
	Body         string         `gorm:"type:text" json:"body" validate:"max=2000"`
	ReportCount  int            `gorm:"default:0" json:"report_count"`
	IsReported   bool           `gorm:"default:false;index" json:"is_reported"`
	IsHidden     bool           `gorm:"default:false" json:"is_hidden"`
	HiddenReason string         `gorm:"type:text" json:"hidden_reason,omitempty"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsVisible reports whether the review shows up on public detail pages.
func (r *Review) IsVisible() bool {
	return !r.IsHidden
}

// NextReportCount computes the denormalized counter after one report is
// dismissed: the count drops by one, clamped at zero, and the second return
// says whether the review stays flagged for moderation.
func NextReportCount(current int) (int, bool) {
	next := current - 1
	if next < 0 {
		next = 0
	}
	return next, next > 0
}
