package models

import (
	"time"

	"gorm.io/gorm"
)

// Inquiry lifecycle states.
const (
	InquiryStatusNew        = "new"
	InquiryStatusInProgress = "in_progress"
	InquiryStatusResolved   = "resolved"
	InquiryStatusClosed     = "closed"
)

// InquiryStatuses lists the valid inquiry states.
var InquiryStatuses = []string{InquiryStatusNew, InquiryStatusInProgress, InquiryStatusResolved, InquiryStatusClosed}

// IsValidInquiryStatus reports whether s is a known inquiry state.
func IsValidInquiryStatus(s string) bool {
	for _, v := range InquiryStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Inquiry is a guest's booking question about a campsite, addressed to its
// owner. Guests do not need an account; the owner replies over email.
type Inquiry struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	CampsiteID uint           `gorm:"index;not null" json:"campsite_id"`
	Campsite   *Campsite      `gorm:"foreignKey:CampsiteID" json:"campsite,omitempty"`
	OwnerID    uint           `gorm:"index;not null" json:"owner_id"`
	Owner      *User          `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	GuestName  string         `gorm:"type:varchar(150);not null" json:"guest_name" validate:"required,min=2,max=150"`
	GuestEmail string         `gorm:"type:varchar(200);not null" json:"guest_email" validate:"required,email,max=200"`
	Message    string         `gorm:"type:text;not null" json:"message" validate:"required,min=10,max=4000"`
	Status     string         `gorm:"type:varchar(20);index;default:'new'" json:"status"`
	Reply      string         `gorm:"type:text" json:"reply,omitempty"`
	RepliedAt  *time.Time     `json:"replied_at,omitempty"`
	ReadAt     *time.Time     `json:"read_at,omitempty"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarkRead stamps the read timestamp once.
func (i *Inquiry) MarkRead(db *gorm.DB) error {
	if i.ReadAt != nil {
		return nil
	}
	now := time.Now()
	i.ReadAt = &now
	return db.Model(i).Update("read_at", i.ReadAt).Error
}
