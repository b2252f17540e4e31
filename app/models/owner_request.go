package models

import (
	"time"

	"gorm.io/gorm"
)

// Owner request lifecycle mirrors the campsite moderation lifecycle.
const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

// OwnerRequest is a user's application to list campsites on the marketplace.
type OwnerRequest struct {
	ID                  uint           `gorm:"primaryKey" json:"id"`
	UserID              uint           `gorm:"index;not null" json:"user_id"`
	User                *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	BusinessName        string         `gorm:"type:varchar(255);not null" json:"business_name" validate:"required,min=3,max=255"`
	BusinessDescription string         `gorm:"type:text" json:"business_description" validate:"required,min=20"`
	Phone               string         `gorm:"type:varchar(30);not null" json:"phone" validate:"required,max=30"`
	Status              string         `gorm:"type:varchar(20);index;default:'pending'" json:"status"`
	RejectionReason     string         `gorm:"type:text" json:"rejection_reason,omitempty"`
	ResolvedByID        *uint          `gorm:"index" json:"resolved_by_id,omitempty"`
	ResolvedBy          *User          `gorm:"foreignKey:ResolvedByID" json:"resolved_by,omitempty"`
	ResolvedAt          *time.Time     `json:"resolved_at,omitempty"`
	CreatedAt           time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsPending reports whether the request still waits for moderation.
func (r *OwnerRequest) IsPending() bool {
	return r.Status == RequestStatusPending
}
