package models

import (
	"time"

	"gorm.io/gorm"
)

// WishlistItem saves a campsite for a user. The unique pair index makes the
// toggle idempotent on the insert side.
type WishlistItem struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     uint           `gorm:"not null;uniqueIndex:idx_wishlist_pair" json:"user_id"`
	User       *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CampsiteID uint           `gorm:"not null;uniqueIndex:idx_wishlist_pair" json:"campsite_id"`
	Campsite   *Campsite      `gorm:"foreignKey:CampsiteID" json:"campsite,omitempty"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
