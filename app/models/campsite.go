package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ThanawatK/CampSiam/internal/pkg/shortener"
)

// Moderation lifecycle shared by campsites and owner requests.
const (
	CampsiteStatusPending  = "pending"
	CampsiteStatusApproved = "approved"
	CampsiteStatusRejected = "rejected"
)

// Campsite types offered on the marketplace.
const (
	CampsiteTypeTent     = "tent"
	CampsiteTypeRV       = "rv"
	CampsiteTypeGlamping = "glamping"
	CampsiteTypeCabin    = "cabin"
)

// CampsiteTypes lists the valid listing types in display order.
var CampsiteTypes = []string{CampsiteTypeTent, CampsiteTypeRV, CampsiteTypeGlamping, CampsiteTypeCabin}

// IsValidCampsiteType reports whether t is a known listing type.
func IsValidCampsiteType(t string) bool {
	for _, v := range CampsiteTypes {
		if v == t {
			return true
		}
	}
	return false
}

type Campsite struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	UUID            string          `gorm:"type:char(36) CHARACTER SET utf8 COLLATE utf8_bin;uniqueIndex;not null" json:"uuid"`
	OwnerID         uint            `gorm:"index;not null" json:"owner_id"`
	Owner           User            `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Name            string          `gorm:"type:varchar(255);not null" json:"name" validate:"required,min=3,max=255"`
	NameEN          string          `gorm:"type:varchar(255)" json:"name_en" validate:"max=255"`
	Description     string          `gorm:"type:text" json:"description" validate:"required,min=50"`
	Type            string          `gorm:"type:varchar(20);not null" json:"type" validate:"oneof=tent rv glamping cabin"`
	Province        string          `gorm:"type:varchar(50);index;not null" json:"province" validate:"required"`
	PriceMin        int             `gorm:"type:int" json:"price_min" validate:"gte=0"`
	PriceMax        int             `gorm:"type:int" json:"price_max" validate:"gtefield=PriceMin"`
	Latitude        *float64        `gorm:"type:decimal(10,8)" json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude       *float64        `gorm:"type:decimal(11,8)" json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Status          string          `gorm:"type:varchar(20);index;default:'pending'" json:"status"`
	RejectionReason string          `gorm:"type:text" json:"rejection_reason,omitempty"`
	ShareCode       string          `gorm:"type:varchar(255) CHARACTER SET utf8 COLLATE utf8_bin;uniqueIndex" json:"share_code"`
	ViewCount       int             `gorm:"default:0" json:"view_count"`
	Photos          []CampsitePhoto `gorm:"foreignKey:CampsiteID" json:"photos,omitempty"`
	Amenities       []Amenity       `gorm:"many2many:campsite_amenities;" json:"amenities,omitempty"`
	Reviews         []Review        `gorm:"foreignKey:CampsiteID" json:"reviews,omitempty"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `gorm:"index" json:"-"`
}

// BeforeCreate assigns the public identifiers before the row exists.
func (cs *Campsite) BeforeCreate(tx *gorm.DB) error {
	if cs.UUID == "" {
		cs.UUID = uuid.New().String()
	}
	if cs.ShareCode == "" {
		// A real code needs the row id; set a placeholder for the insert.
		cs.ShareCode = "temp-" + cs.UUID[:8]
	}
	if cs.Status == "" {
		cs.Status = CampsiteStatusPending
	}
	return nil
}

// AfterCreate derives the share code from the assigned id.
func (cs *Campsite) AfterCreate(tx *gorm.DB) error {
	if len(cs.ShareCode) >= 5 && cs.ShareCode[:5] == "temp-" {
		cs.ShareCode = shortener.EncodeID(cs.ID)
		return tx.Model(cs).Update("share_code", cs.ShareCode).Error
	}
	return nil
}

// IsApproved reports whether the campsite is publicly visible.
func (cs *Campsite) IsApproved() bool {
	return cs.Status == CampsiteStatusApproved
}

// Approve moves a pending or rejected campsite to approved and clears any
// stale rejection reason.
func (cs *Campsite) Approve(db *gorm.DB) error {
	cs.Status = CampsiteStatusApproved
	cs.RejectionReason = ""
	return db.Model(cs).Updates(map[string]interface{}{
		"status":           CampsiteStatusApproved,
		"rejection_reason": "",
	}).Error
}

// Reject moves a campsite to rejected with the moderator's reason.
func (cs *Campsite) Reject(db *gorm.DB, reason string) error {
	cs.Status = CampsiteStatusRejected
	cs.RejectionReason = reason
	return db.Model(cs).Updates(map[string]interface{}{
		"status":           CampsiteStatusRejected,
		"rejection_reason": reason,
	}).Error
}

// Resubmit returns a rejected campsite to the moderation queue.
func (cs *Campsite) Resubmit(db *gorm.DB) error {
	cs.Status = CampsiteStatusPending
	cs.RejectionReason = ""
	return db.Model(cs).Updates(map[string]interface{}{
		"status":           CampsiteStatusPending,
		"rejection_reason": "",
	}).Error
}

// FindCampsiteByUUID finds a campsite by its UUID
func FindCampsiteByUUID(db *gorm.DB, id string) (*Campsite, error) {
	var campsite Campsite
	result := db.Where("uuid = ?", id).First(&campsite)
	return &campsite, result.Error
}

// FindCampsiteByShareCode finds a campsite by its public share code
func FindCampsiteByShareCode(db *gorm.DB, code string) (*Campsite, error) {
	var campsite Campsite
	result := db.Where("share_code = ?", code).First(&campsite)
	return &campsite, result.Error
}
