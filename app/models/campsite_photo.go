package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CampsitePhoto is one image of a campsite gallery. SortOrder is a dense
// zero-based ordering used for display; at most one photo per campsite
// carries the primary flag.
type CampsitePhoto struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	UUID            string         `gorm:"type:char(36) CHARACTER SET utf8 COLLATE utf8_bin;uniqueIndex;not null" json:"uuid"`
	CampsiteID      uint           `gorm:"index;not null" json:"campsite_id"`
	Campsite        *Campsite      `gorm:"foreignKey:CampsiteID" json:"campsite,omitempty"`
	FilePath        string         `gorm:"type:varchar(255);not null" json:"file_path"`
	FileName        string         `gorm:"type:varchar(255);not null" json:"file_name"`
	FileSize        int64          `gorm:"type:bigint" json:"file_size"`
	FileType        string         `gorm:"type:varchar(50)" json:"file_type"`
	Width           int            `gorm:"type:int" json:"width"`
	Height          int            `gorm:"type:int" json:"height"`
	AltText         string         `gorm:"type:varchar(255)" json:"alt_text"`
	SortOrder       int            `gorm:"type:int;not null;default:0;index" json:"sort_order"`
	IsPrimary       bool           `gorm:"default:false" json:"is_primary"`
	ThumbSmallPath  string         `gorm:"type:varchar(255)" json:"thumb_small_path"`
	ThumbMediumPath string         `gorm:"type:varchar(255)" json:"thumb_medium_path"`
	ExifData        JSON           `gorm:"type:json" json:"exif_data,omitempty"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate assigns the public identifier.
func (p *CampsitePhoto) BeforeCreate(tx *gorm.DB) error {
	if p.UUID == "" {
		p.UUID = uuid.New().String()
	}
	return nil
}

// PhotoOrder pairs a photo id with its requested position in a reorder call.
type PhotoOrder struct {
	ID        uint `json:"id" validate:"required"`
	SortOrder int  `json:"sort_order" validate:"gte=0"`
}

// NormalizeSortOrder sorts the requested order by its sort_order values and
// rewrites them as a dense 0..N-1 sequence. Every reorder recomputes the
// order for the whole list, not just the moved item, so gaps and duplicates
// from the client cannot survive.
func NormalizeSortOrder(orders []PhotoOrder) []PhotoOrder {
	normalized := make([]PhotoOrder, len(orders))
	copy(normalized, orders)
	sort.SliceStable(normalized, func(i, j int) bool {
		return normalized[i].SortOrder < normalized[j].SortOrder
	})
	for i := range normalized {
		normalized[i].SortOrder = i
	}
	return normalized
}

// MatchesPhotoSet reports whether the requested order mentions exactly the
// given photo ids, each once.
func MatchesPhotoSet(orders []PhotoOrder, photos []CampsitePhoto) bool {
	if len(orders) != len(photos) {
		return false
	}
	want := make(map[uint]bool, len(photos))
	for _, p := range photos {
		want[p.ID] = true
	}
	seen := make(map[uint]bool, len(orders))
	for _, o := range orders {
		if !want[o.ID] || seen[o.ID] {
			return false
		}
		seen[o.ID] = true
	}
	return true
}
