package models

import (
	"time"

	"gorm.io/gorm"
)

// Amenity is a bilingual facility label attached to campsites.
type Amenity struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	NameTH    string         `gorm:"type:varchar(100);not null" json:"name_th" validate:"required,max=100"`
	NameEN    string         `gorm:"type:varchar(100);not null" json:"name_en" validate:"required,max=100"`
	Icon      string         `gorm:"type:varchar(50)" json:"icon"`
	Campsites []Campsite     `gorm:"many2many:campsite_amenities;" json:"-"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
