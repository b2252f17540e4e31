package repository

import (
	"fmt"

	"github.com/ThanawatK/CampSiam/app/models"
	"gorm.io/gorm"
)

// photoRepository implements the PhotoRepository interface
type photoRepository struct {
	db *gorm.DB
}

// NewPhotoRepository creates a new photo repository instance
func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepository{db: db}
}

// Create creates a new campsite photo in the database
func (r *photoRepository) Create(photo *models.CampsitePhoto) error {
	return r.db.Create(photo).Error
}

// GetByID retrieves a photo by its ID
func (r *photoRepository) GetByID(id uint) (*models.CampsitePhoto, error) {
	var photo models.CampsitePhoto
	err := r.db.First(&photo, id).Error
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

// GetByCampsiteID retrieves the campsite gallery in display order
func (r *photoRepository) GetByCampsiteID(campsiteID uint) ([]models.CampsitePhoto, error) {
	var photos []models.CampsitePhoto
	err := r.db.Where("campsite_id = ?", campsiteID).
		Order("sort_order ASC").Find(&photos).Error
	return photos, err
}

// CountByCampsiteID returns the number of photos for a campsite
func (r *photoRepository) CountByCampsiteID(campsiteID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.CampsitePhoto{}).Where("campsite_id = ?", campsiteID).Count(&count).Error
	return count, err
}

// Delete soft deletes a photo by its ID
func (r *photoRepository) Delete(id uint) error {
	return r.db.Delete(&models.CampsitePhoto{}, id).Error
}

// Reorder rewrites the sort order of the whole gallery in one transaction.
// The request must mention exactly the photos the campsite has; the stored
// order is rewritten as a dense 0..N-1 sequence so client gaps and
// duplicates cannot survive. Returns the gallery in its new order.
func (r *photoRepository) Reorder(campsiteID uint, orders []models.PhotoOrder) ([]models.CampsitePhoto, error) {
	var photos []models.CampsitePhoto
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing []models.CampsitePhoto
		if err := tx.Where("campsite_id = ?", campsiteID).Find(&existing).Error; err != nil {
			return err
		}
		if !models.MatchesPhotoSet(orders, existing) {
			return fmt.Errorf("photo order does not match gallery: %w", gorm.ErrRecordNotFound)
		}

		for _, o := range models.NormalizeSortOrder(orders) {
			err := tx.Model(&models.CampsitePhoto{}).
				Where("id = ? AND campsite_id = ?", o.ID, campsiteID).
				Update("sort_order", o.SortOrder).Error
			if err != nil {
				return err
			}
		}

		return tx.Where("campsite_id = ?", campsiteID).
			Order("sort_order ASC").Find(&photos).Error
	})
	if err != nil {
		return nil, err
	}
	return photos, nil
}

// SetPrimary clears the previous primary flag and marks the given photo as
// primary in one transaction.
func (r *photoRepository) SetPrimary(campsiteID, photoID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var photo models.CampsitePhoto
		err := tx.Where("id = ? AND campsite_id = ?", photoID, campsiteID).First(&photo).Error
		if err != nil {
			return err
		}

		err = tx.Model(&models.CampsitePhoto{}).
			Where("campsite_id = ? AND is_primary = ?", campsiteID, true).
			Update("is_primary", false).Error
		if err != nil {
			return err
		}

		return tx.Model(&models.CampsitePhoto{}).
			Where("id = ?", photoID).
			Update("is_primary", true).Error
	})
}

// NextSortOrder returns the position a newly uploaded photo takes at the end
// of the gallery
func (r *photoRepository) NextSortOrder(campsiteID uint) (int, error) {
	var max *int
	err := r.db.Model(&models.CampsitePhoto{}).
		Where("campsite_id = ?", campsiteID).
		Select("MAX(sort_order)").Row().Scan(&max)
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max + 1, nil
}
