package repository

import (
	"errors"

	"github.com/ThanawatK/CampSiam/app/models"
	"gorm.io/gorm"
)

// wishlistRepository implements the WishlistRepository interface
type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository creates a new wishlist repository instance
func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

// Toggle adds the campsite to the user's wishlist or removes it when already
// present. Returns true when the item is now saved.
func (r *wishlistRepository) Toggle(userID, campsiteID uint) (bool, error) {
	var saved bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var item models.WishlistItem
		err := tx.Where("user_id = ? AND campsite_id = ?", userID, campsiteID).First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			saved = true
			return tx.Create(&models.WishlistItem{UserID: userID, CampsiteID: campsiteID}).Error
		}
		if err != nil {
			return err
		}
		saved = false
		return tx.Unscoped().Delete(&item).Error
	})
	if err != nil {
		return false, err
	}
	return saved, nil
}

// GetByUserID retrieves the user's saved campsites, newest first
func (r *wishlistRepository) GetByUserID(userID uint) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	err := r.db.Preload("Campsite").Preload("Campsite.Photos", photoOrderScope).
		Where("user_id = ?", userID).Order("created_at DESC").Find(&items).Error
	return items, err
}

// Contains reports whether the campsite is on the user's wishlist
func (r *wishlistRepository) Contains(userID, campsiteID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.WishlistItem{}).
		Where("user_id = ? AND campsite_id = ?", userID, campsiteID).
		Count(&count).Error
	return count > 0, err
}
