package repository

import (
	"strings"

	"github.com/ThanawatK/CampSiam/app/models"
	"gorm.io/gorm"
)

// campsiteRepository implements the CampsiteRepository interface
type campsiteRepository struct {
	db *gorm.DB
}

// NewCampsiteRepository creates a new campsite repository instance
func NewCampsiteRepository(db *gorm.DB) CampsiteRepository {
	return &campsiteRepository{db: db}
}

// Create creates a new campsite in the database
func (r *campsiteRepository) Create(campsite *models.Campsite) error {
	return r.db.Create(campsite).Error
}

// GetByID retrieves a campsite by its ID
func (r *campsiteRepository) GetByID(id uint) (*models.Campsite, error) {
	var campsite models.Campsite
	err := r.db.Preload("Photos", photoOrderScope).First(&campsite, id).Error
	if err != nil {
		return nil, err
	}
	return &campsite, nil
}

// GetByUUID retrieves a campsite by its UUID
func (r *campsiteRepository) GetByUUID(uuid string) (*models.Campsite, error) {
	var campsite models.Campsite
	err := r.db.Preload("Photos", photoOrderScope).Preload("Amenities").
		Where("uuid = ?", uuid).First(&campsite).Error
	if err != nil {
		return nil, err
	}
	return &campsite, nil
}

// GetByShareCode retrieves a campsite by its public share code
func (r *campsiteRepository) GetByShareCode(code string) (*models.Campsite, error) {
	var campsite models.Campsite
	err := r.db.Where("share_code = ?", code).First(&campsite).Error
	if err != nil {
		return nil, err
	}
	return &campsite, nil
}

// GetDetailByShareCode retrieves a campsite with everything the public
// detail page needs in one query.
func (r *campsiteRepository) GetDetailByShareCode(code string) (*models.Campsite, error) {
	var campsite models.Campsite
	err := r.db.Preload("Photos", photoOrderScope).Preload("Amenities").
		Preload("Reviews", "is_hidden = ?", false).Preload("Reviews.User").
		Preload("Owner").
		Where("share_code = ?", code).First(&campsite).Error
	if err != nil {
		return nil, err
	}
	return &campsite, nil
}

// GetByOwnerID retrieves all campsites belonging to an owner
func (r *campsiteRepository) GetByOwnerID(ownerID uint) ([]models.Campsite, error) {
	var campsites []models.Campsite
	err := r.db.Preload("Photos", photoOrderScope).
		Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&campsites).Error
	return campsites, err
}

// Update updates an existing campsite in the database
func (r *campsiteRepository) Update(campsite *models.Campsite) error {
	return r.db.Save(campsite).Error
}

// Delete soft deletes a campsite and its photos
func (r *campsiteRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("campsite_id = ?", id).Delete(&models.CampsitePhoto{}).Error; err != nil {
			return err
		}
		if err := tx.Where("campsite_id = ?", id).Delete(&models.Inquiry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Campsite{}, id).Error
	})
}

// SearchApproved runs the public search over approved campsites
func (r *campsiteRepository) SearchApproved(search CampsiteSearch) ([]models.Campsite, int64, error) {
	query := r.db.Model(&models.Campsite{}).Where("status = ?", models.CampsiteStatusApproved)

	if q := strings.TrimSpace(search.Query); q != "" {
		pattern := "%" + q + "%"
		query = query.Where("name LIKE ? OR name_en LIKE ? OR description LIKE ?", pattern, pattern, pattern)
	}
	if search.Province != "" {
		query = query.Where("province = ?", search.Province)
	}
	if search.Type != "" {
		query = query.Where("type = ?", search.Type)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := search.Page
	if page < 1 {
		page = 1
	}
	perPage := search.PerPage
	if perPage < 1 {
		perPage = 12
	}

	var campsites []models.Campsite
	err := query.Preload("Photos", photoOrderScope).
		Order("created_at DESC").
		Offset((page - 1) * perPage).Limit(perPage).
		Find(&campsites).Error
	return campsites, total, err
}

// GetPending retrieves the moderation queue, oldest submissions first
func (r *campsiteRepository) GetPending(offset, limit int) ([]models.Campsite, int64, error) {
	var total int64
	base := r.db.Model(&models.Campsite{}).Where("status = ?", models.CampsiteStatusPending)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var campsites []models.Campsite
	err := r.db.Preload("Owner").Preload("Photos", photoOrderScope).
		Where("status = ?", models.CampsiteStatusPending).
		Order("created_at ASC").Offset(offset).Limit(limit).
		Find(&campsites).Error
	return campsites, total, err
}

// GetApprovedForSitemap retrieves the share codes and timestamps of all
// approved campsites for sitemap generation
func (r *campsiteRepository) GetApprovedForSitemap() ([]models.Campsite, error) {
	var campsites []models.Campsite
	err := r.db.Select("id", "share_code", "updated_at").
		Where("status = ?", models.CampsiteStatusApproved).
		Order("id ASC").Find(&campsites).Error
	return campsites, err
}

// CountByOwnerID returns the number of campsites for a specific owner
func (r *campsiteRepository) CountByOwnerID(ownerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Campsite{}).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}

// SetAmenities replaces the campsite's amenity associations
func (r *campsiteRepository) SetAmenities(campsite *models.Campsite, amenityIDs []uint) error {
	var amenities []models.Amenity
	if len(amenityIDs) > 0 {
		if err := r.db.Find(&amenities, amenityIDs).Error; err != nil {
			return err
		}
	}
	return r.db.Model(campsite).Association("Amenities").Replace(amenities)
}

// ListAll retrieves every campsite regardless of status, newest first
func (r *campsiteRepository) ListAll() ([]models.Campsite, error) {
	var campsites []models.Campsite
	err := r.db.Preload("Owner").Order("created_at DESC").Find(&campsites).Error
	return campsites, err
}

// photoOrderScope keeps preloaded galleries in their drag-and-drop order.
func photoOrderScope(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC")
}
