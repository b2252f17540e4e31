package repository

import (
	"time"

	"github.com/ThanawatK/CampSiam/app/models"
	"gorm.io/gorm"
)

// inquiryRepository implements the InquiryRepository interface
type inquiryRepository struct {
	db *gorm.DB
}

// NewInquiryRepository creates a new inquiry repository instance
func NewInquiryRepository(db *gorm.DB) InquiryRepository {
	return &inquiryRepository{db: db}
}

// Create creates a new inquiry in the database
func (r *inquiryRepository) Create(inquiry *models.Inquiry) error {
	return r.db.Create(inquiry).Error
}

// GetByID retrieves an inquiry by its ID
func (r *inquiryRepository) GetByID(id uint) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	err := r.db.Preload("Campsite").First(&inquiry, id).Error
	if err != nil {
		return nil, err
	}
	return &inquiry, nil
}

// GetByOwnerID retrieves the owner's inbox, optionally filtered by status,
// newest first
func (r *inquiryRepository) GetByOwnerID(ownerID uint, status string, offset, limit int) ([]models.Inquiry, int64, error) {
	base := r.db.Model(&models.Inquiry{}).Where("owner_id = ?", ownerID)
	if status != "" {
		base = base.Where("status = ?", status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.Preload("Campsite").Where("owner_id = ?", ownerID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var inquiries []models.Inquiry
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&inquiries).Error
	return inquiries, total, err
}

// Reply stores the owner's answer, stamps the reply time and moves the
// inquiry to in_progress. Returns the updated inquiry.
func (r *inquiryRepository) Reply(id uint, reply string) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Campsite").First(&inquiry, id).Error; err != nil {
			return err
		}

		now := time.Now()
		err := tx.Model(&inquiry).Updates(map[string]interface{}{
			"reply":      reply,
			"replied_at": now,
			"status":     models.InquiryStatusInProgress,
		}).Error
		if err != nil {
			return err
		}
		inquiry.Reply = reply
		inquiry.RepliedAt = &now
		inquiry.Status = models.InquiryStatusInProgress
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &inquiry, nil
}

// SetStatus moves an inquiry to the given lifecycle state
func (r *inquiryRepository) SetStatus(id uint, status string) error {
	return r.db.Model(&models.Inquiry{}).Where("id = ?", id).Update("status", status).Error
}

// ListAll retrieves every inquiry, newest first
func (r *inquiryRepository) ListAll() ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	err := r.db.Preload("Campsite").Preload("Owner").
		Order("created_at DESC").Find(&inquiries).Error
	return inquiries, err
}
