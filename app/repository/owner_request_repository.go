package repository

import (
	"time"

	"github.com/ThanawatK/CampSiam/app/models"
	"gorm.io/gorm"
)

// ownerRequestRepository implements the OwnerRequestRepository interface
type ownerRequestRepository struct {
	db *gorm.DB
}

// NewOwnerRequestRepository creates a new owner request repository instance
func NewOwnerRequestRepository(db *gorm.DB) OwnerRequestRepository {
	return &ownerRequestRepository{db: db}
}

// Create creates a new owner request in the database
func (r *ownerRequestRepository) Create(request *models.OwnerRequest) error {
	return r.db.Create(request).Error
}

// GetByID retrieves an owner request by its ID
func (r *ownerRequestRepository) GetByID(id uint) (*models.OwnerRequest, error) {
	var request models.OwnerRequest
	err := r.db.Preload("User").First(&request, id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// GetPendingByUserID retrieves a user's open request, if any
func (r *ownerRequestRepository) GetPendingByUserID(userID uint) (*models.OwnerRequest, error) {
	var request models.OwnerRequest
	err := r.db.Where("user_id = ? AND status = ?", userID, models.RequestStatusPending).
		First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// GetPending retrieves the moderation queue, oldest applications first
func (r *ownerRequestRepository) GetPending(offset, limit int) ([]models.OwnerRequest, int64, error) {
	var total int64
	base := r.db.Model(&models.OwnerRequest{}).Where("status = ?", models.RequestStatusPending)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var requests []models.OwnerRequest
	err := r.db.Preload("User").
		Where("status = ?", models.RequestStatusPending).
		Order("created_at ASC").Offset(offset).Limit(limit).
		Find(&requests).Error
	return requests, total, err
}

// Approve resolves the request and promotes the applicant to the owner role
// in one transaction.
func (r *ownerRequestRepository) Approve(id uint, resolvedBy uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var request models.OwnerRequest
		if err := tx.First(&request, id).Error; err != nil {
			return err
		}
		if request.Status != models.RequestStatusPending {
			return gorm.ErrRecordNotFound
		}

		now := time.Now()
		err := tx.Model(&request).Updates(map[string]interface{}{
			"status":         models.RequestStatusApproved,
			"resolved_by_id": resolvedBy,
			"resolved_at":    now,
		}).Error
		if err != nil {
			return err
		}

		// Admins keep their role; everyone else becomes an owner.
		return tx.Model(&models.User{}).
			Where("id = ? AND role = ?", request.UserID, models.ROLE_USER).
			Update("role", models.ROLE_OWNER).Error
	})
}

// Reject resolves the request with the moderator's reason
func (r *ownerRequestRepository) Reject(id uint, reason string, resolvedBy uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var request models.OwnerRequest
		if err := tx.First(&request, id).Error; err != nil {
			return err
		}
		if request.Status != models.RequestStatusPending {
			return gorm.ErrRecordNotFound
		}

		now := time.Now()
		return tx.Model(&request).Updates(map[string]interface{}{
			"status":           models.RequestStatusRejected,
			"rejection_reason": reason,
			"resolved_by_id":   resolvedBy,
			"resolved_at":      now,
		}).Error
	})
}
