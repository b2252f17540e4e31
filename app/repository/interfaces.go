package repository

import (
	"gorm.io/gorm"

	"github.com/ThanawatK/CampSiam/app/models"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
	List(offset, limit int) ([]models.User, error)
	Count() (int64, error)
	SetRole(id uint, role string) error
}

// CampsiteSearch collects the public search filters.
type CampsiteSearch struct {
	Query    string
	Province string
	Type     string
	Page     int
	PerPage  int
}

// CampsiteRepository defines the interface for campsite-related database operations
type CampsiteRepository interface {
	Create(campsite *models.Campsite) error
	GetByID(id uint) (*models.Campsite, error)
	GetByUUID(uuid string) (*models.Campsite, error)
	GetByShareCode(code string) (*models.Campsite, error)
	GetDetailByShareCode(code string) (*models.Campsite, error)
	GetByOwnerID(ownerID uint) ([]models.Campsite, error)
	Update(campsite *models.Campsite) error
	Delete(id uint) error
	SearchApproved(search CampsiteSearch) ([]models.Campsite, int64, error)
	GetPending(offset, limit int) ([]models.Campsite, int64, error)
	GetApprovedForSitemap() ([]models.Campsite, error)
	CountByOwnerID(ownerID uint) (int64, error)
	SetAmenities(campsite *models.Campsite, amenityIDs []uint) error
	ListAll() ([]models.Campsite, error)
}

// PhotoRepository defines the interface for campsite photo operations
type PhotoRepository interface {
	Create(photo *models.CampsitePhoto) error
	GetByID(id uint) (*models.CampsitePhoto, error)
	GetByCampsiteID(campsiteID uint) ([]models.CampsitePhoto, error)
	CountByCampsiteID(campsiteID uint) (int64, error)
	Delete(id uint) error
	// Reorder rewrites sort_order for the whole gallery in one transaction
	// and returns the photos in their new order.
	Reorder(campsiteID uint, orders []models.PhotoOrder) ([]models.CampsitePhoto, error)
	// SetPrimary clears the previous primary flag and sets the new one in
	// one transaction.
	SetPrimary(campsiteID, photoID uint) error
	NextSortOrder(campsiteID uint) (int, error)
}

// ReviewRepository defines the interface for review and report operations
type ReviewRepository interface {
	Create(review *models.Review) error
	GetByID(id uint) (*models.Review, error)
	GetVisibleByCampsiteID(campsiteID uint) ([]models.Review, error)
	Delete(id uint) error
	// CreateReport inserts a report and maintains the review's denormalized
	// report_count / is_reported fields in the same transaction.
	CreateReport(report *models.ReviewReport) error
	GetReported(offset, limit int) ([]models.Review, int64, error)
	GetOpenReportsByReviewID(reviewID uint) ([]models.ReviewReport, error)
	GetReportByID(id uint) (*models.ReviewReport, error)
	// Hide marks a review hidden and resolves its open reports in one
	// transaction.
	Hide(reviewID uint, reason string, resolvedBy uint) error
	// DismissReport dismisses one report and decrements the review's
	// report_count, clearing is_reported at zero, in one transaction.
	DismissReport(reportID uint, resolvedBy uint) error
}

// OwnerRequestRepository defines the interface for owner request operations
type OwnerRequestRepository interface {
	Create(request *models.OwnerRequest) error
	GetByID(id uint) (*models.OwnerRequest, error)
	GetPendingByUserID(userID uint) (*models.OwnerRequest, error)
	GetPending(offset, limit int) ([]models.OwnerRequest, int64, error)
	// Approve resolves the request and flips the user role to owner in one
	// transaction.
	Approve(id uint, resolvedBy uint) error
	Reject(id uint, reason string, resolvedBy uint) error
}

// InquiryRepository defines the interface for booking inquiry operations
type InquiryRepository interface {
	Create(inquiry *models.Inquiry) error
	GetByID(id uint) (*models.Inquiry, error)
	GetByOwnerID(ownerID uint, status string, offset, limit int) ([]models.Inquiry, int64, error)
	Reply(id uint, reply string) (*models.Inquiry, error)
	SetStatus(id uint, status string) error
	ListAll() ([]models.Inquiry, error)
}

// WishlistRepository defines the interface for wishlist operations
type WishlistRepository interface {
	// Toggle adds the campsite to the user's wishlist, or removes it when
	// already present. Returns true when the item is now on the list.
	Toggle(userID, campsiteID uint) (bool, error)
	GetByUserID(userID uint) ([]models.WishlistItem, error)
	Contains(userID, campsiteID uint) (bool, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	User         UserRepository
	Campsite     CampsiteRepository
	Photo        PhotoRepository
	Review       ReviewRepository
	OwnerRequest OwnerRequestRepository
	Inquiry      InquiryRepository
	Wishlist     WishlistRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Campsite:     NewCampsiteRepository(db),
		Photo:        NewPhotoRepository(db),
		Review:       NewReviewRepository(db),
		OwnerRequest: NewOwnerRequestRepository(db),
		Inquiry:      NewInquiryRepository(db),
		Wishlist:     NewWishlistRepository(db),
	}
}
