package repository

import (
	"sync"

	"gorm.io/gorm"
)

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	db    *gorm.DB
	repos *Repositories
	once  sync.Once
}

// NewFactory creates a new repository factory
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{
		db: db,
	}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.db)
	})
	return f.repos
}

// GetUserRepository returns the user repository instance
func (f *Factory) GetUserRepository() UserRepository {
	return f.GetRepositories().User
}

// GetCampsiteRepository returns the campsite repository instance
func (f *Factory) GetCampsiteRepository() CampsiteRepository {
	return f.GetRepositories().Campsite
}

// GetPhotoRepository returns the photo repository instance
func (f *Factory) GetPhotoRepository() PhotoRepository {
	return f.GetRepositories().Photo
}

// GetReviewRepository returns the review repository instance
func (f *Factory) GetReviewRepository() ReviewRepository {
	return f.GetRepositories().Review
}

// GetOwnerRequestRepository returns the owner request repository instance
func (f *Factory) GetOwnerRequestRepository() OwnerRequestRepository {
	return f.GetRepositories().OwnerRequest
}

// GetInquiryRepository returns the inquiry repository instance
func (f *Factory) GetInquiryRepository() InquiryRepository {
	return f.GetRepositories().Inquiry
}

// GetWishlistRepository returns the wishlist repository instance
func (f *Factory) GetWishlistRepository() WishlistRepository {
	return f.GetRepositories().Wishlist
}

// Global factory instance
var globalFactory *Factory
var factoryOnce sync.Once

// InitializeFactory initializes the global repository factory
func InitializeFactory(db *gorm.DB) {
	factoryOnce.Do(func() {
		globalFactory = NewFactory(db)
	})
}

// GetGlobalFactory returns the global repository factory instance
func GetGlobalFactory() *Factory {
	if globalFactory == nil {
		panic("Repository factory not initialized. Call InitializeFactory first.")
	}
	return globalFactory
}

// GetGlobalRepositories returns the global repositories instance
func GetGlobalRepositories() *Repositories {
	return GetGlobalFactory().GetRepositories()
}

// SetGlobalRepositoriesForTesting swaps the global factory for one backed by
// the given repositories and returns a restore func. Handler tests use it to
// install doubles without a database.
func SetGlobalRepositoriesForTesting(repos *Repositories) func() {
	prev := globalFactory
	f := &Factory{repos: repos}
	f.once.Do(func() {})
	globalFactory = f
	return func() { globalFactory = prev }
}
