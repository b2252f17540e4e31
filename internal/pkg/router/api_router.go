package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/ThanawatK/CampSiam/app/controllers"
	apiv1 "github.com/ThanawatK/CampSiam/internal/api/v1"
	"github.com/ThanawatK/CampSiam/internal/pkg/constants"
	"github.com/ThanawatK/CampSiam/internal/pkg/middleware"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group(constants.APIRoute, limiter.New(limiter.Config{
		Max:        120,
		Expiration: 1 * time.Minute,
	}))

	// Public browse and search
	api.Get("/campsites", controllers.HandleCampsiteSearch)
	api.Get("/campsites/:code", controllers.HandleCampsiteDetail)
	api.Post("/campsites/:code/inquiries", controllers.HandleCreateInquiry)
	api.Post("/campsites/:code/reviews", middleware.RequireAuth, controllers.HandleCreateReview)
	api.Post("/reviews/:id/report", middleware.RequireAuth, controllers.HandleReportReview)
	api.Get("/provinces", controllers.HandleProvinces)
	api.Get("/amenities", controllers.HandleAmenities)
	api.Post("/vitals", controllers.HandleVitalsBeacon)

	// Accounts and sessions
	auth := api.Group("/auth")
	auth.Post("/register", controllers.HandleRegister)
	auth.Post("/login", controllers.HandleLogin)
	auth.Post("/logout", middleware.RequireAuth, controllers.HandleLogout)
	auth.Get("/me", controllers.HandleMe)

	api.Post("/owner-requests", middleware.RequireAuth, controllers.HandleCreateOwnerRequest)

	// Wishlist
	wishlist := api.Group("/wishlist", middleware.RequireAuth)
	wishlist.Get("/", controllers.HandleWishlist)
	wishlist.Post("/:campsiteID/toggle", controllers.HandleWishlistToggle)

	// Owner dashboard
	dashboard := api.Group("/dashboard", middleware.RequireOwner)
	dashboard.Get("/campsites", controllers.HandleDashboardCampsites)
	dashboard.Post("/campsites", controllers.HandleDashboardCreateCampsite)
	dashboard.Put("/campsites/:id", controllers.HandleDashboardUpdateCampsite)
	dashboard.Delete("/campsites/:id", controllers.HandleDashboardDeleteCampsite)
	dashboard.Post("/campsites/:id/photos", controllers.HandleDashboardUploadPhoto)
	dashboard.Post("/campsites/:id/photos/reorder", controllers.HandleDashboardReorderPhotos)
	dashboard.Patch("/campsites/:id/photos/:photoID/primary", controllers.HandleDashboardSetPrimaryPhoto)
	dashboard.Delete("/campsites/:id/photos/:photoID", controllers.HandleDashboardDeletePhoto)
	dashboard.Get("/inquiries", controllers.HandleDashboardInquiries)
	dashboard.Post("/inquiries/:id/reply", controllers.HandleDashboardReplyInquiry)
	dashboard.Patch("/inquiries/:id/status", controllers.HandleDashboardInquiryStatus)
	dashboard.Patch("/inquiries/:id/read", controllers.HandleDashboardMarkInquiryRead)

	// Admin moderation console
	admin := api.Group("/admin", middleware.RequireAdmin)
	admin.Get("/stats", controllers.HandleAdminStats)
	admin.Get("/campsites/pending", controllers.HandleAdminPendingCampsites)
	admin.Post("/campsites/:id/approve", controllers.HandleAdminApproveCampsite)
	admin.Post("/campsites/:id/reject", controllers.HandleAdminRejectCampsite)
	admin.Get("/owner-requests/pending", controllers.HandleAdminPendingOwnerRequests)
	admin.Post("/owner-requests/:id/approve", controllers.HandleAdminApproveOwnerRequest)
	admin.Post("/owner-requests/:id/reject", controllers.HandleAdminRejectOwnerRequest)
	admin.Get("/reviews/reported", controllers.HandleAdminReportedReviews)
	admin.Post("/reviews/:id/hide", controllers.HandleAdminHideReview)
	admin.Delete("/reviews/:id", controllers.HandleAdminDeleteReview)
	admin.Post("/reports/:id/dismiss", controllers.HandleAdminDismissReport)
	admin.Get("/export/campsites.xlsx", controllers.HandleAdminExportCampsites)
	admin.Get("/export/inquiries.xlsx", controllers.HandleAdminExportInquiries)

	// API v1 routes
	v1 := api.Group("/v1")
	apiServer := apiv1.NewAPIServer()
	apiv1.RegisterHandlers(v1, apiServer)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
