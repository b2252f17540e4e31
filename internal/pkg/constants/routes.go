package constants

// Static route constants
const (
	UploadsRoute = "/uploads"
	PublicRoute  = "/"
	// Upload path without leading slash for URL construction
	UploadsPath = "uploads"

	// API group prefix
	APIRoute = "/api"
)
