package photoprocessor

import (
	"path/filepath"
	"strings"

	"github.com/ThanawatK/CampSiam/internal/pkg/constants"
)

// WebPath converts a storage-relative photo path into the URL it is served
// under. Empty input stays empty so a missing variant never links to the
// uploads root.
func WebPath(rel string) string {
	if rel == "" {
		return ""
	}
	webPath := "/" + filepath.Join(constants.UploadsPath, rel)
	// Convert to forward slashes for web URLs
	return strings.ReplaceAll(webPath, "\\", "/")
}
