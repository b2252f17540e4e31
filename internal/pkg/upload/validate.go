package upload

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"
)

// Limits applied to campsite photo uploads.
const (
	MaxPhotoBytes        = 5 * 1024 * 1024 // 5 MB per photo
	MaxPhotosPerCampsite = 20
)

var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	// Note: SVG is intentionally excluded due to XSS risk without sanitization
}

var allowedMime = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// ValidatePhotoBySniff checks the provided filename (extension) and the first
// bytes (head) against the photo whitelist. Returns detected mime or an error.
func ValidatePhotoBySniff(filename string, head []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExt[ext] {
		return "", errors.New("only JPEG, PNG and WebP photos are supported")
	}

	detected := http.DetectContentType(head)

	// Block obvious scriptable types regardless of extension
	if strings.HasPrefix(detected, "text/html") || strings.HasPrefix(detected, "application/xhtml") {
		return "", errors.New("invalid file type: HTML content is not allowed")
	}
	if strings.HasPrefix(detected, "text/xml") || strings.HasPrefix(detected, "application/xml") || detected == "image/svg+xml" {
		return "", errors.New("SVG/XML files are not supported")
	}

	if allowedMime[detected] {
		return detected, nil
	}

	return "", errors.New("the file type is not supported")
}

// ValidatePhotoSize enforces the per-photo size cap.
func ValidatePhotoSize(size int64) error {
	if size > MaxPhotoBytes {
		return errors.New("photo exceeds the 5 MB size limit")
	}
	return nil
}

// ValidatePhotoCount enforces the per-campsite photo cap for a batch of
// additional uploads.
func ValidatePhotoCount(existing, adding int) error {
	if existing+adding > MaxPhotosPerCampsite {
		return errors.New("a campsite can hold at most 20 photos")
	}
	return nil
}
