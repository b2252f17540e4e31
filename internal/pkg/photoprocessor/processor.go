package photoprocessor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2/log"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"

	"github.com/ThanawatK/CampSiam/internal/pkg/env"
	"github.com/ThanawatK/CampSiam/internal/pkg/storage"
)

// Thumbnail variant widths. Aspect ratio is preserved.
const (
	ThumbSmallWidth  = 320
	ThumbMediumWidth = 800
	webpQuality      = 85
)

// Result describes a processed campsite photo: the stored original plus the
// generated WebP thumbnail variants and any coordinates found in EXIF.
type Result struct {
	FilePath        string // directory of the stored original, relative to storage root
	FileName        string
	Width           int
	Height          int
	ThumbSmallPath  string
	ThumbMediumPath string
	Latitude        *float64
	Longitude       *float64
	TakenAt         *time.Time
}

// ExifJSON returns the extracted EXIF fields as a JSON document, or nil when
// the photo carried none.
func (r *Result) ExifJSON() []byte {
	fields := map[string]interface{}{}
	if r.Latitude != nil {
		fields["latitude"] = *r.Latitude
	}
	if r.Longitude != nil {
		fields["longitude"] = *r.Longitude
	}
	if r.TakenAt != nil {
		fields["taken_at"] = r.TakenAt.Format(time.RFC3339)
	}
	if len(fields) == 0 {
		return nil
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return nil
	}
	return data
}

// StorageRoot returns the local directory photos are written to.
func StorageRoot() string {
	return env.GetEnv("PHOTO_STORAGE_PATH", "./public/uploads")
}

// Process stores a raw upload, generates WebP thumbnails and extracts EXIF
// coordinates. The original plus variants are written to local disk and
// mirrored to S3 when the storage client is configured.
func Process(ctx context.Context, photoUUID, originalName string, data []byte) (*Result, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode photo: %w", err)
	}

	now := time.Now()
	ext := strings.ToLower(filepath.Ext(originalName))
	relDir := filepath.Join("photos", fmt.Sprintf("%04d", now.Year()), fmt.Sprintf("%02d", now.Month()))
	fileName := photoUUID + ext

	result := &Result{
		FilePath: relDir,
		FileName: fileName,
		Width:    img.Bounds().Dx(),
		Height:   img.Bounds().Dy(),
	}

	// EXIF is read from the original bytes; a photo without EXIF is fine.
	result.Latitude, result.Longitude, result.TakenAt = ExtractGPS(photoUUID, data)

	if err := writeLocal(filepath.Join(relDir, fileName), data); err != nil {
		return nil, err
	}

	// Thumbnail variants (WebP, preserving aspect ratio)
	for _, variant := range []struct {
		width int
		name  string
		dest  *string
	}{
		{ThumbSmallWidth, "small", &result.ThumbSmallPath},
		{ThumbMediumWidth, "medium", &result.ThumbMediumPath},
	} {
		if img.Bounds().Dx() <= variant.width {
			continue // never upscale
		}
		thumb := imaging.Resize(img, variant.width, 0, imaging.Lanczos)
		encoded, err := encodeWebP(thumb)
		if err != nil {
			log.Warnf("[PhotoProcessor] WebP encode (%s) failed for %s: %v", variant.name, photoUUID, err)
			continue
		}
		thumbRel := filepath.Join(relDir, fmt.Sprintf("%s_%s.webp", photoUUID, variant.name))
		if err := writeLocal(thumbRel, encoded); err != nil {
			return nil, err
		}
		*variant.dest = thumbRel
	}

	mirrorToS3(ctx, result, data)
	return result, nil
}

// Remove deletes the original and variants from local disk and S3.
func Remove(ctx context.Context, relPaths ...string) {
	for _, rel := range relPaths {
		if rel == "" {
			continue
		}
		if err := os.Remove(filepath.Join(StorageRoot(), rel)); err != nil && !os.IsNotExist(err) {
			log.Warnf("[PhotoProcessor] Failed to remove %s: %v", rel, err)
		}
		if client := storage.GetClient(); client != nil {
			if err := client.DeleteObject(ctx, filepath.ToSlash(rel)); err != nil {
				log.Warnf("[PhotoProcessor] Failed to remove s3 object %s: %v", rel, err)
			}
		}
	}
}

func encodeWebP(img image.Image) ([]byte, error) {
	options, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, webpQuality)
	if err != nil {
		return nil, fmt.Errorf("failed to create WebP encoder options: %w", err)
	}
	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, options); err != nil {
		return nil, fmt.Errorf("failed to encode WebP: %w", err)
	}
	return buf.Bytes(), nil
}

func writeLocal(relPath string, data []byte) error {
	absPath := filepath.Join(StorageRoot(), relPath)
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return fmt.Errorf("failed to create photo directory: %w", err)
	}
	if err := os.WriteFile(absPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write photo: %w", err)
	}
	return nil
}

func mirrorToS3(ctx context.Context, result *Result, original []byte) {
	client := storage.GetClient()
	if client == nil {
		return
	}

	upload := func(rel string, data []byte) {
		if rel == "" {
			return
		}
		if data == nil {
			var err error
			data, err = os.ReadFile(filepath.Join(StorageRoot(), rel))
			if err != nil {
				log.Warnf("[PhotoProcessor] Cannot read %s for S3 mirror: %v", rel, err)
				return
			}
		}
		if err := client.UploadBytes(ctx, filepath.ToSlash(rel), data); err != nil {
			log.Warnf("[PhotoProcessor] S3 mirror failed for %s: %v", rel, err)
		}
	}

	upload(filepath.Join(result.FilePath, result.FileName), original)
	upload(result.ThumbSmallPath, nil)
	upload(result.ThumbMediumPath, nil)
}
