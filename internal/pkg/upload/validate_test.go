package upload

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeTestImage(t *testing.T, format string) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	var buf bytes.Buffer
	switch format {
	case "jpeg":
		require.NoError(t, jpeg.Encode(&buf, img, nil))
	case "png":
		require.NoError(t, png.Encode(&buf, img))
	default:
		t.Fatalf("unknown format %s", format)
	}
	return buf.Bytes()
}

func TestValidatePhotoBySniff_AcceptsJPEGAndPNG(t *testing.T) {
	t.Parallel()

	mime, err := ValidatePhotoBySniff("camp.jpg", encodeTestImage(t, "jpeg"))
	assert.NoError(t, err)
	assert.Equal(t, "image/jpeg", mime)

	mime, err = ValidatePhotoBySniff("camp.png", encodeTestImage(t, "png"))
	assert.NoError(t, err)
	assert.Equal(t, "image/png", mime)
}

func TestValidatePhotoBySniff_RejectsDisallowedExtension(t *testing.T) {
	t.Parallel()

	_, err := ValidatePhotoBySniff("camp.gif", encodeTestImage(t, "png"))
	assert.Error(t, err)
}

func TestValidatePhotoBySniff_RejectsMismatchedContent(t *testing.T) {
	t.Parallel()

	_, err := ValidatePhotoBySniff("camp.png", []byte("<html><script>alert(1)</script></html>"))
	assert.Error(t, err)
}

func TestValidatePhotoSize(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidatePhotoSize(MaxPhotoBytes))
	assert.Error(t, ValidatePhotoSize(MaxPhotoBytes+1))
}

func TestValidatePhotoCount(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidatePhotoCount(19, 1))
	assert.NoError(t, ValidatePhotoCount(0, MaxPhotosPerCampsite))
	assert.Error(t, ValidatePhotoCount(19, 2))
	assert.Error(t, ValidatePhotoCount(MaxPhotosPerCampsite, 1))
}
