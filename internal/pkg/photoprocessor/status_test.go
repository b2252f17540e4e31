package photoprocessor_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ThanawatK/CampSiam/internal/pkg/photoprocessor"
)

func TestIsPhotoProcessingComplete(t *testing.T) {
	originalGet := photoprocessor.GetCacheImplementation
	t.Cleanup(func() {
		photoprocessor.GetCacheImplementation = originalGet
	})

	t.Run("returns true for completed status", func(t *testing.T) {
		photoprocessor.GetCacheImplementation = func(key string) (string, error) {
			return photoprocessor.STATUS_COMPLETED, nil
		}

		assert.True(t, photoprocessor.IsPhotoProcessingComplete("photo-123"))
	})

	t.Run("returns false while processing", func(t *testing.T) {
		photoprocessor.GetCacheImplementation = func(key string) (string, error) {
			return photoprocessor.STATUS_PROCESSING, nil
		}

		assert.False(t, photoprocessor.IsPhotoProcessingComplete("photo-123"))
	})

	t.Run("returns false on cache error", func(t *testing.T) {
		photoprocessor.GetCacheImplementation = func(key string) (string, error) {
			return "", fmt.Errorf("cache miss")
		}

		assert.False(t, photoprocessor.IsPhotoProcessingComplete("photo-123"))
	})

	t.Run("returns false and skips cache for empty uuid", func(t *testing.T) {
		called := false
		photoprocessor.GetCacheImplementation = func(key string) (string, error) {
			called = true
			return photoprocessor.STATUS_COMPLETED, nil
		}

		assert.False(t, photoprocessor.IsPhotoProcessingComplete(""))
		assert.False(t, called)
	})
}

func TestIsPhotoProcessingFailed(t *testing.T) {
	originalGet := photoprocessor.GetCacheImplementation
	t.Cleanup(func() {
		photoprocessor.GetCacheImplementation = originalGet
	})

	photoprocessor.GetCacheImplementation = func(key string) (string, error) {
		return photoprocessor.STATUS_FAILED, nil
	}

	assert.True(t, photoprocessor.IsPhotoProcessingFailed("photo-123"))
	assert.False(t, photoprocessor.IsPhotoProcessingFailed(""))
}
