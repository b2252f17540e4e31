package photoprocessor

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultExifJSON(t *testing.T) {
	t.Run("no exif yields nil", func(t *testing.T) {
		assert.Nil(t, (&Result{}).ExifJSON())
	})

	t.Run("coordinates and timestamp", func(t *testing.T) {
		lat, lng := 18.79, 98.97
		taken := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
		r := &Result{Latitude: &lat, Longitude: &lng, TakenAt: &taken}

		var fields map[string]interface{}
		require.NoError(t, json.Unmarshal(r.ExifJSON(), &fields))
		assert.Equal(t, 18.79, fields["latitude"])
		assert.Equal(t, 98.97, fields["longitude"])
		assert.Equal(t, "2026-08-01T09:00:00Z", fields["taken_at"])
	})

	t.Run("coordinates only", func(t *testing.T) {
		lat, lng := 7.89, 98.4
		r := &Result{Latitude: &lat, Longitude: &lng}

		var fields map[string]interface{}
		require.NoError(t, json.Unmarshal(r.ExifJSON(), &fields))
		assert.Len(t, fields, 2)
	})
}
