package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONValue(t *testing.T) {
	t.Parallel()

	empty, err := JSON(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, empty)

	v, err := JSON(`{"latitude":18.79}`).Value()
	require.NoError(t, err)
	assert.Equal(t, `{"latitude":18.79}`, v)
}

func TestJSONScan(t *testing.T) {
	t.Parallel()

	var j JSON
	require.NoError(t, j.Scan([]byte(`{"taken_at":"2026-08-01T09:00:00Z"}`)))
	assert.Equal(t, JSON(`{"taken_at":"2026-08-01T09:00:00Z"}`), j)

	var fromString JSON
	require.NoError(t, fromString.Scan(`{"a":1}`))
	assert.Equal(t, JSON(`{"a":1}`), fromString)

	var fromNull JSON
	require.NoError(t, fromNull.Scan(nil))
	assert.Equal(t, JSON("{}"), fromNull)

	var bad JSON
	assert.Error(t, bad.Scan(42))
}

func TestJSONMarshalsInline(t *testing.T) {
	t.Parallel()

	photo := CampsitePhoto{ExifData: JSON(`{"latitude":18.79,"longitude":98.97}`)}
	out, err := json.Marshal(photo)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"exif_data":{"latitude":18.79,"longitude":98.97}`)

	var roundtrip CampsitePhoto
	require.NoError(t, json.Unmarshal(out, &roundtrip))
	assert.JSONEq(t, string(photo.ExifData), string(roundtrip.ExifData))
}
