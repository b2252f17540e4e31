package models

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestReviewIsVisible(t *testing.T) {
	t.Parallel()

	assert.True(t, (&Review{}).IsVisible())
	assert.False(t, (&Review{IsHidden: true}).IsVisible())
}

func TestReviewRatingValidation(t *testing.T) {
	t.Parallel()
	v := validator.New()

	assert.Error(t, v.Struct(Review{Rating: 0}))
	assert.Error(t, v.Struct(Review{Rating: 6}))
	assert.NoError(t, v.Struct(Review{Rating: 1}))
	assert.NoError(t, v.Struct(Review{Rating: 5}))
}

func TestNextReportCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		current      int
		wantCount    int
		wantReported bool
	}{
		{3, 2, true},
		{2, 1, true},
		{1, 0, false},
		{0, 0, false}, // already at zero, never goes negative
	}

	for _, tt := range tests {
		count, reported := NextReportCount(tt.current)
		assert.Equalf(t, tt.wantCount, count, "current %d", tt.current)
		assert.Equalf(t, tt.wantReported, reported, "current %d", tt.current)
	}
}
