package models

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidCampsiteType(t *testing.T) {
	t.Parallel()

	for _, v := range CampsiteTypes {
		assert.Truef(t, IsValidCampsiteType(v), "type %s", v)
	}
	assert.False(t, IsValidCampsiteType("treehouse"))
	assert.False(t, IsValidCampsiteType(""))
}

func TestIsValidProvince(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidProvince("chiang-mai"))
	assert.False(t, IsValidProvince("narnia"))
}

func TestCampsiteIsApproved(t *testing.T) {
	t.Parallel()

	assert.True(t, (&Campsite{Status: CampsiteStatusApproved}).IsApproved())
	assert.False(t, (&Campsite{Status: CampsiteStatusPending}).IsApproved())
	assert.False(t, (&Campsite{Status: CampsiteStatusRejected}).IsApproved())
}

func validCampsite() Campsite {
	lat, lng := 18.79, 98.97
	return Campsite{
		Name:        "ดอยแคมป์ปิ้ง",
		Description: strings.Repeat("x", 50),
		Type:        CampsiteTypeTent,
		Province:    "chiang-mai",
		PriceMin:    100,
		PriceMax:    300,
		Latitude:    &lat,
		Longitude:   &lng,
	}
}

func TestCampsiteValidation(t *testing.T) {
	t.Parallel()
	v := validator.New()

	require.NoError(t, v.Struct(validCampsite()))

	// coordinates are optional
	noCoords := validCampsite()
	noCoords.Latitude = nil
	noCoords.Longitude = nil
	require.NoError(t, v.Struct(noCoords))

	tests := []struct {
		name   string
		mutate func(*Campsite)
	}{
		{"name too short", func(cs *Campsite) { cs.Name = "ab" }},
		{"description under 50", func(cs *Campsite) { cs.Description = strings.Repeat("x", 49) }},
		{"unknown type", func(cs *Campsite) { cs.Type = "treehouse" }},
		{"missing province", func(cs *Campsite) { cs.Province = "" }},
		{"negative price", func(cs *Campsite) { cs.PriceMin = -1 }},
		{"max below min", func(cs *Campsite) { cs.PriceMax = 50 }},
		{"latitude above range", func(cs *Campsite) { lat := 90.5; cs.Latitude = &lat }},
		{"latitude below range", func(cs *Campsite) { lat := -90.5; cs.Latitude = &lat }},
		{"longitude above range", func(cs *Campsite) { lng := 180.5; cs.Longitude = &lng }},
		{"longitude below range", func(cs *Campsite) { lng := -180.5; cs.Longitude = &lng }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := validCampsite()
			tt.mutate(&cs)
			assert.Error(t, v.Struct(cs))
		})
	}
}

func TestCampsiteValidationBoundaries(t *testing.T) {
	t.Parallel()
	v := validator.New()

	cs := validCampsite()
	lat, lng := 90.0, -180.0
	cs.Latitude = &lat
	cs.Longitude = &lng
	cs.Name = "abc"
	assert.NoError(t, v.Struct(cs))
}

func TestIsValidReportReason(t *testing.T) {
	t.Parallel()

	for _, r := range ReportReasons {
		assert.Truef(t, IsValidReportReason(r), "reason %s", r)
	}
	assert.False(t, IsValidReportReason("rude"))
}

func TestIsValidInquiryStatus(t *testing.T) {
	t.Parallel()

	for _, s := range InquiryStatuses {
		assert.Truef(t, IsValidInquiryStatus(s), "status %s", s)
	}
	assert.False(t, IsValidInquiryStatus("archived"))
}
