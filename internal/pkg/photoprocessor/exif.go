package photoprocessor

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/mknote"
)

func init() {
	// Register Nikon and Canon maker notes
	exif.RegisterParsers(mknote.All...)
}

// ExtractGPS reads GPS coordinates and the capture time from the EXIF block
// of a photo. Owners often shoot listing photos on site, so coordinates from
// EXIF are used to prefill the campsite location during the creation wizard.
// A photo without EXIF data returns all nils.
func ExtractGPS(photoUUID string, data []byte) (lat, lng *float64, takenAt *time.Time) {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		// Many photos carry no EXIF block; not an error worth surfacing.
		log.Debug(fmt.Sprintf("No EXIF data for photo %s: %v", photoUUID, err))
		return nil, nil, nil
	}

	if la, lo, err := x.LatLong(); err == nil {
		lat = &la
		lng = &lo
	}
	if dt, err := x.DateTime(); err == nil {
		takenAt = &dt
	}
	return lat, lng, takenAt
}
