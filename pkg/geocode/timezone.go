package geocode

import (
	"fmt"

	"github.com/bradfitz/latlong"
)

// TimezoneFor maps coordinates to an IANA timezone name using latlong's
// compiled-in boundary data. The lookup is offline; the data is loaded once
// for the process lifetime.
func TimezoneFor(lat, lon float64) (string, error) {
	zone := latlong.LookupZoneName(lat, lon)
	if zone == "" {
		return "", fmt.Errorf("%w: %.4f, %.4f", ErrNoTimezone, lat, lon)
	}
	return zone, nil
}
