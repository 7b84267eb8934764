// Package almanac computes the Julian Day and geocentric ecliptic longitudes
// of the Sun and Moon. Positions use the Meeus reference series: the abridged
// VSOP87 solar theory (~0.01° in longitude) and the ch. 47 lunar theory
// (~10″ in longitude), both well inside sub-degree accuracy.
package almanac

import (
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/solar"
)

// JulianDay converts an absolute instant to the continuous astronomical
// Julian Day. The instant is taken in UTC; the fractional part encodes time
// of day since the preceding 12:00 UTC (2000-01-01 12:00 UTC = 2451545.0).
func JulianDay(t time.Time) float64 {
	u := t.UTC()
	y, m, d := u.Date()
	decimalDay := float64(d) +
		float64(u.Hour())/24 +
		float64(u.Minute())/1440 +
		float64(u.Second())/86400
	return julian.CalendarGregorianToJD(y, int(m), decimalDay)
}

// SunLongitude returns the Sun's apparent geocentric ecliptic longitude in
// radians for the given Julian Day.
func SunLongitude(jd float64) float64 {
	return solar.ApparentLongitude(base.J2000Century(jd)).Rad()
}

// MoonLongitude returns the Moon's apparent geocentric ecliptic longitude in
// radians for the given Julian Day.
func MoonLongitude(jd float64) float64 {
	λ, _, _ := moonposition.Position(jd)
	return λ.Rad()
}
