package almanac

import (
	"math"
	"testing"
	"time"
)

func TestJulianDayJ2000(t *testing.T) {
	// The J2000.0 epoch is the standard anchor: 2000-01-01 12:00 UTC
	jd := JulianDay(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC))
	if math.Abs(jd-2451545.0) > 1e-6 {
		t.Errorf("JulianDay(J2000) = %.6f, expected 2451545.0", jd)
	}

	// Noon-epoch convention: midnight UTC lands on integer+0.5
	jd = JulianDay(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	if math.Abs(jd-2451544.5) > 1e-6 {
		t.Errorf("JulianDay(2000-01-01 00:00 UTC) = %.6f, expected 2451544.5", jd)
	}
}

func TestJulianDayUsesUTC(t *testing.T) {
	// The same instant expressed in different zones must give the same JD
	loc := time.FixedZone("UTC-8", -8*3600)
	utc := time.Date(1976, 1, 13, 16, 25, 0, 0, time.UTC)
	local := utc.In(loc)

	if JulianDay(utc) != JulianDay(local) {
		t.Errorf("JulianDay differs across zone representations of one instant")
	}
}

func TestJulianDayMonotonic(t *testing.T) {
	instants := []time.Time{
		time.Date(1904, 3, 20, 12, 0, 0, 0, time.UTC),
		time.Date(1904, 3, 20, 12, 1, 0, 0, time.UTC),
		time.Date(1904, 12, 31, 23, 59, 0, 0, time.UTC),
		time.Date(1905, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1976, 1, 13, 16, 25, 0, 0, time.UTC),
		time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 15, 8, 30, 0, 0, time.UTC),
	}

	prev := math.Inf(-1)
	for _, instant := range instants {
		jd := JulianDay(instant)
		if jd <= prev {
			t.Errorf("JulianDay(%v) = %.6f not greater than previous %.6f", instant, jd, prev)
		}
		prev = jd
	}
}

// angularDistance returns the absolute separation of two angles in radians,
// accounting for wrap-around.
func angularDistance(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	if d < -math.Pi {
		d += 2 * math.Pi
	}
	if d > math.Pi {
		d -= 2 * math.Pi
	}
	return math.Abs(d)
}

func TestSunLongitudeAtEquinoxAndSolstice(t *testing.T) {
	tests := []struct {
		name     string
		instant  time.Time
		expected float64 // radians
	}{
		// March equinox 2000: 2000-03-20 07:35 UTC, λ ≈ 0
		{"march equinox 2000", time.Date(2000, 3, 20, 7, 35, 0, 0, time.UTC), 0},
		// June solstice 2000: 2000-06-21 01:48 UTC, λ ≈ 90°
		{"june solstice 2000", time.Date(2000, 6, 21, 1, 48, 0, 0, time.UTC), math.Pi / 2},
		// December solstice 2023: 2023-12-22 03:27 UTC, λ ≈ 270°
		{"december solstice 2023", time.Date(2023, 12, 22, 3, 27, 0, 0, time.UTC), 3 * math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			λ := SunLongitude(JulianDay(tt.instant))
			if d := angularDistance(λ, tt.expected); d > 0.01 {
				t.Errorf("SunLongitude = %.4f rad, expected %.4f ± 0.01", λ, tt.expected)
			}
		})
	}
}

func TestMoonLongitudeAtSyzygy(t *testing.T) {
	tests := []struct {
		name       string
		instant    time.Time
		elongation float64 // Moon - Sun, radians
	}{
		// Known new moon: 2023-01-21 20:53 UTC
		{"new moon jan 2023", time.Date(2023, 1, 21, 20, 53, 0, 0, time.UTC), 0},
		// Known full moon: 2023-02-05 18:29 UTC
		{"full moon feb 2023", time.Date(2023, 2, 5, 18, 29, 0, 0, time.UTC), math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jd := JulianDay(tt.instant)
			elongation := MoonLongitude(jd) - SunLongitude(jd)
			if d := angularDistance(elongation, tt.elongation); d > 0.02 {
				t.Errorf("elongation = %.4f rad, expected %.4f ± 0.02", elongation, tt.elongation)
			}
		})
	}
}
