// Package zodiac maps an ecliptic longitude to one of the 12 fixed 30° signs
// and the whole degree within that sign.
package zodiac

import "math"

// Sign is one of the 12 zodiac signs
type Sign struct {
	Name  string
	Glyph string
}

// Signs in ecliptic order, starting at 0° (the vernal equinox direction)
var Signs = [12]Sign{
	{"Aries", "♈"}, {"Taurus", "♉"}, {"Gemini", "♊"}, {"Cancer", "♋"},
	{"Leo", "♌"}, {"Virgo", "♍"}, {"Libra", "♎"}, {"Scorpio", "♏"},
	{"Sagittarius", "♐"}, {"Capricorn", "♑"}, {"Aquarius", "♒"}, {"Pisces", "♓"},
}

// Placement is a position on the zodiac wheel: a sign and a whole degree
// within it, 0–29.
type Placement struct {
	Sign   Sign
	Degree int
}

// Place converts an ecliptic longitude in radians to its zodiac placement.
// The longitude is periodic with period 2π; any value is accepted.
func Place(longitude float64) Placement {
	deg := normalizeAngle(longitude * 180 / math.Pi)
	index := int(deg/30) % 12
	return Placement{
		Sign:   Signs[index],
		Degree: int(math.Mod(deg, 30)),
	}
}

// normalizeAngle wraps an angle to the range [0, 360)
func normalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	return angle
}
