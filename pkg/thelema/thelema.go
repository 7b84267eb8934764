// Package thelema maps Gregorian dates into the Thelemic calendar: the era
// year counted from 1904 rendered as a two-part roman numeral label, and the
// Latin weekday name.
package thelema

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lvx93/tdate/pkg/zodiac"
)

// The era begins with the spring equinox of Gregorian 1904.
const epochYear = 1904

// cycleLength is the number of years in one docosade
const cycleLength = 22

// ErrYearOutOfRange is returned for dates outside the era's supported
// numeral window (1904 through 1904 + 22*23).
var ErrYearOutOfRange = errors.New("year outside the supported era range")

// numerals renders a cycle index 0–22; index 0 is the literal "0"
var numerals = [23]string{
	"0", "i", "ii", "iii", "iv",
	"v", "vi", "vii", "viii", "ix",
	"x", "xi", "xii", "xiii", "xiv",
	"xv", "xvi", "xvii", "xviii", "xix",
	"xx", "xxi", "xxii",
}

// weekdays are the Latin day names, indexed by ISO weekday (Monday=0)
var weekdays = [7]string{
	"Lunae", "Martis", "Mercurii", "Jovis",
	"Veneris", "Saturnii", "Solis",
}

// YearForNow renders the era year for the current moment. This path counts
// whole Gregorian years from 1904 with no equinox-boundary adjustment,
// matching the tool's historical "now" behavior. See YearForDate for the
// explicit-date path, which does adjust.
func YearForNow(gregorianYear int) (string, error) {
	return renderYear(gregorianYear - epochYear)
}

// YearForDate renders the era year for an explicit date. The era new year
// begins at the spring equinox, approximated as March 20: dates before it
// belong to the previous era year.
func YearForDate(year, month, day int) (string, error) {
	total := year - epochYear
	if month < 3 || (month == 3 && day < 20) {
		total = year - epochYear - 1
	}
	return renderYear(total)
}

// renderYear splits the year count into docosade and remainder and renders
// both from the numeral table, uppercase then lowercase, no separator.
func renderYear(total int) (string, error) {
	cycleI := total / cycleLength
	cycleII := total - cycleI*cycleLength
	if cycleI < 0 || cycleI >= len(numerals) || cycleII < 0 || cycleII >= len(numerals) {
		return "", fmt.Errorf("%w: %d years from the epoch", ErrYearOutOfRange, total)
	}
	return strings.ToUpper(numerals[cycleI]) + numerals[cycleII], nil
}

// Weekday returns the Latin name for the weekday of the given local date
func Weekday(t time.Time) string {
	// time.Weekday counts Sunday=0; the table is ISO, Monday=0
	return weekdays[(int(t.Weekday())+6)%7]
}

// Format assembles the single fixed output line
func Format(sun, moon zodiac.Placement, weekday, year string) string {
	return fmt.Sprintf("☉ in %dº %s : ☽ in %dº %s : dies %s : Anno %s æræ legis",
		sun.Degree, sun.Sign.Name,
		moon.Degree, moon.Sign.Name,
		weekday, year)
}
