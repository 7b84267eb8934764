// Package localtime resolves a wall-clock time in a named timezone to an
// unambiguous absolute instant. Wall times that fall in a DST gap or repeat
// during a fall-back transition are rejected rather than silently shifted.
package localtime

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidDate is returned for a (year, month, day) triple that is not
	// a legal Gregorian calendar date
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidTime is returned for an (hour, minute) pair outside the
	// 24-hour clock
	ErrInvalidTime = errors.New("invalid time")

	// ErrNonexistentTime is returned for a wall time skipped by a
	// spring-forward transition
	ErrNonexistentTime = errors.New("local time does not exist in this timezone")

	// ErrAmbiguousTime is returned for a wall time that occurs twice during a
	// fall-back transition
	ErrAmbiguousTime = errors.New("ambiguous local time")
)

// Instant is an absolute moment together with its local representation in the
// timezone it was resolved against.
type Instant struct {
	UTC   time.Time
	Local time.Time
}

// LoadZone resolves an IANA timezone identifier
func LoadZone(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", name, err)
	}
	return loc, nil
}

// Now captures the current system instant in the given zone. "Now" is an
// instant, not a wall time, so no disambiguation is needed.
func Now(loc *time.Location) Instant {
	t := time.Now().In(loc)
	return Instant{UTC: t.UTC(), Local: t}
}

// Resolve maps an explicit local wall-clock time to an absolute instant.
// Calendar legality is checked first; the wall time must then map to exactly
// one UTC instant under the zone's offset rules.
func Resolve(year, month, day, hour, minute int, loc *time.Location) (Instant, error) {
	if month < 1 || month > 12 {
		return Instant{}, fmt.Errorf("%w: month %d", ErrInvalidDate, month)
	}
	if day < 1 || day > daysIn(year, time.Month(month)) {
		return Instant{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	if hour < 0 || hour > 23 {
		return Instant{}, fmt.Errorf("%w: hour %d", ErrInvalidTime, hour)
	}
	if minute < 0 || minute > 59 {
		return Instant{}, fmt.Errorf("%w: minute %d", ErrInvalidTime, minute)
	}

	matches := instantsFor(year, time.Month(month), day, hour, minute, loc)

	switch len(matches) {
	case 0:
		// Spring-forward gap. Policy: reject, never shift forward.
		return Instant{}, fmt.Errorf("%w: %04d-%02d-%02d %02d:%02d (spring-forward gap)",
			ErrNonexistentTime, year, month, day, hour, minute)
	case 1:
		return Instant{UTC: matches[0].UTC(), Local: matches[0].In(loc)}, nil
	default:
		return Instant{}, fmt.Errorf("%w: %04d-%02d-%02d %02d:%02d occurs twice (fall-back transition)",
			ErrAmbiguousTime, year, month, day, hour, minute)
	}
}

// instantsFor returns every absolute instant whose wall clock in loc matches
// the given fields. Candidate UTC offsets are sampled well before and after
// the wall time so both sides of any transition are covered.
func instantsFor(year int, month time.Month, day, hour, minute int, loc *time.Location) []time.Time {
	asUTC := time.Date(year, month, day, hour, minute, 0, 0, time.UTC)

	seen := make(map[int64]bool)
	var matches []time.Time

	for _, probe := range []time.Duration{-30 * time.Hour, 0, 30 * time.Hour} {
		_, offset := asUTC.Add(probe).In(loc).Zone()
		candidate := asUTC.Add(-time.Duration(offset) * time.Second)
		if seen[candidate.Unix()] {
			continue
		}
		seen[candidate.Unix()] = true

		l := candidate.In(loc)
		if l.Year() == year && l.Month() == month && l.Day() == day &&
			l.Hour() == hour && l.Minute() == minute {
			matches = append(matches, candidate)
		}
	}

	return matches
}

// daysIn returns the number of days in the given month, accounting for leap
// years via time.Date's day-zero normalization.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
