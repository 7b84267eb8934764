package thelema

import (
	"errors"
	"testing"
	"time"

	"github.com/lvx93/tdate/pkg/zodiac"
)

func TestYearForDate(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
		expected         string
	}{
		// The nominal epoch moment: on the equinox boundary
		{"epoch equinox 1904-03-20", 1904, 3, 20, "00"},
		{"day before first anniversary", 1905, 3, 19, "00"},
		{"first anniversary", 1905, 3, 20, "0i"},
		{"january belongs to previous era year", 1976, 1, 13, "IIIv"},
		{"after equinox same gregorian year", 1976, 4, 1, "IIIvi"},
		{"docosade boundary", 1926, 3, 20, "I0"},
		{"last year of numeral window", 2409, 12, 31, "XXIIxxi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := YearForDate(tt.year, tt.month, tt.day)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("YearForDate(%d, %d, %d) = %q, expected %q",
					tt.year, tt.month, tt.day, got, tt.expected)
			}
		})
	}
}

func TestYearForNowIgnoresEquinox(t *testing.T) {
	// The now-path counts plain Gregorian years from 1904: January 1905 is
	// already era year 1, unlike the explicit-date path.
	got, err := YearForNow(1905)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "0i" {
		t.Errorf("YearForNow(1905) = %q, expected %q", got, "0i")
	}

	got, err = YearForNow(1904)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "00" {
		t.Errorf("YearForNow(1904) = %q, expected %q", got, "00")
	}

	got, err = YearForNow(2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Vx" {
		t.Errorf("YearForNow(2024) = %q, expected %q", got, "Vx")
	}
}

func TestYearOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"before the epoch", func() error { _, err := YearForNow(1903); return err }()},
		{"explicit date before the epoch", func() error { _, err := YearForDate(1904, 1, 1); return err }()},
		{"beyond the numeral window", func() error { _, err := YearForNow(2410); return err }()},
		{"far future", func() error { _, err := YearForDate(3000, 6, 1); return err }()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, ErrYearOutOfRange) {
				t.Errorf("expected ErrYearOutOfRange, got %v", tt.err)
			}
		})
	}
}

func TestYearRoundTrip(t *testing.T) {
	// cycleI*22 + cycleII must reconstruct the year count across the whole
	// supported window.
	for total := 0; total < 22*23; total++ {
		cycleI := total / cycleLength
		cycleII := total - cycleI*cycleLength
		if cycleI < 0 || cycleI > 22 {
			t.Fatalf("cycleI %d out of range for total %d", cycleI, total)
		}
		if cycleII < 0 || cycleII > 21 {
			t.Fatalf("cycleII %d out of range for total %d", cycleII, total)
		}
		if cycleI*cycleLength+cycleII != total {
			t.Fatalf("round trip failed for total %d", total)
		}
	}
}

func TestWeekday(t *testing.T) {
	// 2026-01-05 is a Monday; the week from there covers every name once
	expected := []string{"Lunae", "Martis", "Mercurii", "Jovis", "Veneris", "Saturnii", "Solis"}
	seen := make(map[string]bool)

	for i, want := range expected {
		d := time.Date(2026, 1, 5+i, 0, 0, 0, 0, time.UTC)
		got := Weekday(d)
		if got != want {
			t.Errorf("Weekday(%s) = %q, expected %q", d.Format("2006-01-02"), got, want)
		}
		seen[got] = true
	}

	if len(seen) != 7 {
		t.Errorf("expected 7 distinct weekday names, got %d", len(seen))
	}
}

func TestFormat(t *testing.T) {
	sun := zodiac.Placement{Sign: zodiac.Signs[9], Degree: 22} // Capricorn
	moon := zodiac.Placement{Sign: zodiac.Signs[0], Degree: 3} // Aries

	got := Format(sun, moon, "Martis", "IIIv")
	expected := "☉ in 22º Capricorn : ☽ in 3º Aries : dies Martis : Anno IIIv æræ legis"
	if got != expected {
		t.Errorf("Format = %q, expected %q", got, expected)
	}
}
