// Package geocode resolves a free-text location to coordinates and an IANA
// timezone identifier. The forward lookup is a single network call against a
// Nominatim-compatible service; the timezone is derived offline from the
// coordinates.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when the geocoding service has no match
	ErrNotFound = errors.New("location not found")

	// ErrNoTimezone is returned when no timezone covers the coordinates
	ErrNoTimezone = errors.New("no timezone found for coordinates")
)

// Result is a resolved location
type Result struct {
	Latitude  float64
	Longitude float64
	Timezone  string
}

// Geocoder converts free-text locations to coordinates
type Geocoder struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
}

// New creates a new geocoder against the given Nominatim-compatible endpoint.
// The timeout bounds the whole lookup; there are no retries.
func New(endpoint, userAgent string, timeout time.Duration) *Geocoder {
	return &Geocoder{
		endpoint:  endpoint,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// nominatimResponse represents a single entry of the Nominatim API response
type nominatimResponse struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Resolve geocodes a location string and attaches its timezone. The first
// match wins; an empty result set is ErrNotFound.
func (g *Geocoder) Resolve(ctx context.Context, location string) (Result, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return Result{}, fmt.Errorf("%w: empty location", ErrNotFound)
	}

	params := url.Values{}
	params.Add("format", "json")
	params.Add("limit", "1")
	params.Add("q", location)

	reqURL := fmt.Sprintf("%s?%s", g.endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return Result{}, fmt.Errorf("creating request: %w", err)
	}

	// Nominatim ToS requires an identifying User-Agent
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("executing geocoding request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("geocoding service returned status %d", resp.StatusCode)
	}

	var results []nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return Result{}, fmt.Errorf("decoding geocoding response: %w", err)
	}

	if len(results) == 0 {
		return Result{}, fmt.Errorf("%w: %q", ErrNotFound, location)
	}

	first := results[0]

	lat, err := strconv.ParseFloat(first.Lat, 64)
	if err != nil {
		return Result{}, fmt.Errorf("parsing latitude %q: %w", first.Lat, err)
	}
	lon, err := strconv.ParseFloat(first.Lon, 64)
	if err != nil {
		return Result{}, fmt.Errorf("parsing longitude %q: %w", first.Lon, err)
	}

	zone, err := TimezoneFor(lat, lon)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Latitude:  lat,
		Longitude: lon,
		Timezone:  zone,
	}, nil
}
