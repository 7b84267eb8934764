// Package app wires the tdate pipeline: geocode the location, resolve the
// local time to an instant, compute the Julian Day and sun/moon longitudes,
// and render the Thelemic date line.
package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/lvx93/tdate/pkg/almanac"
	"github.com/lvx93/tdate/pkg/config"
	"github.com/lvx93/tdate/pkg/geocode"
	"github.com/lvx93/tdate/pkg/localtime"
	"github.com/lvx93/tdate/pkg/thelema"
	"github.com/lvx93/tdate/pkg/zodiac"
	"go.uber.org/zap"
)

// ErrUsage is returned for a positional argument list that is neither empty
// nor the six-field YEAR MONTH DAY HOUR MINUTE LOCATION form.
var ErrUsage = errors.New("expected no positional arguments or: YEAR MONTH DAY HOUR MINUTE LOCATION")

// App represents the tdate application
type App struct {
	cfg      *config.Data
	logger   *zap.SugaredLogger
	geocoder *geocode.Geocoder
}

// New creates a new application instance
func New(cfg *config.Data, logger *zap.SugaredLogger) *App {
	return &App{
		cfg:    cfg,
		logger: logger,
		geocoder: geocode.New(
			cfg.Geocoder.Endpoint,
			cfg.Geocoder.UserAgent,
			time.Duration(cfg.Geocoder.TimeoutSeconds)*time.Second,
		),
	}
}

// Run executes one invocation. location comes from the -location flag (empty
// means the configured default); positionals are the remaining command-line
// arguments. It returns the formatted date line.
func (a *App) Run(ctx context.Context, location string, positionals []string) (string, error) {
	switch len(positionals) {
	case 0:
		if location == "" {
			location = a.cfg.DefaultLocation
		}
		return a.forNow(ctx, location)
	case 6:
		fields, err := parseExplicit(positionals)
		if err != nil {
			return "", err
		}
		return a.forDate(ctx, fields, positionals[5])
	default:
		return "", ErrUsage
	}
}

// explicitFields are the five numeric positional arguments
type explicitFields struct {
	year, month, day, hour, minute int
}

// parseExplicit converts the numeric positional arguments, reporting which
// field failed to parse.
func parseExplicit(positionals []string) (explicitFields, error) {
	names := [5]string{"year", "month", "day", "hour", "minute"}
	var values [5]int
	for i, name := range names {
		v, err := strconv.Atoi(positionals[i])
		if err != nil {
			return explicitFields{}, fmt.Errorf("invalid %s %q: not an integer", name, positionals[i])
		}
		values[i] = v
	}
	return explicitFields{
		year:   values[0],
		month:  values[1],
		day:    values[2],
		hour:   values[3],
		minute: values[4],
	}, nil
}

// forNow computes the Thelemic date for the current moment at a location.
// The era year here deliberately ignores the equinox boundary; see
// thelema.YearForNow.
func (a *App) forNow(ctx context.Context, location string) (string, error) {
	loc, err := a.locate(ctx, location)
	if err != nil {
		return "", err
	}

	instant := localtime.Now(loc)
	a.logger.Debugw("resolved instant", "local", instant.Local, "utc", instant.UTC)

	year, err := thelema.YearForNow(instant.Local.Year())
	if err != nil {
		return "", err
	}

	return a.render(instant, year, thelema.Weekday(instant.Local)), nil
}

// forDate computes the Thelemic date for an explicit local date/time at a
// location.
func (a *App) forDate(ctx context.Context, f explicitFields, location string) (string, error) {
	loc, err := a.locate(ctx, location)
	if err != nil {
		return "", err
	}

	instant, err := localtime.Resolve(f.year, f.month, f.day, f.hour, f.minute, loc)
	if err != nil {
		return "", err
	}
	a.logger.Debugw("resolved instant", "local", instant.Local, "utc", instant.UTC)

	year, err := thelema.YearForDate(f.year, f.month, f.day)
	if err != nil {
		return "", err
	}

	return a.render(instant, year, thelema.Weekday(instant.Local)), nil
}

// locate geocodes the location and loads its timezone
func (a *App) locate(ctx context.Context, location string) (*time.Location, error) {
	geo, err := a.geocoder.Resolve(ctx, location)
	if err != nil {
		return nil, err
	}
	a.logger.Debugw("geocoded location",
		"location", location, "lat", geo.Latitude, "lon", geo.Longitude, "timezone", geo.Timezone)

	return localtime.LoadZone(geo.Timezone)
}

// render derives the astronomical placements and assembles the output line
func (a *App) render(instant localtime.Instant, year, weekday string) string {
	jd := almanac.JulianDay(instant.UTC)
	sun := zodiac.Place(almanac.SunLongitude(jd))
	moon := zodiac.Place(almanac.MoonLongitude(jd))
	a.logger.Debugw("ephemeris",
		"jd", jd,
		"sun", fmt.Sprintf("%dº %s", sun.Degree, sun.Sign.Name),
		"moon", fmt.Sprintf("%dº %s", moon.Degree, moon.Sign.Name))

	return thelema.Format(sun, moon, weekday, year)
}
