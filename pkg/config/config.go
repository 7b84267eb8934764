// Package config handles configuration for the tdate tool. Configuration is
// optional: when no file is given, compiled-in defaults apply.
package config

// Provider defines the interface for configuration data sources
type Provider interface {
	// Load complete configuration
	LoadConfig() (*Data, error)
}

// Data represents the complete tool configuration
type Data struct {
	// DefaultLocation is used when no location is supplied on the command line
	DefaultLocation string       `json:"default_location,omitempty"`
	Geocoder        GeocoderData `json:"geocoder,omitempty"`
}

// GeocoderData holds configuration for the forward-geocoding service
type GeocoderData struct {
	Endpoint       string `json:"endpoint,omitempty"`
	UserAgent      string `json:"user_agent,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"`
}

// Compiled-in defaults
const (
	DefaultLocation         = "Las Vegas, NV"
	DefaultGeocoderEndpoint = "https://nominatim.openstreetmap.org/search"
	DefaultUserAgent        = "tdate/1.0"
	DefaultTimeoutSeconds   = 10
)

// Default returns a configuration populated with the compiled-in defaults
func Default() *Data {
	return &Data{
		DefaultLocation: DefaultLocation,
		Geocoder: GeocoderData{
			Endpoint:       DefaultGeocoderEndpoint,
			UserAgent:      DefaultUserAgent,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
	}
}

// applyDefaults fills any unset fields with the compiled-in defaults
func (d *Data) applyDefaults() {
	if d.DefaultLocation == "" {
		d.DefaultLocation = DefaultLocation
	}
	if d.Geocoder.Endpoint == "" {
		d.Geocoder.Endpoint = DefaultGeocoderEndpoint
	}
	if d.Geocoder.UserAgent == "" {
		d.Geocoder.UserAgent = DefaultUserAgent
	}
	if d.Geocoder.TimeoutSeconds <= 0 {
		d.Geocoder.TimeoutSeconds = DefaultTimeoutSeconds
	}
}
