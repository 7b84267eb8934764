package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements Provider for YAML configuration files
type YAMLProvider struct {
	filename string
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the complete configuration from a YAML file
func (y *YAMLProvider) LoadConfig() (*Data, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	// Load into temporary struct with YAML tags
	var yamlConfig struct {
		DefaultLocation string `yaml:"default_location,omitempty"`
		Geocoder        struct {
			Endpoint       string `yaml:"endpoint,omitempty"`
			UserAgent      string `yaml:"user_agent,omitempty"`
			TimeoutSeconds int    `yaml:"timeout_seconds,omitempty"`
		} `yaml:"geocoder,omitempty"`
	}

	err = yaml.Unmarshal(cfgFile, &yamlConfig)
	if err != nil {
		return nil, err
	}

	// Convert to our internal format
	config := &Data{
		DefaultLocation: yamlConfig.DefaultLocation,
		Geocoder: GeocoderData{
			Endpoint:       yamlConfig.Geocoder.Endpoint,
			UserAgent:      yamlConfig.Geocoder.UserAgent,
			TimeoutSeconds: yamlConfig.Geocoder.TimeoutSeconds,
		},
	}
	config.applyDefaults()

	return config, nil
}
