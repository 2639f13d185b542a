// Package config resolves run configuration from built-in defaults, an
// optional terratracer.yaml, and TERRATRACER_-prefixed environment
// variables, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultPath is probed when no explicit config file is given.
const DefaultPath = "terratracer.yaml"

// Config is the complete run configuration.
type Config struct {
	Saves    SavesConfig    `koanf:"saves"`
	Logs     LogsConfig     `koanf:"logs"`
	KML      KMLConfig      `koanf:"kml"`
	Defaults DefaultsConfig `koanf:"defaults"`
}

// SavesConfig names the directories exports land in.
type SavesConfig struct {
	KMLDir     string `koanf:"kml_dir"`
	JSONDir    string `koanf:"json_dir"`
	GeoJSONDir string `koanf:"geojson_dir"`
}

// LogsConfig names where session logs are written.
type LogsConfig struct {
	Dir string `koanf:"dir"`
}

// KMLConfig holds KML styling.
type KMLConfig struct {
	// FillColor is KML aabbggrr-order hex for the polygon interior.
	FillColor string `koanf:"fill_color"`
}

// DefaultsConfig holds prompt defaults.
type DefaultsConfig struct {
	// ProjectionMethod is the pre-selected computation method
	// (1=Karney, 2=Vincenty, 3=Spherical, 4=Average).
	ProjectionMethod int `koanf:"projection_method"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"saves.kml_dir":              "saves/kml",
		"saves.json_dir":             "saves/json",
		"saves.geojson_dir":          "saves/geojson",
		"logs.dir":                   "logs",
		"kml.fill_color":             "3300FF00",
		"defaults.projection_method": 1,
	}
}

// Load resolves the configuration. path may be empty, in which case
// DefaultPath is used when it exists and silently skipped when it doesn't;
// an explicitly named file must exist.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	explicit := path != ""
	if path == "" {
		path = DefaultPath
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	// TERRATRACER_SAVES__KML_DIR=... overrides saves.kml_dir.
	if err := k.Load(env.Provider("TERRATRACER_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "TERRATRACER_")
		return strings.ReplaceAll(strings.ToLower(s), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}
