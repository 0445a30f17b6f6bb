package model

import (
	"fmt"
	"sort"
	"strconv"
)

const (
	// LocatorIP resolves the start position from the public IP address
	LocatorIP = "ip"

	// LocatorFixed always starts at the configured home position
	LocatorFixed = "fixed"

	// MaxZoom is the deepest zoom level the map accepts
	MaxZoom = 22
)

// Config holds the application configuration
type Config struct {
	// ZoomLevel is used for the initial view and when a plan is selected
	ZoomLevel int `json:"zoom_level"`

	// Locator selects how the start position is resolved ("ip" or "fixed")
	Locator string `json:"locator"`

	// LocatorURL is the endpoint queried by the ip locator
	LocatorURL string `json:"locator_url"`

	// HomeLat and HomeLng are used by the fixed locator
	HomeLat float64 `json:"home_lat"`
	HomeLng float64 `json:"home_lng"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		ZoomLevel:  19,
		Locator:    LocatorIP,
		LocatorURL: "http://ip-api.com/json",
		HomeLat:    44.4357786, // Bucharest
		HomeLng:    26.0323529,
	}
}

// Home returns the fixed start position.
func (c Config) Home() Point {
	return Point{Lat: c.HomeLat, Lng: c.HomeLng}
}

type configField struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

var configFields = map[string]configField{
	"zoom": {
		get: func(c *Config) string { return strconv.Itoa(c.ZoomLevel) },
		set: func(c *Config, v string) error {
			z, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("zoom must be an integer: %w", err)
			}

			if z < 0 || z > MaxZoom {
				return fmt.Errorf("zoom must be between 0 and %d", MaxZoom)
			}

			c.ZoomLevel = z

			return nil
		},
	},
	"locator": {
		get: func(c *Config) string { return c.Locator },
		set: func(c *Config, v string) error {
			if v != LocatorIP && v != LocatorFixed {
				return fmt.Errorf("locator must be %q or %q", LocatorIP, LocatorFixed)
			}

			c.Locator = v

			return nil
		},
	},
	"locator.url": {
		get: func(c *Config) string { return c.LocatorURL },
		set: func(c *Config, v string) error {
			c.LocatorURL = v
			return nil
		},
	},
	"home.lat": {
		get: func(c *Config) string { return strconv.FormatFloat(c.HomeLat, 'f', -1, 64) },
		set: func(c *Config, v string) error {
			return parseCoord(v, -90, 90, &c.HomeLat)
		},
	},
	"home.lng": {
		get: func(c *Config) string { return strconv.FormatFloat(c.HomeLng, 'f', -1, 64) },
		set: func(c *Config, v string) error {
			return parseCoord(v, -180, 180, &c.HomeLng)
		},
	},
}

func parseCoord(v string, lo, hi float64, dst *float64) error {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("invalid coordinate %q: %w", v, err)
	}

	if f < lo || f > hi {
		return fmt.Errorf("coordinate %v out of range [%v, %v]", f, lo, hi)
	}

	*dst = f

	return nil
}

// ConfigKeys lists the keys accepted by Get and Set, sorted.
func ConfigKeys() []string {
	keys := make([]string, 0, len(configFields))
	for k := range configFields {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// Get returns the string form of a config key.
func (c *Config) Get(key string) (string, error) {
	f, ok := configFields[key]
	if !ok {
		return "", fmt.Errorf("unknown config key %q", key)
	}

	return f.get(c), nil
}

// Set parses and assigns a config key. The config is left untouched on error.
func (c *Config) Set(key, value string) error {
	f, ok := configFields[key]
	if !ok {
		return fmt.Errorf("unknown config key %q", key)
	}

	return f.set(c, value)
}
