// Package amap provides a client for the AutoNavi (amap.com) REST APIs:
// geocoding, route planning and POI search.
package amap

import "os"

const (
	// DefaultHostV3 is the base URL for v3 endpoints
	DefaultHostV3 = "https://restapi.amap.com/v3"

	// DefaultHostV4 is the base URL for v4 endpoints
	DefaultHostV4 = "https://restapi.amap.com/v4"
)

// Config holds the credentials and host URLs for the amap REST APIs.
// It is constructed once at process start and never mutated afterwards.
type Config struct {
	Key    string
	HostV3 string
	HostV4 string
}

// ConfigFromEnv builds a Config from the process environment.
// AMAP_API_HOST and AMAP_API_HOST_V4 override the default hosts.
func ConfigFromEnv() Config {
	cfg := Config{
		Key:    os.Getenv("AMAP_API_KEY"),
		HostV3: os.Getenv("AMAP_API_HOST"),
		HostV4: os.Getenv("AMAP_API_HOST_V4"),
	}
	if cfg.HostV3 == "" {
		cfg.HostV3 = DefaultHostV3
	}
	if cfg.HostV4 == "" {
		cfg.HostV4 = DefaultHostV4
	}
	return cfg
}

// HasKey reports whether an API key is configured. Operations without a
// key must degrade to an immediate textual response, not a failed call.
func (c Config) HasKey() bool {
	return c.Key != ""
}
