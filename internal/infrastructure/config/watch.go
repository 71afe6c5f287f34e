package config

import "time"

// WatchConfig holds configuration for the periodic re-evaluation loop
type WatchConfig struct {
	// How often estimates are recomputed
	Interval time.Duration `mapstructure:"interval" validate:"gt=0"`

	// Maximum evaluations per second, across all watched entities
	RateLimit float64 `mapstructure:"rate_limit" validate:"gt=0"`

	// Burst size for the evaluation token bucket
	Burst int `mapstructure:"burst" validate:"min=1"`
}
