package config

import (
	"time"

	"github.com/andrescamacho/lazysim/internal/domain/economy"
)

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Simulation defaults mirror the backend game constants
	rules := economy.DefaultRules()
	if cfg.Simulation.WorkDuration == 0 {
		cfg.Simulation.WorkDuration = rules.WorkDuration
	}
	if cfg.Simulation.RestDuration == 0 {
		cfg.Simulation.RestDuration = rules.RestDuration
	}
	if cfg.Simulation.HarvestInterval == 0 {
		cfg.Simulation.HarvestInterval = rules.HarvestInterval
	}
	if cfg.Simulation.DefaultProductionCycle == 0 {
		cfg.Simulation.DefaultProductionCycle = rules.DefaultProductionCycle
	}
	if cfg.Simulation.MaxCyclesPerTick == 0 {
		cfg.Simulation.MaxCyclesPerTick = rules.MaxCyclesPerTick
	}
	if cfg.Simulation.ProductivityMode == "" {
		cfg.Simulation.ProductivityMode = string(rules.Productivity)
	}
	if cfg.Simulation.MaintenancePolicy == "" {
		cfg.Simulation.MaintenancePolicy = string(rules.Maintenance)
	}

	// Store defaults
	if cfg.Store.Type == "" {
		cfg.Store.Type = "sqlite"
	}
	if cfg.Store.Type == "sqlite" && cfg.Store.Path == "" {
		cfg.Store.Path = "lazysim.db"
	}
	if cfg.Store.Type == "postgres" {
		if cfg.Store.Host == "" {
			cfg.Store.Host = "localhost"
		}
		if cfg.Store.Port == 0 {
			cfg.Store.Port = 5432
		}
		if cfg.Store.SSLMode == "" {
			cfg.Store.SSLMode = "disable"
		}
	}
	if cfg.Store.QueryTimeout == 0 {
		cfg.Store.QueryTimeout = 5 * time.Second
	}
	if cfg.Store.Pool.MaxOpen == 0 {
		cfg.Store.Pool.MaxOpen = 10
	}
	if cfg.Store.Pool.MaxIdle == 0 {
		cfg.Store.Pool.MaxIdle = 2
	}
	if cfg.Store.Pool.MaxLifetime == 0 {
		cfg.Store.Pool.MaxLifetime = 5 * time.Minute
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}

	// Metrics defaults
	if cfg.Metrics.Host == "" {
		cfg.Metrics.Host = "localhost"
	}
	if cfg.Metrics.Port == 0 {
		cfg.Metrics.Port = 9108
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	// Watch defaults
	if cfg.Watch.Interval == 0 {
		cfg.Watch.Interval = 5 * time.Second
	}
	if cfg.Watch.RateLimit == 0 {
		cfg.Watch.RateLimit = 10
	}
	if cfg.Watch.Burst == 0 {
		cfg.Watch.Burst = 5
	}
}
