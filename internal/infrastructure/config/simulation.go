package config

import (
	"time"

	"github.com/andrescamacho/lazysim/internal/domain/economy"
)

// SimulationConfig holds the tunables of the lazy calculation.
// Every duration must be positive: a zero cycle would make the calculations
// degenerate, so it is rejected here instead of being guarded on every call.
type SimulationConfig struct {
	// Work sub-phase length (efficiency 100% -> 0%)
	WorkDuration time.Duration `mapstructure:"work_duration" validate:"gt=0"`

	// Rest sub-phase length (energy 0% -> 100%)
	RestDuration time.Duration `mapstructure:"rest_duration" validate:"gt=0"`

	// Interval a mining yield is expressed against
	HarvestInterval time.Duration `mapstructure:"harvest_interval" validate:"gt=0"`

	// Production cycle for items that define none
	DefaultProductionCycle time.Duration `mapstructure:"default_production_cycle" validate:"gt=0"`

	// Production cycles credited per evaluation (backend anti-exploit cap)
	MaxCyclesPerTick int64 `mapstructure:"max_cycles_per_tick" validate:"min=1"`

	// Productivity integration: energy_weighted (reference) or legacy_flat_time
	ProductivityMode string `mapstructure:"productivity_mode" validate:"required,oneof=energy_weighted legacy_flat_time"`

	// Maintenance credit during rest: flat or weighted
	MaintenancePolicy string `mapstructure:"maintenance_policy" validate:"required,oneof=flat weighted"`
}

// Rules converts the configuration into calculation rules
func (s SimulationConfig) Rules() economy.Rules {
	return economy.Rules{
		WorkDuration:           s.WorkDuration,
		RestDuration:           s.RestDuration,
		HarvestInterval:        s.HarvestInterval,
		DefaultProductionCycle: s.DefaultProductionCycle,
		MaxCyclesPerTick:       s.MaxCyclesPerTick,
		Productivity:           economy.ProductivityMode(s.ProductivityMode),
		Maintenance:            economy.MaintenancePolicy(s.MaintenancePolicy),
	}
}
