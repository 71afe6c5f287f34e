package economy

import (
	"fmt"
	"time"

	"github.com/andrescamacho/lazysim/internal/domain/shared"
)

// ProductivityMode selects how the work sub-phase is credited.
type ProductivityMode string

const (
	// ProductivityEnergyWeighted integrates the linear efficiency decay of the work phase.
	// This is the reference behaviour and matches the backend.
	ProductivityEnergyWeighted ProductivityMode = "energy_weighted"

	// ProductivityLegacyFlatTime credits every working second at full efficiency.
	// Legacy client approximation, kept only for comparison runs.
	ProductivityLegacyFlatTime ProductivityMode = "legacy_flat_time"
)

// MaintenancePolicy selects how the rest sub-phase is credited as maintenance.
type MaintenancePolicy string

const (
	// MaintenanceFlat credits every resting second at full efficiency
	MaintenanceFlat MaintenancePolicy = "flat"

	// MaintenanceWeighted weights resting seconds by the recovering energy (0% -> 100%)
	MaintenanceWeighted MaintenancePolicy = "weighted"
)

// Rules bundles the tunables every calculation is evaluated against.
// Rules is a plain value; methods never mutate it and are safe for concurrent use.
type Rules struct {
	WorkDuration           time.Duration
	RestDuration           time.Duration
	HarvestInterval        time.Duration
	DefaultProductionCycle time.Duration
	MaxCyclesPerTick       int64
	Productivity           ProductivityMode
	Maintenance            MaintenancePolicy
}

// DefaultRules returns the rules built from the package constants.
func DefaultRules() Rules {
	return Rules{
		WorkDuration:           seconds(EnergyWorkDuration),
		RestDuration:           seconds(EnergyRestDuration),
		HarvestInterval:        seconds(HarvestIntervalSeconds),
		DefaultProductionCycle: seconds(DefaultHarvestCycle),
		MaxCyclesPerTick:       MaxCyclesPerTick,
		Productivity:           ProductivityEnergyWeighted,
		Maintenance:            MaintenanceFlat,
	}
}

// CycleTotal returns the full work + rest period.
func (r Rules) CycleTotal() time.Duration {
	return r.WorkDuration + r.RestDuration
}

// Validate reports configuration that would make the calculations degenerate.
// Callers validate once at startup; the calculation methods only guard against
// it and return zero results.
func (r Rules) Validate() error {
	if r.WorkDuration <= 0 {
		return shared.NewValidationError("work_duration", fmt.Sprintf("must be positive, got %s", r.WorkDuration))
	}
	if r.RestDuration <= 0 {
		return shared.NewValidationError("rest_duration", fmt.Sprintf("must be positive, got %s", r.RestDuration))
	}
	if r.HarvestInterval <= 0 {
		return shared.NewValidationError("harvest_interval", fmt.Sprintf("must be positive, got %s", r.HarvestInterval))
	}
	if r.DefaultProductionCycle <= 0 {
		return shared.NewValidationError("default_production_cycle", fmt.Sprintf("must be positive, got %s", r.DefaultProductionCycle))
	}
	if r.MaxCyclesPerTick < 1 {
		return shared.NewValidationError("max_cycles_per_tick", fmt.Sprintf("must be at least 1, got %d", r.MaxCyclesPerTick))
	}
	switch r.Productivity {
	case ProductivityEnergyWeighted, ProductivityLegacyFlatTime:
	default:
		return shared.NewValidationError("productivity_mode", fmt.Sprintf("unknown mode %q", r.Productivity))
	}
	switch r.Maintenance {
	case MaintenanceFlat, MaintenanceWeighted:
	default:
		return shared.NewValidationError("maintenance_policy", fmt.Sprintf("unknown policy %q", r.Maintenance))
	}
	return nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
