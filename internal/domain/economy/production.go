package economy

import (
	"math"
	"time"
)

// BlockReasonNotConfigured is reported for machines without a start checkpoint or cycle time.
const BlockReasonNotConfigured = "Machine non configurée"

// ProductionEstimate is the advisory production progress of a machine.
type ProductionEstimate struct {
	// ProgressPercent animates through every cycle, including past the cycle cap
	ProgressPercent float64

	// TimeBasedCycles is the true number of elapsed cycles
	TimeBasedCycles int64

	// CyclesCompleted is TimeBasedCycles capped at MaxCyclesPerTick
	CyclesCompleted int64

	EstimatedProduced   int64
	EstimatedDurability float64

	CanProduce  bool
	BlockReason string

	// Crew snapshot, only filled by EstimateProductionWithCrew
	AverageEnergy float64
	ActiveWorkers int
}

// EstimateProduction estimates machine production using the default rules.
func EstimateProduction(m Machine, productionStartedAt *time.Time, now time.Time) ProductionEstimate {
	return DefaultRules().EstimateProduction(m, productionStartedAt, now)
}

// EstimateProductionWithCrew estimates machine production including crew boost using the default rules.
func EstimateProductionWithCrew(m Machine, employees []Employee, productionStartedAt *time.Time, now time.Time) ProductionEstimate {
	return DefaultRules().EstimateProductionWithCrew(m, employees, productionStartedAt, now)
}

// EstimateProduction estimates the cycles a machine completed since productionStartedAt.
//
// Credited cycles saturate at MaxCyclesPerTick exactly like the backend's
// per-tick cap, and EstimatedProduced is derived from that capped count.
// ProgressPercent is computed from the uncapped elapsed time so the progress
// bar keeps looping after the cap is reached; the two are intentionally
// decoupled.
//
// Power and durability are not modelled: the machine is treated as always
// powered (multiplier 1.0) because the authoritative values depend on the
// whole production graph, which only the backend holds. EstimatedDurability
// is a display hint and never blocks production.
func (r Rules) EstimateProduction(m Machine, productionStartedAt *time.Time, now time.Time) ProductionEstimate {
	if productionStartedAt == nil || !validCycleTime(m.CycleTimeSeconds) {
		return ProductionEstimate{
			EstimatedDurability: m.Durability,
			CanProduce:          false,
			BlockReason:         BlockReasonNotConfigured,
		}
	}

	const energyMultiplier = 1.0

	cycle := m.CycleTimeSeconds
	elapsed := math.Max(0, spanSeconds(*productionStartedAt, now)) * energyMultiplier

	timeBased := floorToInt64(elapsed / cycle)
	completed := timeBased
	if r.MaxCyclesPerTick > 0 && completed > r.MaxCyclesPerTick {
		completed = r.MaxCyclesPerTick
	}

	return ProductionEstimate{
		ProgressPercent:     math.Mod(elapsed, cycle) / cycle * 100,
		TimeBasedCycles:     timeBased,
		CyclesCompleted:     completed,
		EstimatedProduced:   floorToInt64(float64(completed) * outputPerCycle(m)),
		EstimatedDurability: math.Max(0, m.Durability-float64(completed)),
		CanProduce:          true,
	}
}

// EstimateProductionWithCrew extends EstimateProduction with the crew skill boost:
// boostCycles = (Σ skill·effectiveSeconds / CrewBoostDivisor) / cycleTime,
// added on top of the capped cycles before flooring the produced quantity.
func (r Rules) EstimateProductionWithCrew(m Machine, employees []Employee, productionStartedAt *time.Time, now time.Time) ProductionEstimate {
	est := r.EstimateProduction(m, productionStartedAt, now)
	if !est.CanProduce {
		return est
	}

	weighted := r.weightedSkillSeconds(employees, *productionStartedAt, now)
	boostCycles := (weighted / CrewBoostDivisor) / m.CycleTimeSeconds
	est.EstimatedProduced = floorToInt64((float64(est.CyclesCompleted) + boostCycles) * outputPerCycle(m))

	crew := r.crewSnapshot(employees, now)
	est.ActiveWorkers = crew.activeWorkers
	est.AverageEnergy = crew.averageEnergy
	return est
}

// outputPerCycle defaults to one unit when the item defines no usable quantity.
func outputPerCycle(m Machine) float64 {
	if !(m.OutputQuantityPerCycle > 0) || math.IsInf(m.OutputQuantityPerCycle, 1) {
		return 1
	}
	return m.OutputQuantityPerCycle
}
