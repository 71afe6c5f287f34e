package economy

import (
	"math"
	"time"
)

// MiningEstimate is the advisory mining progress of a deposit since its last harvest.
// The authoritative yield is computed and committed by the backend.
type MiningEstimate struct {
	ProgressPercent float64
	EstimatedYield  int64

	// Current crew snapshot for display
	AverageEnergy float64
	ActiveWorkers int
}

// EstimateMining estimates mining progress using the default rules.
func EstimateMining(d Deposit, employees []Employee, lastHarvestAt *time.Time, now time.Time) MiningEstimate {
	return DefaultRules().EstimateMining(d, employees, lastHarvestAt, now)
}

// EstimateMining estimates the yield accumulated by the deposit's crew since lastHarvestAt.
//
// Progress is elapsed time against the harvest interval, capped at 100.
// Yield is Σ skill·effectiveSeconds / harvestInterval, floored: fractional
// units are not deliverable. A deposit that was never harvested, or has no
// crew, estimates to zero. The deposit's remaining quantity does not cap the
// estimate; depletion is decided by the backend on harvest.
func (r Rules) EstimateMining(d Deposit, employees []Employee, lastHarvestAt *time.Time, now time.Time) MiningEstimate {
	if lastHarvestAt == nil || len(employees) == 0 || r.HarvestInterval <= 0 {
		return MiningEstimate{}
	}

	interval := r.HarvestInterval.Seconds()
	elapsed := math.Max(0, spanSeconds(*lastHarvestAt, now))

	weighted := r.weightedSkillSeconds(employees, *lastHarvestAt, now)
	crew := r.crewSnapshot(employees, now)

	return MiningEstimate{
		ProgressPercent: math.Min(100, 100*elapsed/interval),
		EstimatedYield:  floorToInt64(weighted / interval),
		AverageEnergy:   crew.averageEnergy,
		ActiveWorkers:   crew.activeWorkers,
	}
}

// weightedSkillSeconds sums skill × effective working seconds over [start, end].
func (r Rules) weightedSkillSeconds(employees []Employee, start, end time.Time) float64 {
	total := 0.0
	for i := range employees {
		eff := r.IntegrateProductivity(&employees[i], start, end)
		if eff > 0 {
			total += employees[i].Skill * eff
		}
	}
	return total
}

type crewSnapshot struct {
	activeWorkers int
	averageEnergy float64
}

// crewSnapshot counts employees currently working and averages their energy.
func (r Rules) crewSnapshot(employees []Employee, now time.Time) crewSnapshot {
	var snap crewSnapshot
	energySum := 0.0
	for _, e := range employees {
		status := r.PhaseOf(e, now)
		if status.IsWorking() {
			snap.activeWorkers++
			energySum += status.EnergyPercent
		}
	}
	if snap.activeWorkers > 0 {
		snap.averageEnergy = energySum / float64(snap.activeWorkers)
	}
	return snap
}
