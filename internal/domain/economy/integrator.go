package economy

import (
	"math"
	"time"
)

// IntegrateProductivity returns the effective working seconds of e over [start, end]
// using the default rules.
func IntegrateProductivity(e *Employee, start, end time.Time) float64 {
	return DefaultRules().IntegrateProductivity(e, start, end)
}

// IntegrateMaintenance returns the effective maintenance seconds of e over [start, end]
// using the default rules.
func IntegrateMaintenance(e *Employee, start, end time.Time) float64 {
	return DefaultRules().IntegrateMaintenance(e, start, end)
}

// IntegrateProductivity returns ∫ efficiency(t) dt over [start, end].
//
// During the work sub-phase efficiency decays linearly from 1 to 0, so each
// overlap [a, b] contributes F(b) - F(a) with F(t) = t - t²/(2·work). Rest
// contributes nothing. With ProductivityLegacyFlatTime every working second
// counts as 1.
//
// Returns 0 for a nil employee or an empty/inverted window.
func (r Rules) IntegrateProductivity(e *Employee, start, end time.Time) float64 {
	if e == nil || !end.After(start) {
		return 0
	}
	work := r.WorkDuration.Seconds()

	return r.walkCycles(*e, start, end, func(relStart, relEnd float64) float64 {
		a := math.Max(relStart, 0)
		b := math.Min(relEnd, work)
		if a >= b {
			return 0
		}
		if r.Productivity == ProductivityLegacyFlatTime {
			return b - a
		}
		return workAntiderivative(b, work) - workAntiderivative(a, work)
	})
}

// IntegrateMaintenance returns the maintenance seconds earned while resting
// over [start, end]. MaintenanceFlat credits rest at full efficiency;
// MaintenanceWeighted weights it by the recovering energy, G(t) = t²/(2·rest).
//
// Returns 0 for a nil employee or an empty/inverted window.
func (r Rules) IntegrateMaintenance(e *Employee, start, end time.Time) float64 {
	if e == nil || !end.After(start) {
		return 0
	}
	work := r.WorkDuration.Seconds()
	total := r.CycleTotal().Seconds()
	rest := r.RestDuration.Seconds()

	return r.walkCycles(*e, start, end, func(relStart, relEnd float64) float64 {
		a := math.Max(relStart, work)
		b := math.Min(relEnd, total)
		if a >= b {
			return 0
		}
		if r.Maintenance == MaintenanceWeighted {
			return restAntiderivative(b-work, rest) - restAntiderivative(a-work, rest)
		}
		return b - a
	})
}

// MaintenanceRepairs returns how many maintenance ticks e earns over [start, end].
func (r Rules) MaintenanceRepairs(e *Employee, start, end time.Time) int64 {
	return floorToInt64(r.IntegrateMaintenance(e, start, end) / MaintenanceIntervalSeconds)
}

// walkCycles splits [start, end] into cycle-aligned segments and sums segment(relStart, relEnd)
// over them, where both bounds are relative to the start of their cycle.
// The loop runs once per cycle spanned, never once per second.
func (r Rules) walkCycles(e Employee, start, end time.Time, segment func(relStart, relEnd float64) float64) float64 {
	cycle := r.CycleTotal()
	if r.WorkDuration <= 0 || r.RestDuration <= 0 {
		return 0
	}
	total := cycle.Seconds()

	relStart := cyclePosition(start, e, cycle).Seconds()
	remaining := spanSeconds(start, end)

	effective := 0.0
	for remaining > 0 {
		chunk := math.Min(remaining, total-relStart)
		effective += segment(relStart, relStart+chunk)
		remaining -= chunk
		relStart = 0
	}
	return effective
}

// spanSeconds returns end - start in seconds. Unlike time.Time.Sub it does not
// saturate at ~292 years.
func spanSeconds(start, end time.Time) float64 {
	return float64(end.Unix()-start.Unix()) + float64(end.Nanosecond()-start.Nanosecond())/1e9
}

// workAntiderivative is F(t) = t - t²/(2·work), the integral of 1 - t/work.
func workAntiderivative(t, work float64) float64 {
	return t - (t*t)/(2*work)
}

// restAntiderivative is G(t) = t²/(2·rest), the integral of t/rest.
func restAntiderivative(t, rest float64) float64 {
	return (t * t) / (2 * rest)
}
