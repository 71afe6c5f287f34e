package economy

import (
	"math/bits"
	"time"
)

// Phase is the sub-phase of the work/rest cycle an employee is in.
type Phase string

const (
	PhaseWorking Phase = "working"
	PhaseResting Phase = "resting"
)

// PhaseStatus is the energy snapshot of an employee at a given instant.
type PhaseStatus struct {
	EnergyPercent float64
	Phase         Phase
}

// IsWorking returns true during the work sub-phase
func (p PhaseStatus) IsWorking() bool {
	return p.Phase == PhaseWorking
}

// PhaseOf returns the employee's phase and energy at now using the default rules.
func PhaseOf(e Employee, now time.Time) PhaseStatus {
	return DefaultRules().PhaseOf(e, now)
}

// PhaseOf returns the employee's phase and energy at now.
//
// The cycle position is (now + CreatedAt) mod cycle, with both timestamps taken
// as epoch time. The same employee therefore resumes the same point of its
// cycle across reloads, while employees hired at different times drift apart.
func (r Rules) PhaseOf(e Employee, now time.Time) PhaseStatus {
	cycle := r.CycleTotal()
	if r.WorkDuration <= 0 || r.RestDuration <= 0 {
		return PhaseStatus{Phase: PhaseResting}
	}

	pos := cyclePosition(now, e, cycle).Seconds()
	work := r.WorkDuration.Seconds()

	if pos < work {
		return PhaseStatus{
			EnergyPercent: clampPercent(100 * (1 - pos/work)),
			Phase:         PhaseWorking,
		}
	}

	rest := pos - work
	return PhaseStatus{
		EnergyPercent: clampPercent(100 * (rest / r.RestDuration.Seconds())),
		Phase:         PhaseResting,
	}
}

// cyclePosition returns where t falls inside the employee's cycle, in [0, cycle).
func cyclePosition(t time.Time, e Employee, cycle time.Duration) time.Duration {
	pos := epochMod(t, cycle) + employeeOffset(e, cycle)
	if pos >= cycle {
		pos -= cycle
	}
	return pos
}

// employeeOffset is CreatedAt reduced modulo the cycle. A snapshot without a
// creation time has no offset.
func employeeOffset(e Employee, cycle time.Duration) time.Duration {
	if e.CreatedAt.IsZero() {
		return 0
	}
	return epochMod(e.CreatedAt, cycle)
}

// epochMod returns the nanoseconds since the Unix epoch of t modulo cycle,
// always in [0, cycle). It is exact for every representable time.Time: the
// seconds and nanoseconds parts are reduced separately so nothing overflows.
func epochMod(t time.Time, cycle time.Duration) time.Duration {
	c := uint64(cycle)
	if c == 0 {
		return 0
	}

	secs := t.Unix() % int64(c)
	if secs < 0 {
		secs += int64(c)
	}

	hi, lo := bits.Mul64(uint64(secs), uint64(time.Second)%c)
	r := bits.Rem64(hi, lo, c)
	r = (r + uint64(t.Nanosecond())%c) % c
	return time.Duration(r)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
