package economy_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/lazysim/internal/domain/economy"
)

func TestIntegrateProductivity_SingleWorkPhase(t *testing.T) {
	emp := &economy.Employee{ID: "emp-1"}
	t0 := cycleStart(600000)

	got := economy.IntegrateProductivity(emp, t0, t0.Add(secs(economy.EnergyWorkDuration)))

	assert.InDelta(t, economy.EnergyWorkDuration/2, got, 1e-9)
}

func TestIntegrateProductivity_RestContributesNothing(t *testing.T) {
	emp := &economy.Employee{ID: "emp-1"}
	t0 := cycleStart(600000).Add(secs(economy.EnergyWorkDuration))

	got := economy.IntegrateProductivity(emp, t0, t0.Add(secs(economy.EnergyRestDuration)))

	assert.Zero(t, got)
}

func TestIntegrateProductivity_PartialWindow(t *testing.T) {
	emp := &economy.Employee{ID: "emp-1"}
	t0 := cycleStart(600000)

	// F(45) = 45 - 45²/(2·1440)
	got := economy.IntegrateProductivity(emp, t0, t0.Add(45*time.Second))

	assert.InDelta(t, 45-2025.0/2880.0, got, 1e-9)
}

func TestIntegrateProductivity_MultiDayIdleGap(t *testing.T) {
	emp := &economy.Employee{ID: "emp-1"}
	t0 := cycleStart(600000)

	// 3 days = 90 full cycles
	got := economy.IntegrateProductivity(emp, t0, t0.Add(72*time.Hour))

	assert.InDelta(t, 90*economy.EnergyWorkDuration/2, got, 1e-6)
}

func TestIntegrateProductivity_EmptyOrInvalidWindow(t *testing.T) {
	emp := &economy.Employee{ID: "emp-1"}
	t0 := cycleStart(600000)

	assert.Zero(t, economy.IntegrateProductivity(emp, t0, t0))
	assert.Zero(t, economy.IntegrateProductivity(emp, t0.Add(time.Minute), t0))
	assert.Zero(t, economy.IntegrateProductivity(nil, t0, t0.Add(time.Hour)))
}

func TestIntegrateProductivity_Additivity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 300; i++ {
		emp := &economy.Employee{ID: "emp", CreatedAt: time.Unix(1_600_000_000+rng.Int63n(100_000_000), rng.Int63n(1e9))}
		a := time.Unix(1_700_000_000+rng.Int63n(10_000_000), rng.Int63n(1e9))
		b := a.Add(time.Duration(rng.Int63n(int64(48 * time.Hour))))
		c := b.Add(time.Duration(rng.Int63n(int64(48 * time.Hour))))

		whole := economy.IntegrateProductivity(emp, a, c)
		split := economy.IntegrateProductivity(emp, a, b) + economy.IntegrateProductivity(emp, b, c)

		assert.InDelta(t, whole, split, 1e-6, "a=%s b=%s c=%s", a, b, c)
	}
}

func TestIntegrateProductivity_NeverExceedsWindow(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 300; i++ {
		emp := &economy.Employee{ID: "emp", CreatedAt: time.Unix(rng.Int63n(2_000_000_000), 0)}
		start := time.Unix(1_700_000_000+rng.Int63n(10_000_000), 0)
		window := time.Duration(rng.Int63n(int64(24 * time.Hour)))

		got := economy.IntegrateProductivity(emp, start, start.Add(window))

		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, window.Seconds()+1e-9)
	}
}

func TestIntegrateProductivity_LegacyFlatTime(t *testing.T) {
	rules := economy.DefaultRules()
	rules.Productivity = economy.ProductivityLegacyFlatTime
	emp := &economy.Employee{ID: "emp-1"}
	t0 := cycleStart(600000)

	got := rules.IntegrateProductivity(emp, t0, t0.Add(secs(economy.EnergyCycleTotal)))

	assert.InDelta(t, economy.EnergyWorkDuration, got, 1e-9)
}

func TestIntegrateMaintenance_FlatCreditsRest(t *testing.T) {
	emp := &economy.Employee{ID: "emp-1"}
	t0 := cycleStart(600000)

	fullCycle := economy.IntegrateMaintenance(emp, t0, t0.Add(secs(economy.EnergyCycleTotal)))
	workOnly := economy.IntegrateMaintenance(emp, t0, t0.Add(secs(economy.EnergyWorkDuration)))

	assert.InDelta(t, economy.EnergyRestDuration, fullCycle, 1e-9)
	assert.Zero(t, workOnly)
}

func TestIntegrateMaintenance_Weighted(t *testing.T) {
	rules := economy.DefaultRules()
	rules.Maintenance = economy.MaintenanceWeighted
	emp := &economy.Employee{ID: "emp-1"}
	t0 := cycleStart(600000)

	got := rules.IntegrateMaintenance(emp, t0, t0.Add(secs(economy.EnergyCycleTotal)))

	assert.InDelta(t, economy.EnergyRestDuration/2, got, 1e-9)
}

func TestIntegrateMaintenance_Additivity(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for _, policy := range []economy.MaintenancePolicy{economy.MaintenanceFlat, economy.MaintenanceWeighted} {
		rules := economy.DefaultRules()
		rules.Maintenance = policy

		for i := 0; i < 100; i++ {
			emp := &economy.Employee{ID: "emp", CreatedAt: time.Unix(rng.Int63n(2_000_000_000), 0)}
			a := time.Unix(1_700_000_000+rng.Int63n(10_000_000), rng.Int63n(1e9))
			b := a.Add(time.Duration(rng.Int63n(int64(12 * time.Hour))))
			c := b.Add(time.Duration(rng.Int63n(int64(12 * time.Hour))))

			whole := rules.IntegrateMaintenance(emp, a, c)
			split := rules.IntegrateMaintenance(emp, a, b) + rules.IntegrateMaintenance(emp, b, c)

			assert.InDelta(t, whole, split, 1e-6)
		}
	}
}

func TestMaintenanceRepairs(t *testing.T) {
	rules := economy.DefaultRules()
	emp := &economy.Employee{ID: "emp-1"}
	t0 := cycleStart(600000)

	assert.Equal(t, int64(144), rules.MaintenanceRepairs(emp, t0, t0.Add(secs(economy.EnergyCycleTotal))))
	assert.Equal(t, int64(0), rules.MaintenanceRepairs(emp, t0, t0.Add(time.Hour/4)))
}

func TestIntegrateProductivity_WorkPlusMaintenanceCoversFlatCycle(t *testing.T) {
	rules := economy.DefaultRules()
	rules.Productivity = economy.ProductivityLegacyFlatTime
	rng := rand.New(rand.NewSource(5))

	for i := 0; i < 100; i++ {
		emp := &economy.Employee{ID: "emp", CreatedAt: time.Unix(rng.Int63n(2_000_000_000), 0)}
		start := time.Unix(1_700_000_000+rng.Int63n(10_000_000), 0)
		end := start.Add(time.Duration(rng.Int63n(int64(24 * time.Hour))))

		sum := rules.IntegrateProductivity(emp, start, end) + rules.IntegrateMaintenance(emp, start, end)

		assert.InDelta(t, end.Sub(start).Seconds(), sum, 1e-6)
	}
}

func TestIntegrateProductivity_CenturiesLongWindow(t *testing.T) {
	// 4,383,000 cycles of 2880 s is roughly 400 years, past time.Duration's range
	const cycles = 4383000
	e := &economy.Employee{ID: "emp-1"}
	t0 := cycleStart(600000)
	end := time.Unix(t0.Unix()+cycles*int64(economy.EnergyCycleTotal), 0).UTC()

	eff := economy.IntegrateProductivity(e, t0, end)

	assert.InDelta(t, float64(cycles)*economy.EnergyWorkDuration/2, eff, 1e-3)
}
