package economy_test

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/cucumber/godog"
	messages "github.com/cucumber/messages/go/v21"

	"github.com/andrescamacho/lazysim/internal/domain/economy"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeLazyCalculationScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type lazyCalculationContext struct {
	rules       economy.Rules
	employee    *economy.Employee
	crew        []economy.Employee
	lastHarvest *time.Time
	machine     economy.Machine
	effective   float64
	mining      economy.MiningEstimate
	production  economy.ProductionEstimate
}

// anchor is a cycle-aligned instant; "cycle second n" means anchor + n seconds.
var anchor = time.Unix(600000*int64(economy.EnergyCycleTotal), 0).UTC()

func atCycleSecond(s int) time.Time {
	return anchor.Add(time.Duration(s) * time.Second)
}

func (lc *lazyCalculationContext) reset() {
	*lc = lazyCalculationContext{rules: economy.DefaultRules()}
}

// Given steps

func (lc *lazyCalculationContext) theDefaultSimulationRules() error {
	lc.rules = economy.DefaultRules()
	return nil
}

func (lc *lazyCalculationContext) legacyFlatTimeProductivity() error {
	lc.rules.Productivity = economy.ProductivityLegacyFlatTime
	return nil
}

func (lc *lazyCalculationContext) atMostCyclesPerTick(n int) error {
	lc.rules.MaxCyclesPerTick = int64(n)
	return nil
}

func (lc *lazyCalculationContext) anEmployeeWithoutPhaseOffset() error {
	lc.employee = &economy.Employee{ID: "emp-1"}
	return nil
}

func (lc *lazyCalculationContext) aCrewMemberWithSkill(skill float64) error {
	lc.crew = append(lc.crew, economy.Employee{ID: fmt.Sprintf("emp-%d", len(lc.crew)+1), Skill: skill})
	return nil
}

func (lc *lazyCalculationContext) theDepositWasLastHarvestedAt(s int) error {
	at := atCycleSecond(s)
	lc.lastHarvest = &at
	return nil
}

func (lc *lazyCalculationContext) aMachineWithCycle(cycle int, perCycle float64, startedAt int) error {
	start := atCycleSecond(startedAt)
	lc.machine = economy.Machine{
		ID:                     "mach-1",
		Durability:             economy.MachineDurabilityOnPlace,
		ProductionStartedAt:    &start,
		CycleTimeSeconds:       float64(cycle),
		OutputQuantityPerCycle: perCycle,
	}
	return nil
}

func (lc *lazyCalculationContext) anUnconfiguredMachine() error {
	lc.machine = economy.Machine{ID: "mach-1", Durability: economy.MachineDurabilityOnPlace}
	return nil
}

// When steps

func (lc *lazyCalculationContext) iIntegrateProductivity(from, to int) error {
	lc.effective = lc.rules.IntegrateProductivity(lc.employee, atCycleSecond(from), atCycleSecond(to))
	return nil
}

func (lc *lazyCalculationContext) iEstimateMiningAt(s int) error {
	lc.mining = lc.rules.EstimateMining(economy.Deposit{ID: "dep-1", LastHarvestAt: lc.lastHarvest}, lc.crew, lc.lastHarvest, atCycleSecond(s))
	return nil
}

func (lc *lazyCalculationContext) iEstimateProductionAt(s int) error {
	lc.production = lc.rules.EstimateProduction(lc.machine, lc.machine.ProductionStartedAt, atCycleSecond(s))
	return nil
}

// Then steps

func (lc *lazyCalculationContext) theEmployeeEnergyShouldBe(table *godog.Table) error {
	for _, row := range table.Rows[1:] {
		s, err := strconv.Atoi(cellValue(table, row, "seconds"))
		if err != nil {
			return err
		}
		energy, err := strconv.ParseFloat(cellValue(table, row, "energy"), 64)
		if err != nil {
			return err
		}
		phase := economy.Phase(cellValue(table, row, "phase"))

		status := lc.rules.PhaseOf(*lc.employee, atCycleSecond(s))
		if status.Phase != phase {
			return fmt.Errorf("at %ds expected phase %s, got %s", s, phase, status.Phase)
		}
		if !approx(status.EnergyPercent, energy) {
			return fmt.Errorf("at %ds expected energy %f, got %f", s, energy, status.EnergyPercent)
		}
	}
	return nil
}

func (lc *lazyCalculationContext) theEffectiveSecondsShouldBe(expected float64) error {
	if !approx(lc.effective, expected) {
		return fmt.Errorf("expected %f effective seconds, got %f", expected, lc.effective)
	}
	return nil
}

func (lc *lazyCalculationContext) theMiningProgressShouldBe(expected float64) error {
	if !approx(lc.mining.ProgressPercent, expected) {
		return fmt.Errorf("expected mining progress %f, got %f", expected, lc.mining.ProgressPercent)
	}
	return nil
}

func (lc *lazyCalculationContext) theEstimatedYieldShouldBe(expected int64) error {
	if lc.mining.EstimatedYield != expected {
		return fmt.Errorf("expected yield %d, got %d", expected, lc.mining.EstimatedYield)
	}
	return nil
}

func (lc *lazyCalculationContext) cyclesShouldBeCompleted(completed, elapsed int64) error {
	if lc.production.CyclesCompleted != completed {
		return fmt.Errorf("expected %d completed cycles, got %d", completed, lc.production.CyclesCompleted)
	}
	if lc.production.TimeBasedCycles != elapsed {
		return fmt.Errorf("expected %d elapsed cycles, got %d", elapsed, lc.production.TimeBasedCycles)
	}
	return nil
}

func (lc *lazyCalculationContext) unitsShouldBeProduced(expected int64) error {
	if lc.production.EstimatedProduced != expected {
		return fmt.Errorf("expected %d units produced, got %d", expected, lc.production.EstimatedProduced)
	}
	return nil
}

func (lc *lazyCalculationContext) theProductionProgressShouldBe(expected float64) error {
	if !approx(lc.production.ProgressPercent, expected) {
		return fmt.Errorf("expected production progress %f, got %f", expected, lc.production.ProgressPercent)
	}
	return nil
}

func (lc *lazyCalculationContext) productionShouldBeBlockedWith(reason string) error {
	if lc.production.CanProduce {
		return fmt.Errorf("expected production to be blocked")
	}
	if lc.production.BlockReason != reason {
		return fmt.Errorf("expected block reason '%s', got '%s'", reason, lc.production.BlockReason)
	}
	return nil
}

func InitializeLazyCalculationScenario(sc *godog.ScenarioContext) {
	lc := &lazyCalculationContext{}

	sc.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		lc.reset()
		return ctx, nil
	})

	// Given steps
	sc.Step(`^the default simulation rules$`, lc.theDefaultSimulationRules)
	sc.Step(`^legacy flat-time productivity$`, lc.legacyFlatTimeProductivity)
	sc.Step(`^at most (\d+) cycles per tick$`, lc.atMostCyclesPerTick)
	sc.Step(`^an employee without phase offset$`, lc.anEmployeeWithoutPhaseOffset)
	sc.Step(`^a crew member with skill ([0-9.]+)$`, lc.aCrewMemberWithSkill)
	sc.Step(`^the deposit was last harvested at cycle second (\d+)$`, lc.theDepositWasLastHarvestedAt)
	sc.Step(`^a machine with a (\d+) second cycle producing ([0-9.]+) per cycle started at cycle second (\d+)$`, lc.aMachineWithCycle)
	sc.Step(`^an unconfigured machine$`, lc.anUnconfiguredMachine)

	// When steps
	sc.Step(`^I integrate productivity from cycle second (\d+) to cycle second (\d+)$`, lc.iIntegrateProductivity)
	sc.Step(`^I estimate mining at cycle second (\d+)$`, lc.iEstimateMiningAt)
	sc.Step(`^I estimate production at cycle second (\d+)$`, lc.iEstimateProductionAt)

	// Then steps
	sc.Step(`^the employee energy should be:$`, lc.theEmployeeEnergyShouldBe)
	sc.Step(`^the effective seconds should be ([0-9.]+)$`, lc.theEffectiveSecondsShouldBe)
	sc.Step(`^the mining progress should be ([0-9.]+) percent$`, lc.theMiningProgressShouldBe)
	sc.Step(`^the estimated yield should be (\d+)$`, lc.theEstimatedYieldShouldBe)
	sc.Step(`^(\d+) cycles should be completed out of (\d+) elapsed$`, lc.cyclesShouldBeCompleted)
	sc.Step(`^(\d+) units should be produced$`, lc.unitsShouldBeProduced)
	sc.Step(`^the production progress should be ([0-9.]+) percent$`, lc.theProductionProgressShouldBe)
	sc.Step(`^production should be blocked with "([^"]*)"$`, lc.productionShouldBeBlockedWith)
}

// cellValue gets a cell value from a table row by header name
func cellValue(table *godog.Table, row *messages.PickleTableRow, columnName string) string {
	if len(table.Rows) == 0 {
		return ""
	}
	for i, headerCell := range table.Rows[0].Cells {
		if headerCell.Value == columnName && i < len(row.Cells) {
			return row.Cells[i].Value
		}
	}
	return ""
}

func approx(got, want float64) bool {
	return math.Abs(got-want) < 1e-6
}
