package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/andrescamacho/lazysim/internal/application/estimation/queries"
	"github.com/andrescamacho/lazysim/internal/domain/economy"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	workingColor = color.New(color.FgGreen)
	restingColor = color.New(color.FgYellow)
	blockedColor = color.New(color.FgRed, color.Bold)
)

const displayTime = "2006-01-02 15:04:05 MST"

// renderKeyValues prints a two-column table
func renderKeyValues(w io.Writer, rows [][]string) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Field", "Value"}),
	)
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func phaseLabel(p economy.Phase) string {
	if p == economy.PhaseWorking {
		return workingColor.Sprint(string(p))
	}
	return restingColor.Sprint(string(p))
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return "never"
	}
	return t.Format(displayTime)
}

func displayEnergy(w io.Writer, resp *queries.GetEmployeeEnergyResponse) error {
	titleColor.Fprintf(w, "Employee %s\n", resp.Employee.ID)

	rows := [][]string{
		{"Evaluated at", resp.EvaluatedAt.Format(displayTime)},
		{"Phase", phaseLabel(resp.Status.Phase)},
		{"Energy", fmt.Sprintf("%.1f%%", resp.Status.EnergyPercent)},
		{"Skill", fmt.Sprintf("%.2f", resp.Employee.Skill)},
	}
	if resp.WindowStart != nil {
		rows = append(rows,
			[]string{"Window start", resp.WindowStart.Format(displayTime)},
			[]string{"Effective seconds", fmt.Sprintf("%.1f", resp.EffectiveSeconds)},
			[]string{"Maintenance seconds", fmt.Sprintf("%.1f", resp.MaintenanceSeconds)},
			[]string{"Maintenance repairs", fmt.Sprintf("%d", resp.MaintenanceRepairs)},
		)
	}

	return renderKeyValues(w, rows)
}

func displayMining(w io.Writer, resp *queries.EstimateMiningResponse) error {
	d := resp.Deposit
	titleColor.Fprintf(w, "Deposit %s (%s)\n", d.ID, d.ResourceID)

	return renderKeyValues(w, [][]string{
		{"Evaluated at", resp.EvaluatedAt.Format(displayTime)},
		{"Last harvest", formatOptionalTime(d.LastHarvestAt)},
		{"Crew", fmt.Sprintf("%d / %d", resp.CrewSize, d.MaxEmployees())},
		{"Active workers", fmt.Sprintf("%d", resp.Estimate.ActiveWorkers)},
		{"Average energy", fmt.Sprintf("%.1f%%", resp.Estimate.AverageEnergy)},
		{"Progress", fmt.Sprintf("%.1f%%", resp.Estimate.ProgressPercent)},
		{"Estimated yield", fmt.Sprintf("%d", resp.Estimate.EstimatedYield)},
		{"Remaining in deposit", fmt.Sprintf("%.0f", d.QuantityRemaining)},
	})
}

func displayProduction(w io.Writer, resp *queries.EstimateProductionResponse) error {
	m := resp.Machine
	est := resp.Estimate
	titleColor.Fprintf(w, "Machine %s (%s)\n", m.ID, m.ItemID)

	if !est.CanProduce {
		blockedColor.Fprintf(w, "Blocked: %s\n", est.BlockReason)
	}

	rows := [][]string{
		{"Evaluated at", resp.EvaluatedAt.Format(displayTime)},
		{"Production started", formatOptionalTime(m.ProductionStartedAt)},
		{"Cycle time", fmt.Sprintf("%.0fs", m.CycleTimeSeconds)},
		{"Output per cycle", fmt.Sprintf("%.0f", m.OutputQuantityPerCycle)},
		{"Progress", fmt.Sprintf("%.1f%%", est.ProgressPercent)},
		{"Cycles (elapsed / credited)", fmt.Sprintf("%d / %d", est.TimeBasedCycles, est.CyclesCompleted)},
		{"Estimated produced", fmt.Sprintf("%d", est.EstimatedProduced)},
		{"Durability", fmt.Sprintf("%.0f -> %.0f", m.Durability, est.EstimatedDurability)},
	}
	if resp.WithCrew {
		rows = append(rows,
			[]string{"Crew", fmt.Sprintf("%d", resp.CrewSize)},
			[]string{"Active workers", fmt.Sprintf("%d", est.ActiveWorkers)},
			[]string{"Average energy", fmt.Sprintf("%.1f%%", est.AverageEnergy)},
		)
	}

	return renderKeyValues(w, rows)
}

func displayRules(w io.Writer, rules economy.Rules) error {
	return renderKeyValues(w, [][]string{
		{"Work duration", rules.WorkDuration.String()},
		{"Rest duration", rules.RestDuration.String()},
		{"Energy cycle", rules.CycleTotal().String()},
		{"Harvest interval", rules.HarvestInterval.String()},
		{"Default production cycle", rules.DefaultProductionCycle.String()},
		{"Max cycles per tick", fmt.Sprintf("%d", rules.MaxCyclesPerTick)},
		{"Productivity", string(rules.Productivity)},
		{"Maintenance", string(rules.Maintenance)},
	})
}

// watchMiningLine prints a single compact status line for the watch loop
func watchMiningLine(w io.Writer, resp *queries.EstimateMiningResponse) {
	fmt.Fprintf(w, "[%s] deposit %-12s progress %5.1f%%  yield %d  workers %d/%d\n",
		resp.EvaluatedAt.Format("15:04:05"),
		resp.Deposit.ID,
		resp.Estimate.ProgressPercent,
		resp.Estimate.EstimatedYield,
		resp.Estimate.ActiveWorkers,
		resp.CrewSize,
	)
}

func watchProductionLine(w io.Writer, resp *queries.EstimateProductionResponse) {
	est := resp.Estimate
	if !est.CanProduce {
		fmt.Fprintf(w, "[%s] machine %-12s %s\n",
			resp.EvaluatedAt.Format("15:04:05"), resp.Machine.ID, blockedColor.Sprint(est.BlockReason))
		return
	}
	fmt.Fprintf(w, "[%s] machine %-12s progress %5.1f%%  cycles %d  produced %d  durability %.0f\n",
		resp.EvaluatedAt.Format("15:04:05"),
		resp.Machine.ID,
		est.ProgressPercent,
		est.CyclesCompleted,
		est.EstimatedProduced,
		est.EstimatedDurability,
	)
}
