package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/lazysim/internal/application/estimation/queries"
)

// NewEnergyCommand creates the energy command
func NewEnergyCommand() *cobra.Command {
	var (
		employeeID string
		since      string
	)

	cmd := &cobra.Command{
		Use:   "energy",
		Short: "Show an employee's phase and energy",
		Long: `Show where an employee is in their work/rest cycle.

Energy drains from 100% to 0% while working and recovers while resting.
With --since, the window up to now is integrated as well: effective working
seconds (what mining credits), maintenance seconds and maintenance repairs.

Examples:
  lazysim energy --employee emp-12
  lazysim energy --employee emp-12 --since 2025-06-01T08:00:00Z
  lazysim energy --employee emp-12 --now 2025-06-01T09:00:00Z`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if employeeID == "" {
				return fmt.Errorf("--employee flag is required")
			}

			query := &queries.GetEmployeeEnergyQuery{EmployeeID: employeeID}
			if since != "" {
				start, err := parseInstant("since", since)
				if err != nil {
					return err
				}
				query.Since = &start
			}

			return runEnergy(cmd, query)
		},
	}

	cmd.Flags().StringVar(&employeeID, "employee", "", "Employee ID [required]")
	cmd.Flags().StringVar(&since, "since", "", "Integrate the window starting at this RFC3339 instant")

	return cmd
}

func runEnergy(cmd *cobra.Command, query *queries.GetEmployeeEnergyQuery) error {
	clock, err := resolveClock()
	if err != nil {
		return err
	}
	if query.Since != nil && query.Since.After(clock.Now()) {
		return fmt.Errorf("--since %s is after the evaluation instant", query.Since.Format(time.RFC3339))
	}

	a, err := newApp(clock, false)
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.med.Send(a.context(cmd.Context()), query)
	if err != nil {
		return fmt.Errorf("failed to evaluate energy: %w", err)
	}

	return displayEnergy(cmd.OutOrStdout(), result.(*queries.GetEmployeeEnergyResponse))
}
