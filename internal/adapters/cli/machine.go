package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/lazysim/internal/application/estimation/queries"
)

// NewMachineCommand creates the machine command with subcommands
func NewMachineCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "machine",
		Short: "Machine production estimates",
		Long: `Inspect what a machine has produced since its production checkpoint.

Examples:
  lazysim machine estimate --machine mach-7
  lazysim machine estimate --machine mach-7 --with-crew`,
	}

	cmd.AddCommand(newMachineEstimateCommand())

	return cmd
}

func newMachineEstimateCommand() *cobra.Command {
	var (
		machineID string
		withCrew  bool
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate cycles and output of the next production tick",
		Long: `Estimate the next production tick of a machine.

The cycle time comes from the item catalog. Completed cycles are capped at
the per-tick maximum the backend credits; progress keeps looping within the
current cycle even once the cap is reached. Durability is advisory and never
blocks production.

With --with-crew, the operators' energy-weighted skill adds bonus cycles.

Examples:
  lazysim machine estimate --machine mach-7
  lazysim machine estimate --machine mach-7 --with-crew`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveMachineID(machineID)
			if err != nil {
				return err
			}
			return runMachineEstimate(cmd, id, withCrew)
		},
	}

	cmd.Flags().StringVar(&machineID, "machine", "", "Machine ID (defaults to the user default)")
	cmd.Flags().BoolVar(&withCrew, "with-crew", false, "Include the crew skill boost")

	return cmd
}

func runMachineEstimate(cmd *cobra.Command, machineID string, withCrew bool) error {
	clock, err := resolveClock()
	if err != nil {
		return err
	}

	a, err := newApp(clock, false)
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.med.Send(a.context(cmd.Context()), &queries.EstimateProductionQuery{
		MachineID: machineID,
		WithCrew:  withCrew,
	})
	if err != nil {
		return fmt.Errorf("failed to estimate production: %w", err)
	}

	return displayProduction(cmd.OutOrStdout(), result.(*queries.EstimateProductionResponse))
}
