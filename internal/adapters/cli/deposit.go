package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/lazysim/internal/application/estimation/queries"
)

// NewDepositCommand creates the deposit command with subcommands
func NewDepositCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Deposit mining estimates",
		Long: `Inspect what a deposit's crew has mined since the last harvest.

Examples:
  lazysim deposit estimate --deposit dep-3`,
	}

	cmd.AddCommand(newDepositEstimateCommand())

	return cmd
}

func newDepositEstimateCommand() *cobra.Command {
	var depositID string

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate progress and yield of the next harvest",
		Long: `Estimate the next harvest of a deposit.

Progress is the share of the harvest interval elapsed since the last harvest.
The yield is the energy-weighted skill of the crew over the same window,
floored to whole units, which is what the backend credits at its next tick.
A deposit that was never harvested reports zero.

Examples:
  lazysim deposit estimate --deposit dep-3
  lazysim deposit estimate                    # uses the default deposit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveDepositID(depositID)
			if err != nil {
				return err
			}
			return runDepositEstimate(cmd, id)
		},
	}

	cmd.Flags().StringVar(&depositID, "deposit", "", "Deposit ID (defaults to the user default)")

	return cmd
}

func runDepositEstimate(cmd *cobra.Command, depositID string) error {
	clock, err := resolveClock()
	if err != nil {
		return err
	}

	a, err := newApp(clock, false)
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.med.Send(a.context(cmd.Context()), &queries.EstimateMiningQuery{DepositID: depositID})
	if err != nil {
		return fmt.Errorf("failed to estimate mining: %w", err)
	}

	return displayMining(cmd.OutOrStdout(), result.(*queries.EstimateMiningResponse))
}
