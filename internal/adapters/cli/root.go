package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	nowFlag    string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lazysim",
		Short: "lazysim - inspect lazily computed economy state",
		Long: `lazysim reads the last checkpoints written by the game backend and
computes, for any instant, what the backend's next tick will credit:
employee energy, mining progress and yield, machine production.

Nothing is written back; every command is a pure read.

Examples:
  lazysim energy --employee emp-12
  lazysim energy --employee emp-12 --since 2025-06-01T08:00:00Z
  lazysim deposit estimate --deposit dep-3
  lazysim machine estimate --machine mach-7 --with-crew
  lazysim watch --deposit dep-3 --machine mach-7 --interval 5s
  lazysim config show`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: ./lazysim.yaml)")
	rootCmd.PersistentFlags().StringVar(&nowFlag, "now", "",
		"Evaluate at this RFC3339 instant instead of the wall clock")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")

	// Add command groups
	rootCmd.AddCommand(NewEnergyCommand())
	rootCmd.AddCommand(NewDepositCommand())
	rootCmd.AddCommand(NewMachineCommand())
	rootCmd.AddCommand(NewWatchCommand())
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewHealthCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
