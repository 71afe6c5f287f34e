package cli

import (
	"fmt"
	"net/url"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/lazysim/internal/adapters/persistence"
	"github.com/andrescamacho/lazysim/internal/infrastructure/config"
	"github.com/andrescamacho/lazysim/internal/infrastructure/database"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration settings",
		Long: `Manage lazysim configuration settings.

Configuration is loaded from multiple sources with priority:
1. Environment variables (LAZYSIM_* prefix)
2. Config file (lazysim.yaml)
3. Default values

User preferences (default deposit and machine) are stored in ~/.lazysim/config.json

Examples:
  lazysim config show
  lazysim config set-default --deposit dep-3 --machine mach-7
  lazysim config clear-default`,
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetDefaultCommand())
	cmd.AddCommand(newConfigClearDefaultCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective, validated configuration",
		Long: `Display the effective simulation rules and settings.

The configuration is validated first; an invalid configuration is reported
instead of shown.

Example:
  lazysim config show`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			w := cmd.OutOrStdout()

			titleColor.Fprintln(w, "Simulation Rules")
			if err := displayRules(w, cfg.Simulation.Rules()); err != nil {
				return err
			}

			catalogPath := cfg.Catalog.Path
			if catalogPath == "" {
				catalogPath = "(embedded)"
			}
			metricsStatus := "disabled"
			if cfg.Metrics.Enabled {
				metricsStatus = "http://" + cfg.Metrics.Address() + cfg.Metrics.Path
			}

			titleColor.Fprintln(w, "\nSettings")
			if err := renderKeyValues(w, [][]string{
				{"Store", cfg.Store.Type + " " + maskPassword(cfg.Store.DSN())},
				{"Query timeout", cfg.Store.QueryTimeout.String()},
				{"Catalog", catalogPath},
				{"Logging", cfg.Logging.Level + " / " + cfg.Logging.Format + " / " + cfg.Logging.Output},
				{"Metrics", metricsStatus},
				{"Watch interval", cfg.Watch.Interval.String()},
				{"Watch rate limit", fmt.Sprintf("%.1f/s (burst %d)", cfg.Watch.RateLimit, cfg.Watch.Burst)},
			}); err != nil {
				return err
			}

			handler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}
			userCfg, err := handler.Load()
			if err != nil {
				fmt.Fprintf(w, "Warning: failed to load user config: %v\n", err)
				userCfg = &config.UserConfig{}
			}

			titleColor.Fprintln(w, "\nUser Preferences")
			return renderKeyValues(w, [][]string{
				{"Config file", handler.ConfigPath()},
				{"Default deposit", orNotSet(userCfg.DefaultDepositID)},
				{"Default machine", orNotSet(userCfg.DefaultMachineID)},
			})
		},
	}

	return cmd
}

func newConfigSetDefaultCommand() *cobra.Command {
	var (
		depositID string
		machineID string
	)

	cmd := &cobra.Command{
		Use:   "set-default",
		Short: "Set the default deposit and/or machine",
		Long: `Remember the deposit and/or machine used when --deposit or --machine is omitted.

Each id is checked against the store before it is saved.

Examples:
  lazysim config set-default --deposit dep-3
  lazysim config set-default --deposit dep-3 --machine mach-7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if depositID == "" && machineID == "" {
				return fmt.Errorf("either --deposit or --machine flag is required")
			}

			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			db, err := database.NewConnection(&cfg.Store)
			if err != nil {
				return fmt.Errorf("failed to connect to store: %w", err)
			}
			defer database.Close(db)

			repo := persistence.NewGormSnapshotRepository(db)
			ctx := cmd.Context()

			handler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}

			w := cmd.OutOrStdout()

			if depositID != "" {
				if _, err := repo.FindDeposit(ctx, depositID); err != nil {
					return err
				}
				if err := handler.SetDefaultDeposit(depositID); err != nil {
					return fmt.Errorf("failed to set default deposit: %w", err)
				}
				fmt.Fprintf(w, "✓ Default deposit set to %s\n", depositID)
			}

			if machineID != "" {
				if _, err := repo.FindMachine(ctx, machineID); err != nil {
					return err
				}
				if err := handler.SetDefaultMachine(machineID); err != nil {
					return fmt.Errorf("failed to set default machine: %w", err)
				}
				fmt.Fprintf(w, "✓ Default machine set to %s\n", machineID)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&depositID, "deposit", "", "Deposit ID")
	cmd.Flags().StringVar(&machineID, "machine", "", "Machine ID")

	return cmd
}

func newConfigClearDefaultCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear-default",
		Short: "Clear the default deposit and machine",
		Long: `Remove the default deposit and machine settings.

Example:
  lazysim config clear-default`,
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}

			if err := handler.ClearDefaults(); err != nil {
				return fmt.Errorf("failed to clear defaults: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "✓ Defaults cleared")
			return nil
		},
	}

	return cmd
}

func orNotSet(v string) string {
	if v == "" {
		return "(not set)"
	}
	return v
}

// maskPassword hides the password of a connection URL or key=value DSN
func maskPassword(dsn string) string {
	if u, err := url.Parse(dsn); err == nil && u.User != nil {
		if _, hasPassword := u.User.Password(); hasPassword {
			u.User = url.UserPassword(u.User.Username(), "****")
		}
		return u.String()
	}
	return passwordField.ReplaceAllString(dsn, "password=****")
}

var passwordField = regexp.MustCompile(`password=\S*`)
