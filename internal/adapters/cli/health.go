package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/lazysim/internal/adapters/catalog"
	"github.com/andrescamacho/lazysim/internal/infrastructure/config"
	"github.com/andrescamacho/lazysim/internal/infrastructure/database"
)

// NewHealthCommand creates the health command
func NewHealthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check configuration, catalog and store",
		Long: `Verify that lazysim can run: the configuration validates, the item
catalog loads, and the snapshot store is reachable with its tables in place.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("health check failed: %w", err)
			}
			fmt.Fprintln(w, "✓ Configuration is valid")

			rules := cfg.Simulation.Rules()
			items, err := catalog.Load(cfg.Catalog.Path, rules.DefaultProductionCycle)
			if err != nil {
				return fmt.Errorf("health check failed: %w", err)
			}
			fmt.Fprintf(w, "✓ Catalog loaded (%d items)\n", items.Len())

			db, err := database.NewConnection(&cfg.Store)
			if err != nil {
				return fmt.Errorf("health check failed: %w", err)
			}
			defer database.Close(db)

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Store.QueryTimeout)
			defer cancel()

			if err := database.Ping(ctx, db); err != nil {
				return fmt.Errorf("health check failed: store unreachable: %w", err)
			}
			fmt.Fprintf(w, "✓ Store is reachable (%s)\n", cfg.Store.Type)

			if missing := database.MissingTables(db); len(missing) > 0 {
				return fmt.Errorf("health check failed: missing tables: %s", strings.Join(missing, ", "))
			}
			fmt.Fprintln(w, "✓ Snapshot tables present")

			return nil
		},
	}

	return cmd
}
