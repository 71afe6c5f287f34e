package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/andrescamacho/lazysim/internal/adapters/metrics"
	"github.com/andrescamacho/lazysim/internal/application/estimation/queries"
	"github.com/andrescamacho/lazysim/internal/domain/shared"
)

type watchOptions struct {
	depositID  string
	machineID  string
	withCrew   bool
	interval   time.Duration
	iterations int
}

// NewWatchCommand creates the watch command
func NewWatchCommand() *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-evaluate estimates periodically",
		Long: `Re-evaluate a deposit and/or a machine on a fixed interval.

Each evaluation re-reads the snapshots, so checkpoints moved by the backend
(a harvest, a production tick) show up on the next line. Evaluations are
throttled by watch.rate_limit. When metrics are enabled, the latest estimates
are served on the Prometheus endpoint for as long as the watch runs.

With --now, evaluation starts at that instant and simulated time advances by
one interval per iteration.

Examples:
  lazysim watch --deposit dep-3 --machine mach-7
  lazysim watch --machine mach-7 --with-crew --interval 2s
  lazysim watch --deposit dep-3 --now 2025-06-01T08:00:00Z --iterations 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.depositID == "" && opts.machineID == "" {
				return fmt.Errorf("at least one of --deposit or --machine is required")
			}
			if opts.interval < 0 {
				return fmt.Errorf("--interval must be positive")
			}
			if opts.iterations < 0 {
				return fmt.Errorf("--iterations cannot be negative")
			}
			return runWatch(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.depositID, "deposit", "", "Deposit ID to watch")
	cmd.Flags().StringVar(&opts.machineID, "machine", "", "Machine ID to watch")
	cmd.Flags().BoolVar(&opts.withCrew, "with-crew", false, "Include the crew skill boost for the machine")
	cmd.Flags().DurationVar(&opts.interval, "interval", 0, "Re-evaluation interval (default: watch.interval)")
	cmd.Flags().IntVar(&opts.iterations, "iterations", 0, "Stop after this many evaluations (0 = until interrupted)")

	return cmd
}

func runWatch(cmd *cobra.Command, opts *watchOptions) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		clock     shared.Clock = shared.NewRealClock()
		simulated *shared.MockClock
	)
	if nowFlag != "" {
		start, err := parseInstant("now", nowFlag)
		if err != nil {
			return err
		}
		simulated = shared.NewMockClock(start)
		clock = simulated
	}

	a, err := newApp(clock, true)
	if err != nil {
		return err
	}
	defer a.Close()

	interval := opts.interval
	if interval == 0 {
		interval = a.cfg.Watch.Interval
	}
	limiter := rate.NewLimiter(rate.Limit(a.cfg.Watch.RateLimit), a.cfg.Watch.Burst)

	g, ctx := errgroup.WithContext(a.context(ctx))

	if a.cfg.Metrics.Enabled {
		server, err := metrics.NewServer(a.cfg.Metrics.Address(), a.cfg.Metrics.Path)
		if err != nil {
			return err
		}
		a.logger.Log("INFO", "Metrics server listening", map[string]interface{}{
			"address": server.Addr(),
			"path":    a.cfg.Metrics.Path,
		})
		g.Go(func() error { return server.Serve(ctx) })
	}

	g.Go(func() error {
		// stopping the loop also stops the metrics server
		defer stop()
		return watchLoop(ctx, a, limiter, opts, interval, simulated, cmd.OutOrStdout())
	})

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func watchLoop(
	ctx context.Context,
	a *app,
	limiter *rate.Limiter,
	opts *watchOptions,
	interval time.Duration,
	simulated *shared.MockClock,
	w io.Writer,
) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for i := 0; opts.iterations == 0 || i < opts.iterations; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
			if simulated != nil {
				simulated.Advance(interval)
			}
		}

		if err := evaluateWatched(ctx, a, limiter, opts, w); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
	}

	return nil
}

func evaluateWatched(ctx context.Context, a *app, limiter *rate.Limiter, opts *watchOptions, w io.Writer) error {
	if opts.depositID != "" {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}
		result, err := a.med.Send(ctx, &queries.EstimateMiningQuery{DepositID: opts.depositID})
		if err != nil {
			return fmt.Errorf("failed to estimate mining: %w", err)
		}
		watchMiningLine(w, result.(*queries.EstimateMiningResponse))
	}

	if opts.machineID != "" {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}
		result, err := a.med.Send(ctx, &queries.EstimateProductionQuery{
			MachineID: opts.machineID,
			WithCrew:  opts.withCrew,
		})
		if err != nil {
			return fmt.Errorf("failed to estimate production: %w", err)
		}
		watchProductionLine(w, result.(*queries.EstimateProductionResponse))
	}

	return nil
}
