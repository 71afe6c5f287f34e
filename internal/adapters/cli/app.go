package cli

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/andrescamacho/lazysim/internal/adapters/catalog"
	"github.com/andrescamacho/lazysim/internal/adapters/logging"
	"github.com/andrescamacho/lazysim/internal/adapters/metrics"
	"github.com/andrescamacho/lazysim/internal/adapters/persistence"
	"github.com/andrescamacho/lazysim/internal/application/common"
	"github.com/andrescamacho/lazysim/internal/application/estimation/queries"
	"github.com/andrescamacho/lazysim/internal/application/mediator"
	"github.com/andrescamacho/lazysim/internal/domain/shared"
	"github.com/andrescamacho/lazysim/internal/infrastructure/config"
	"github.com/andrescamacho/lazysim/internal/infrastructure/database"
)

// app holds everything a command needs to run queries
type app struct {
	cfg    *config.Config
	logger *logging.Logger
	db     *gorm.DB
	med    mediator.Mediator
}

// newApp loads config, opens the store and registers the estimation handlers.
// withMetrics initialises the Prometheus registry when metrics are enabled.
func newApp(clock shared.Clock, withMetrics bool) (*app, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	if verbose {
		logger.SetLevel("DEBUG")
	}

	rules := cfg.Simulation.Rules()

	items, err := catalog.Load(cfg.Catalog.Path, rules.DefaultProductionCycle)
	if err != nil {
		logger.Close()
		return nil, fmt.Errorf("failed to load item catalog: %w", err)
	}

	db, err := database.NewConnection(&cfg.Store)
	if err != nil {
		logger.Close()
		return nil, fmt.Errorf("failed to connect to store: %w", err)
	}

	med := mediator.NewMediator()
	if withMetrics && cfg.Metrics.Enabled {
		if err := initMetrics(med); err != nil {
			database.Close(db)
			logger.Close()
			return nil, err
		}
	}
	med.Use(queryTimeoutMiddleware(cfg.Store.QueryTimeout))

	repo := persistence.NewGormSnapshotRepository(db)
	if err := queries.RegisterHandlers(med, repo, items, rules, clock); err != nil {
		database.Close(db)
		logger.Close()
		return nil, err
	}

	logger.Log("DEBUG", "Application initialized", map[string]interface{}{
		"store":        cfg.Store.Type,
		"catalog_size": items.Len(),
		"productivity": string(rules.Productivity),
		"maintenance":  string(rules.Maintenance),
	})

	return &app{cfg: cfg, logger: logger, db: db, med: med}, nil
}

func initMetrics(med mediator.Mediator) error {
	metrics.InitRegistry()

	commandMetrics := metrics.NewCommandMetricsCollector()
	if err := commandMetrics.Register(); err != nil {
		return fmt.Errorf("failed to register command metrics: %w", err)
	}

	estimationMetrics := metrics.NewEstimationMetricsCollector()
	if err := estimationMetrics.Register(); err != nil {
		return fmt.Errorf("failed to register estimation metrics: %w", err)
	}
	metrics.SetGlobalEstimationCollector(estimationMetrics)

	med.Use(metrics.PrometheusMiddleware(commandMetrics))
	return nil
}

// queryTimeoutMiddleware bounds each query by the store's query timeout
func queryTimeoutMiddleware(timeout time.Duration) mediator.Middleware {
	return func(ctx context.Context, request mediator.Query, next mediator.HandlerFunc) (mediator.Result, error) {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return next(ctx, request)
	}
}

// context attaches the app logger to parent
func (a *app) context(parent context.Context) context.Context {
	return common.WithLogger(parent, a.logger)
}

// Close releases the store and the log file
func (a *app) Close() {
	if err := database.Close(a.db); err != nil {
		a.logger.Log("WARN", "Failed to close store", map[string]interface{}{"error": err.Error()})
	}
	a.logger.Close()
}
