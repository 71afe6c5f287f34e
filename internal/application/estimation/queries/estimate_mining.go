package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/andrescamacho/lazysim/internal/adapters/metrics"
	"github.com/andrescamacho/lazysim/internal/application/common"
	"github.com/andrescamacho/lazysim/internal/application/mediator"
	"github.com/andrescamacho/lazysim/internal/domain/economy"
	"github.com/andrescamacho/lazysim/internal/domain/shared"
	"github.com/andrescamacho/lazysim/pkg/utils"
)

// EstimateMiningQuery asks what a deposit's next harvest tick will credit
type EstimateMiningQuery struct {
	DepositID string
}

// EstimateMiningResponse holds the deposit snapshot and its estimate
type EstimateMiningResponse struct {
	Deposit     economy.Deposit
	CrewSize    int
	EvaluatedAt time.Time
	Estimate    economy.MiningEstimate
}

// EstimateMiningHandler handles the EstimateMining query
type EstimateMiningHandler struct {
	repo  economy.SnapshotRepository
	rules economy.Rules
	clock shared.Clock
}

// NewEstimateMiningHandler creates a new EstimateMiningHandler
func NewEstimateMiningHandler(repo economy.SnapshotRepository, rules economy.Rules, clock shared.Clock) *EstimateMiningHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &EstimateMiningHandler{repo: repo, rules: rules, clock: clock}
}

// Handle executes the EstimateMining query
func (h *EstimateMiningHandler) Handle(ctx context.Context, request mediator.Query) (mediator.Result, error) {
	query, ok := request.(*EstimateMiningQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *EstimateMiningQuery")
	}
	if query.DepositID == "" {
		return nil, shared.NewValidationError("deposit_id", "required")
	}

	deposit, err := h.repo.FindDeposit(ctx, query.DepositID)
	if err != nil {
		return nil, fmt.Errorf("failed to load deposit: %w", err)
	}

	crew, err := h.repo.ListEmployeesForDeposit(ctx, deposit.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load deposit crew: %w", err)
	}

	logger := common.WithFields(common.LoggerFromContext(ctx), map[string]interface{}{
		"evaluation_id": utils.GenerateEvaluationID("mining", deposit.ID),
		"deposit_id":    deposit.ID,
	})

	if max := deposit.MaxEmployees(); len(crew) > max {
		logger.Log("WARN", "Deposit crew exceeds capacity", map[string]interface{}{
			"crew_size":     len(crew),
			"max_employees": max,
		})
	}

	now := h.clock.Now()
	estimate := h.rules.EstimateMining(*deposit, crew, deposit.LastHarvestAt, now)

	logger.Log("DEBUG", "Mining estimate computed", map[string]interface{}{
		"crew_size":        len(crew),
		"progress_percent": estimate.ProgressPercent,
		"estimated_yield":  estimate.EstimatedYield,
		"never_harvested":  deposit.LastHarvestAt == nil,
	})
	metrics.RecordMining(deposit.ID, estimate)

	return &EstimateMiningResponse{
		Deposit:     *deposit,
		CrewSize:    len(crew),
		EvaluatedAt: now,
		Estimate:    estimate,
	}, nil
}
