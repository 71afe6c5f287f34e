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

// EstimateProductionQuery asks what a machine's next production tick will credit.
// WithCrew adds the skill boost of the machine's operators.
type EstimateProductionQuery struct {
	MachineID string
	WithCrew  bool
}

// EstimateProductionResponse holds the resolved machine snapshot and its estimate
type EstimateProductionResponse struct {
	Machine     economy.Machine
	CrewSize    int
	WithCrew    bool
	EvaluatedAt time.Time
	Estimate    economy.ProductionEstimate
}

// EstimateProductionHandler handles the EstimateProduction query
type EstimateProductionHandler struct {
	repo    economy.SnapshotRepository
	catalog economy.ItemCatalog
	rules   economy.Rules
	clock   shared.Clock
}

// NewEstimateProductionHandler creates a new EstimateProductionHandler
func NewEstimateProductionHandler(
	repo economy.SnapshotRepository,
	catalog economy.ItemCatalog,
	rules economy.Rules,
	clock shared.Clock,
) *EstimateProductionHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &EstimateProductionHandler{repo: repo, catalog: catalog, rules: rules, clock: clock}
}

// Handle executes the EstimateProduction query
func (h *EstimateProductionHandler) Handle(ctx context.Context, request mediator.Query) (mediator.Result, error) {
	query, ok := request.(*EstimateProductionQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *EstimateProductionQuery")
	}
	if query.MachineID == "" {
		return nil, shared.NewValidationError("machine_id", "required")
	}

	machine, err := h.repo.FindMachine(ctx, query.MachineID)
	if err != nil {
		return nil, fmt.Errorf("failed to load machine: %w", err)
	}
	h.catalog.ResolveMachine(machine)

	var crew []economy.Employee
	if query.WithCrew {
		crew, err = h.repo.ListEmployeesForMachine(ctx, machine.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load machine crew: %w", err)
		}
	}

	logger := common.WithFields(common.LoggerFromContext(ctx), map[string]interface{}{
		"evaluation_id": utils.GenerateEvaluationID("production", machine.ID),
		"machine_id":    machine.ID,
		"item_id":       machine.ItemID,
	})

	now := h.clock.Now()
	var estimate economy.ProductionEstimate
	if query.WithCrew {
		estimate = h.rules.EstimateProductionWithCrew(*machine, crew, machine.ProductionStartedAt, now)
	} else {
		estimate = h.rules.EstimateProduction(*machine, machine.ProductionStartedAt, now)
	}

	if !estimate.CanProduce {
		logger.Log("INFO", "Machine cannot produce", map[string]interface{}{
			"reason":     estimate.BlockReason,
			"cycle_time": machine.CycleTimeSeconds,
			"started":    machine.ProductionStartedAt != nil,
		})
	} else {
		logger.Log("DEBUG", "Production estimate computed", map[string]interface{}{
			"cycles_completed":   estimate.CyclesCompleted,
			"time_based_cycles":  estimate.TimeBasedCycles,
			"estimated_produced": estimate.EstimatedProduced,
			"progress_percent":   estimate.ProgressPercent,
			"with_crew":          query.WithCrew,
		})
	}
	metrics.RecordProduction(machine.ID, estimate)

	return &EstimateProductionResponse{
		Machine:     *machine,
		CrewSize:    len(crew),
		WithCrew:    query.WithCrew,
		EvaluatedAt: now,
		Estimate:    estimate,
	}, nil
}
