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

// GetEmployeeEnergyQuery asks for an employee's phase and energy now.
// When Since is set, the window [Since, now] is also integrated.
type GetEmployeeEnergyQuery struct {
	EmployeeID string
	Since      *time.Time
}

// GetEmployeeEnergyResponse holds the phase evaluation and optional window totals
type GetEmployeeEnergyResponse struct {
	Employee    economy.Employee
	EvaluatedAt time.Time
	Status      economy.PhaseStatus

	// Window totals, zero when no Since was given
	WindowStart        *time.Time
	EffectiveSeconds   float64
	MaintenanceSeconds float64
	MaintenanceRepairs int64
}

// GetEmployeeEnergyHandler handles the GetEmployeeEnergy query
type GetEmployeeEnergyHandler struct {
	repo  economy.SnapshotRepository
	rules economy.Rules
	clock shared.Clock
}

// NewGetEmployeeEnergyHandler creates a new GetEmployeeEnergyHandler
func NewGetEmployeeEnergyHandler(repo economy.SnapshotRepository, rules economy.Rules, clock shared.Clock) *GetEmployeeEnergyHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &GetEmployeeEnergyHandler{repo: repo, rules: rules, clock: clock}
}

// Handle executes the GetEmployeeEnergy query
func (h *GetEmployeeEnergyHandler) Handle(ctx context.Context, request mediator.Query) (mediator.Result, error) {
	query, ok := request.(*GetEmployeeEnergyQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetEmployeeEnergyQuery")
	}
	if query.EmployeeID == "" {
		return nil, shared.NewValidationError("employee_id", "required")
	}

	employee, err := h.repo.FindEmployee(ctx, query.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load employee: %w", err)
	}

	now := h.clock.Now()
	logger := common.WithFields(common.LoggerFromContext(ctx), map[string]interface{}{
		"evaluation_id": utils.GenerateEvaluationID("energy", employee.ID),
		"employee_id":   employee.ID,
	})

	response := &GetEmployeeEnergyResponse{
		Employee:    *employee,
		EvaluatedAt: now,
		Status:      h.rules.PhaseOf(*employee, now),
	}

	if query.Since != nil {
		start := *query.Since
		response.WindowStart = &start
		response.EffectiveSeconds = h.rules.IntegrateProductivity(employee, start, now)
		response.MaintenanceSeconds = h.rules.IntegrateMaintenance(employee, start, now)
		response.MaintenanceRepairs = h.rules.MaintenanceRepairs(employee, start, now)
	}

	logger.Log("DEBUG", "Employee energy evaluated", map[string]interface{}{
		"phase":          string(response.Status.Phase),
		"energy_percent": response.Status.EnergyPercent,
		"effective_secs": response.EffectiveSeconds,
	})
	metrics.RecordEnergy(employee.ID, response.Status)

	return response, nil
}
