package queries

import (
	"fmt"

	"github.com/andrescamacho/lazysim/internal/application/mediator"
	"github.com/andrescamacho/lazysim/internal/domain/economy"
	"github.com/andrescamacho/lazysim/internal/domain/shared"
)

// RegisterHandlers wires every estimation query into med
func RegisterHandlers(
	med mediator.Mediator,
	repo economy.SnapshotRepository,
	catalog economy.ItemCatalog,
	rules economy.Rules,
	clock shared.Clock,
) error {
	if err := mediator.RegisterHandler[*GetEmployeeEnergyQuery](med, NewGetEmployeeEnergyHandler(repo, rules, clock)); err != nil {
		return fmt.Errorf("failed to register energy handler: %w", err)
	}
	if err := mediator.RegisterHandler[*EstimateMiningQuery](med, NewEstimateMiningHandler(repo, rules, clock)); err != nil {
		return fmt.Errorf("failed to register mining handler: %w", err)
	}
	if err := mediator.RegisterHandler[*EstimateProductionQuery](med, NewEstimateProductionHandler(repo, catalog, rules, clock)); err != nil {
		return fmt.Errorf("failed to register production handler: %w", err)
	}
	return nil
}
