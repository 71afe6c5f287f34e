package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/lazysim/internal/domain/economy"
	"github.com/andrescamacho/lazysim/internal/domain/shared"
)

// GormSnapshotRepository implements economy.SnapshotRepository using GORM.
// It only ever reads; checkpoints are written by the game backend.
type GormSnapshotRepository struct {
	db *gorm.DB
}

// NewGormSnapshotRepository creates a new GORM snapshot repository
func NewGormSnapshotRepository(db *gorm.DB) *GormSnapshotRepository {
	return &GormSnapshotRepository{db: db}
}

// FindEmployee retrieves an employee snapshot by ID
func (r *GormSnapshotRepository) FindEmployee(ctx context.Context, id string) (*economy.Employee, error) {
	var model EmployeeModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("employee", id)
		}
		return nil, fmt.Errorf("failed to find employee: %w", result.Error)
	}

	return r.modelToEmployee(&model)
}

// FindDeposit retrieves a deposit snapshot by ID
func (r *GormSnapshotRepository) FindDeposit(ctx context.Context, id string) (*economy.Deposit, error) {
	var model DepositModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("deposit", id)
		}
		return nil, fmt.Errorf("failed to find deposit: %w", result.Error)
	}

	deposit, err := economy.NewDeposit(model.ID, model.ResourceID, model.Size, model.QuantityRemaining, model.LastHarvestAt)
	if err != nil {
		return nil, shared.NewInvalidSnapshotError("deposit", id, err)
	}
	return deposit, nil
}

// FindMachine retrieves a machine snapshot by ID. Cycle time and output
// quantity are left unresolved.
func (r *GormSnapshotRepository) FindMachine(ctx context.Context, id string) (*economy.Machine, error) {
	var model MachineModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("machine", id)
		}
		return nil, fmt.Errorf("failed to find machine: %w", result.Error)
	}

	durability := economy.MachineDurabilityOnPlace
	if model.Durability != nil {
		durability = *model.Durability
	}

	machine, err := economy.NewMachine(model.ID, model.ItemID, durability, model.ProductionStartedAt, 0, 0)
	if err != nil {
		return nil, shared.NewInvalidSnapshotError("machine", id, err)
	}
	return machine, nil
}

// ListEmployeesForDeposit retrieves the crew assigned to a deposit
func (r *GormSnapshotRepository) ListEmployeesForDeposit(ctx context.Context, depositID string) ([]economy.Employee, error) {
	return r.listEmployees(ctx, "deposit_id = ?", depositID)
}

// ListEmployeesForMachine retrieves the crew assigned to a machine
func (r *GormSnapshotRepository) ListEmployeesForMachine(ctx context.Context, machineID string) ([]economy.Employee, error) {
	return r.listEmployees(ctx, "machine_id = ?", machineID)
}

func (r *GormSnapshotRepository) listEmployees(ctx context.Context, query string, id string) ([]economy.Employee, error) {
	var models []EmployeeModel
	result := r.db.WithContext(ctx).Where(query, id).Order("id").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list employees: %w", result.Error)
	}

	employees := make([]economy.Employee, 0, len(models))
	for i := range models {
		e, err := r.modelToEmployee(&models[i])
		if err != nil {
			return nil, err
		}
		employees = append(employees, *e)
	}

	return employees, nil
}

func (r *GormSnapshotRepository) modelToEmployee(model *EmployeeModel) (*economy.Employee, error) {
	e, err := economy.NewEmployee(model.ID, model.CreatedAt, model.Skill)
	if err != nil {
		return nil, shared.NewInvalidSnapshotError("employee", model.ID, err)
	}
	return e, nil
}
