package helpers

import (
	"context"
	"sync"

	"github.com/andrescamacho/lazysim/internal/domain/economy"
	"github.com/andrescamacho/lazysim/internal/domain/shared"
)

// MockSnapshotRepository is a test double for economy.SnapshotRepository
type MockSnapshotRepository struct {
	mu          sync.RWMutex
	employees   map[string]economy.Employee
	deposits    map[string]economy.Deposit
	machines    map[string]economy.Machine
	depositCrew map[string][]string // depositID -> employee ids
	machineCrew map[string][]string // machineID -> employee ids

	// Err, when set, is returned by every call
	Err error
}

// NewMockSnapshotRepository creates a new mock snapshot repository
func NewMockSnapshotRepository() *MockSnapshotRepository {
	return &MockSnapshotRepository{
		employees:   make(map[string]economy.Employee),
		deposits:    make(map[string]economy.Deposit),
		machines:    make(map[string]economy.Machine),
		depositCrew: make(map[string][]string),
		machineCrew: make(map[string][]string),
	}
}

// AddDeposit adds a deposit and its crew
func (m *MockSnapshotRepository) AddDeposit(d economy.Deposit, crew ...economy.Employee) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deposits[d.ID] = d
	for _, e := range crew {
		m.employees[e.ID] = e
		m.depositCrew[d.ID] = append(m.depositCrew[d.ID], e.ID)
	}
}

// AddMachine adds a machine and its crew
func (m *MockSnapshotRepository) AddMachine(mach economy.Machine, crew ...economy.Employee) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.machines[mach.ID] = mach
	for _, e := range crew {
		m.employees[e.ID] = e
		m.machineCrew[mach.ID] = append(m.machineCrew[mach.ID], e.ID)
	}
}

// AddEmployee adds an unassigned employee
func (m *MockSnapshotRepository) AddEmployee(e economy.Employee) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.employees[e.ID] = e
}

// FindEmployee retrieves an employee by ID
func (m *MockSnapshotRepository) FindEmployee(ctx context.Context, id string) (*economy.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}

	e, ok := m.employees[id]
	if !ok {
		return nil, shared.NewNotFoundError("employee", id)
	}
	return &e, nil
}

// FindDeposit retrieves a deposit by ID
func (m *MockSnapshotRepository) FindDeposit(ctx context.Context, id string) (*economy.Deposit, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}

	d, ok := m.deposits[id]
	if !ok {
		return nil, shared.NewNotFoundError("deposit", id)
	}
	return &d, nil
}

// FindMachine retrieves a machine by ID, returning a copy the caller may resolve
func (m *MockSnapshotRepository) FindMachine(ctx context.Context, id string) (*economy.Machine, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}

	mach, ok := m.machines[id]
	if !ok {
		return nil, shared.NewNotFoundError("machine", id)
	}
	return &mach, nil
}

// ListEmployeesForDeposit retrieves the crew of a deposit
func (m *MockSnapshotRepository) ListEmployeesForDeposit(ctx context.Context, depositID string) ([]economy.Employee, error) {
	return m.crew(m.depositCrew, depositID)
}

// ListEmployeesForMachine retrieves the crew of a machine
func (m *MockSnapshotRepository) ListEmployeesForMachine(ctx context.Context, machineID string) ([]economy.Employee, error) {
	return m.crew(m.machineCrew, machineID)
}

func (m *MockSnapshotRepository) crew(index map[string][]string, id string) ([]economy.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}

	out := make([]economy.Employee, 0, len(index[id]))
	for _, employeeID := range index[id] {
		out = append(out, m.employees[employeeID])
	}
	return out, nil
}

// StaticCatalog is an economy.ItemCatalog backed by a fixed map of cycle times
type StaticCatalog struct {
	CycleTimes map[string]float64
	Quantities map[string]float64
}

// ResolveMachine fills cycle time and quantity from the maps; unknown items stay unconfigured
func (c StaticCatalog) ResolveMachine(m *economy.Machine) {
	m.CycleTimeSeconds = c.CycleTimes[m.ItemID]
	m.OutputQuantityPerCycle = 1
	if q, ok := c.Quantities[m.ItemID]; ok {
		m.OutputQuantityPerCycle = q
	}
}
