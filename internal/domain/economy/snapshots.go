package economy

import (
	"fmt"
	"math"
	"time"
)

// Employee is a read-only employee snapshot.
// CreatedAt is the only source of the employee's phase offset.
type Employee struct {
	ID        string
	CreatedAt time.Time
	Skill     float64
}

// NewEmployee creates an employee snapshot with validation
func NewEmployee(id string, createdAt time.Time, skill float64) (*Employee, error) {
	if id == "" {
		return nil, fmt.Errorf("employee id cannot be empty")
	}
	if skill < 0 {
		return nil, fmt.Errorf("employee skill cannot be negative")
	}
	if !isFinite(skill) {
		return nil, fmt.Errorf("employee skill must be finite")
	}
	return &Employee{ID: id, CreatedAt: createdAt, Skill: skill}, nil
}

// Deposit is a read-only deposit snapshot. A nil LastHarvestAt means never harvested.
type Deposit struct {
	ID                string
	ResourceID        string
	Size              int
	QuantityRemaining float64
	LastHarvestAt     *time.Time
}

// NewDeposit creates a deposit snapshot with validation
func NewDeposit(id, resourceID string, size int, quantityRemaining float64, lastHarvestAt *time.Time) (*Deposit, error) {
	if id == "" {
		return nil, fmt.Errorf("deposit id cannot be empty")
	}
	if size < 0 {
		return nil, fmt.Errorf("deposit size cannot be negative")
	}
	if quantityRemaining < 0 {
		return nil, fmt.Errorf("deposit quantity cannot be negative")
	}
	return &Deposit{
		ID:                id,
		ResourceID:        resourceID,
		Size:              size,
		QuantityRemaining: quantityRemaining,
		LastHarvestAt:     lastHarvestAt,
	}, nil
}

// MaxEmployees returns how many employees the deposit accepts.
func (d *Deposit) MaxEmployees() int {
	return MaxEmployeesForDeposit(d.Size)
}

// MaxMachines returns how many machines the deposit accepts.
func (d *Deposit) MaxMachines() int {
	return MaxMachinesForDeposit(d.Size)
}

// Machine is a read-only machine snapshot.
// CycleTimeSeconds and OutputQuantityPerCycle are already resolved from static
// item data; a CycleTimeSeconds of zero means no cycle time could be resolved.
type Machine struct {
	ID                     string
	ItemID                 string
	Durability             float64
	ProductionStartedAt    *time.Time
	CycleTimeSeconds       float64
	OutputQuantityPerCycle float64
}

// NewMachine creates a machine snapshot with validation
func NewMachine(id, itemID string, durability float64, productionStartedAt *time.Time, cycleTimeSeconds, outputQuantityPerCycle float64) (*Machine, error) {
	if id == "" {
		return nil, fmt.Errorf("machine id cannot be empty")
	}
	if cycleTimeSeconds < 0 {
		return nil, fmt.Errorf("machine cycle time cannot be negative")
	}
	if !isFinite(cycleTimeSeconds) {
		return nil, fmt.Errorf("machine cycle time must be finite")
	}
	if outputQuantityPerCycle < 0 {
		return nil, fmt.Errorf("machine output quantity cannot be negative")
	}
	if !isFinite(outputQuantityPerCycle) {
		return nil, fmt.Errorf("machine output quantity must be finite")
	}
	return &Machine{
		ID:                     id,
		ItemID:                 itemID,
		Durability:             durability,
		ProductionStartedAt:    productionStartedAt,
		CycleTimeSeconds:       cycleTimeSeconds,
		OutputQuantityPerCycle: outputQuantityPerCycle,
	}, nil
}

// IsConfigured reports whether the machine has both a start checkpoint and a cycle time.
func (m *Machine) IsConfigured() bool {
	return m.ProductionStartedAt != nil && validCycleTime(m.CycleTimeSeconds)
}

// validCycleTime rejects zero, negative, NaN and infinite cycle times
func validCycleTime(c float64) bool {
	return c > 0 && !math.IsInf(c, 1)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// floorToInt64 floors v and saturates at the int64 range; NaN floors to 0.
func floorToInt64(v float64) int64 {
	f := math.Floor(v)
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}
