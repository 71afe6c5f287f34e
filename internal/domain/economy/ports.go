package economy

import "context"

// SnapshotRepository loads read-only snapshots from the backend store.
// Implementations never write: checkpoints are owned by the backend.
type SnapshotRepository interface {
	FindEmployee(ctx context.Context, id string) (*Employee, error)
	FindDeposit(ctx context.Context, id string) (*Deposit, error)

	// FindMachine returns the machine with its item id set but cycle time and
	// output quantity left for an ItemCatalog to resolve.
	FindMachine(ctx context.Context, id string) (*Machine, error)

	ListEmployeesForDeposit(ctx context.Context, depositID string) ([]Employee, error)
	ListEmployeesForMachine(ctx context.Context, machineID string) ([]Employee, error)
}

// ItemCatalog resolves static item data into plain machine numbers
type ItemCatalog interface {
	// ResolveMachine fills CycleTimeSeconds and OutputQuantityPerCycle from the
	// machine's ItemID. An unknown item leaves the cycle time at zero.
	ResolveMachine(m *Machine)
}
