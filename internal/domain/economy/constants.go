package economy

// Energy cycle, shared by every employee. Mirrors the backend game constants.
const (
	EnergyWorkDuration = 1440.0 // seconds, efficiency 100% -> 0%
	EnergyRestDuration = 1440.0 // seconds, energy 0% -> 100%
	EnergyCycleTotal   = EnergyWorkDuration + EnergyRestDuration
)

// Harvest and production timing
const (
	// DefaultHarvestCycle is the production interval used when an item defines none
	DefaultHarvestCycle = 20.0

	// HarvestIntervalSeconds is the interval a mining yield is expressed against
	HarvestIntervalSeconds = 60.0

	// MaxCyclesPerTick caps production cycles credited per evaluation.
	// The backend applies the same cap to stop unbounded catch-up after long idle gaps.
	MaxCyclesPerTick = 3
)

// Deposit capacity
const (
	EmployeesPerDepositSize  = 5 // max employees = size * 5
	MachinesPerDepositSize   = 1 // max machines = size * 1
	MachineEquivalentWorkers = 5 // 1 machine = 5 workers
)

// Machine durability
const (
	MachineDurabilityOnPlace   = 1000.0
	MaintenanceIntervalSeconds = 10.0

	// CrewBoostDivisor scales crew skill-seconds into boost cycles
	CrewBoostDivisor = 10.0
)

// MaxEmployeesForDeposit returns the employee cap for a deposit size.
func MaxEmployeesForDeposit(size int) int {
	return size * EmployeesPerDepositSize
}

// MaxMachinesForDeposit returns the machine cap for a deposit size.
func MaxMachinesForDeposit(size int) int {
	return size * MachinesPerDepositSize
}

// DepositWorkerCapacity returns employees plus machines expressed as worker equivalents.
func DepositWorkerCapacity(employees, machines int) int {
	return employees + machines*MachineEquivalentWorkers
}
