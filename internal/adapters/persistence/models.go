package persistence

import (
	"time"
)

// EmployeeModel represents the employees table.
// An employee works either a deposit or a machine, never both.
type EmployeeModel struct {
	ID        string    `gorm:"column:id;primaryKey;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	Skill     float64   `gorm:"column:skill;not null;default:1"`
	DepositID *string   `gorm:"column:deposit_id;index"`
	MachineID *string   `gorm:"column:machine_id;index"`
}

func (EmployeeModel) TableName() string {
	return "employees"
}

// DepositModel represents the deposits table
type DepositModel struct {
	ID                string     `gorm:"column:id;primaryKey;not null"`
	ResourceID        string     `gorm:"column:resource_id;not null"`
	Size              int        `gorm:"column:size;not null;default:1"`
	QuantityRemaining float64    `gorm:"column:quantity_remaining;not null;default:0"`
	LastHarvestAt     *time.Time `gorm:"column:last_harvest_at"`
}

func (DepositModel) TableName() string {
	return "deposits"
}

// MachineModel represents the machines table.
// Durability is NULL until the backend first writes it.
type MachineModel struct {
	ID                  string     `gorm:"column:id;primaryKey;not null"`
	ItemID              string     `gorm:"column:item_id;not null"`
	DepositID           *string    `gorm:"column:deposit_id;index"`
	Durability          *float64   `gorm:"column:durability"`
	ProductionStartedAt *time.Time `gorm:"column:production_started_at"`
}

func (MachineModel) TableName() string {
	return "machines"
}
