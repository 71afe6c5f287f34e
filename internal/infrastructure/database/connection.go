package database

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/andrescamacho/lazysim/internal/adapters/persistence"
	"github.com/andrescamacho/lazysim/internal/infrastructure/config"
)

// NewConnection opens the snapshot store described by cfg
func NewConnection(cfg *config.StoreConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.Type {
	case "postgres":
		dialector = postgres.Open(cfg.DSN())
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN())
	default:
		return nil, fmt.Errorf("unsupported store type: %s", cfg.Type)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying db: %w", err)
	}

	switch cfg.Type {
	case "postgres":
		sqlDB.SetMaxOpenConns(cfg.Pool.MaxOpen)
		sqlDB.SetMaxIdleConns(cfg.Pool.MaxIdle)
		sqlDB.SetConnMaxLifetime(cfg.Pool.MaxLifetime)
	case "sqlite":
		// every new connection to :memory: is a fresh, empty database
		if cfg.DSN() == ":memory:" {
			sqlDB.SetMaxOpenConns(1)
		}
	}

	return db, nil
}

// NewTestConnection creates a migrated in-memory SQLite store for testing
func NewTestConnection() (*gorm.DB, error) {
	cfg := &config.StoreConfig{
		Type: "sqlite",
		Path: ":memory:",
	}

	db, err := NewConnection(cfg)
	if err != nil {
		return nil, err
	}

	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate test store: %w", err)
	}

	return db, nil
}

// AutoMigrate creates the snapshot tables. Only tests and local sqlite
// fixtures need it; production schemas belong to the game backend.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&persistence.EmployeeModel{},
		&persistence.DepositModel{},
		&persistence.MachineModel{},
	)
}

// Ping verifies the store is reachable
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// MissingTables lists the snapshot tables the store does not have
func MissingTables(db *gorm.DB) []string {
	var missing []string
	for _, model := range []interface{ TableName() string }{
		&persistence.EmployeeModel{},
		&persistence.DepositModel{},
		&persistence.MachineModel{},
	} {
		if !db.Migrator().HasTable(model) {
			missing = append(missing, model.TableName())
		}
	}
	return missing
}

// Close closes the store connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
