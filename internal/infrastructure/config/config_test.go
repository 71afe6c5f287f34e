package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/lazysim/internal/domain/economy"
	"github.com/andrescamacho/lazysim/internal/infrastructure/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lazysim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig_IsValidAndMatchesRules(t *testing.T) {
	cfg := config.DefaultConfig()

	require.NoError(t, config.ValidateConfig(cfg))
	assert.Equal(t, economy.DefaultRules(), cfg.Simulation.Rules())
	assert.Equal(t, "sqlite", cfg.Store.Type)
	assert.Equal(t, "lazysim.db", cfg.Store.DSN())
	assert.Equal(t, "localhost:9108", cfg.Metrics.Address())
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := writeConfig(t, `
simulation:
  work_duration: 10m
  rest_duration: 5m
  max_cycles_per_tick: 7
  productivity_mode: legacy_flat_time
store:
  type: sqlite
  path: ":memory:"
watch:
  interval: 2s
`)

	cfg, err := config.LoadConfig(path)

	require.NoError(t, err)
	rules := cfg.Simulation.Rules()
	assert.Equal(t, 10*time.Minute, rules.WorkDuration)
	assert.Equal(t, 5*time.Minute, rules.RestDuration)
	assert.Equal(t, int64(7), rules.MaxCyclesPerTick)
	assert.Equal(t, economy.ProductivityLegacyFlatTime, rules.Productivity)
	assert.Equal(t, economy.MaintenanceFlat, rules.Maintenance)
	assert.Equal(t, time.Minute, rules.HarvestInterval)
	assert.Equal(t, ":memory:", cfg.Store.DSN())
	assert.Equal(t, 2*time.Second, cfg.Watch.Interval)
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, `
simulation:
  harvest_interval: 30s
`)
	t.Setenv("LAZYSIM_SIMULATION_HARVEST_INTERVAL", "90s")
	t.Setenv("LAZYSIM_LOGGING_LEVEL", "debug")

	cfg, err := config.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, cfg.Simulation.HarvestInterval)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfig_RejectsNegativeDurations(t *testing.T) {
	path := writeConfig(t, `
simulation:
  rest_duration: -1s
`)

	_, err := config.LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Contains(t, err.Error(), "RestDuration")
}

func TestLoadConfig_RejectsUnknownPolicy(t *testing.T) {
	path := writeConfig(t, `
simulation:
  maintenance_policy: sinusoidal
`)

	_, err := config.LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "MaintenancePolicy")
}

func TestLoadConfig_FileOutputNeedsPath(t *testing.T) {
	path := writeConfig(t, `
logging:
  output: file
`)

	_, err := config.LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "FilePath")
}

func TestStoreConfig_PostgresDSN(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Type: "postgres", User: "tycoon", Name: "tycoon"}}
	config.SetDefaults(cfg)

	assert.Equal(t, "host=localhost port=5432 user=tycoon password= dbname=tycoon sslmode=disable", cfg.Store.DSN())

	cfg.Store.URL = "postgresql://tycoon@db:5432/tycoon"
	assert.Equal(t, "postgresql://tycoon@db:5432/tycoon", cfg.Store.DSN())
}

func TestUserConfigHandler_RoundTrip(t *testing.T) {
	handler := config.NewUserConfigHandlerAt(filepath.Join(t.TempDir(), "nested", "config.json"))

	empty, err := handler.Load()
	require.NoError(t, err)
	assert.Empty(t, empty.DefaultDepositID)

	require.NoError(t, handler.SetDefaultDeposit("dep-1"))
	require.NoError(t, handler.SetDefaultMachine("mach-9"))

	loaded, err := handler.Load()
	require.NoError(t, err)
	assert.Equal(t, "dep-1", loaded.DefaultDepositID)
	assert.Equal(t, "mach-9", loaded.DefaultMachineID)
}
