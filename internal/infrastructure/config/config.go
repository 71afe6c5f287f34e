package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the main configuration struct combining all sub-configs
type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation"`
	Store      StoreConfig      `mapstructure:"store"`
	Catalog    CatalogConfig    `mapstructure:"catalog"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Watch      WatchConfig      `mapstructure:"watch"`
}

// LoadConfig loads configuration from multiple sources with priority:
// 1. Environment variables (highest priority, LAZYSIM_ prefix)
// 2. Config file (lazysim.yaml)
// 3. Defaults (lowest priority)
//
// The result is validated before it is returned; a configuration the
// calculations cannot run with never reaches them.
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (doesn't error if missing)
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("lazysim")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/lazysim")
	}

	v.SetEnvPrefix("LAZYSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvKeys(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK - env vars and defaults apply
	}

	// DATABASE_URL is honoured without prefix, like most hosting platforms set it
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		v.Set("store.url", dbURL)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	SetDefaults(&cfg)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// DefaultConfig returns a configuration made only of defaults
func DefaultConfig() *Config {
	cfg := &Config{}
	SetDefaults(cfg)
	return cfg
}

// bindEnvKeys registers every key so AutomaticEnv also works for values
// that appear in neither the config file nor a default.
func bindEnvKeys(v *viper.Viper) {
	keys := []string{
		"simulation.work_duration",
		"simulation.rest_duration",
		"simulation.harvest_interval",
		"simulation.default_production_cycle",
		"simulation.max_cycles_per_tick",
		"simulation.productivity_mode",
		"simulation.maintenance_policy",
		"store.type",
		"store.url",
		"store.path",
		"store.query_timeout",
		"catalog.path",
		"logging.level",
		"logging.format",
		"logging.output",
		"logging.file_path",
		"metrics.enabled",
		"metrics.host",
		"metrics.port",
		"metrics.path",
		"watch.interval",
		"watch.rate_limit",
		"watch.burst",
	}
	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}
