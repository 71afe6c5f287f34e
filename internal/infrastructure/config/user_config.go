package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// UserConfig represents user preferences stored in ~/.lazysim/config.json.
// It only remembers which entities the CLI inspects by default.
type UserConfig struct {
	DefaultDepositID string `json:"default_deposit_id,omitempty"`
	DefaultMachineID string `json:"default_machine_id,omitempty"`
}

// UserConfigHandler manages loading and saving user configuration
type UserConfigHandler struct {
	configPath string
}

// NewUserConfigHandler creates a handler for the config in the user's home directory
func NewUserConfigHandler() (*UserConfigHandler, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return NewUserConfigHandlerAt(filepath.Join(homeDir, ".lazysim", "config.json")), nil
}

// NewUserConfigHandlerAt creates a handler for an explicit file path
func NewUserConfigHandlerAt(path string) *UserConfigHandler {
	return &UserConfigHandler{configPath: path}
}

// Load reads the user config from disk; a missing file yields an empty config
func (h *UserConfigHandler) Load() (*UserConfig, error) {
	data, err := os.ReadFile(h.configPath)
	if os.IsNotExist(err) {
		return &UserConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read user config: %w", err)
	}

	var cfg UserConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse user config: %w", err)
	}
	return &cfg, nil
}

// Save writes the user config to disk
func (h *UserConfigHandler) Save(cfg *UserConfig) error {
	if err := os.MkdirAll(filepath.Dir(h.configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal user config: %w", err)
	}
	if err := os.WriteFile(h.configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write user config: %w", err)
	}
	return nil
}

// SetDefaultDeposit remembers the deposit used when --deposit is omitted
func (h *UserConfigHandler) SetDefaultDeposit(id string) error {
	cfg, err := h.Load()
	if err != nil {
		return err
	}
	cfg.DefaultDepositID = id
	return h.Save(cfg)
}

// SetDefaultMachine remembers the machine used when --machine is omitted
func (h *UserConfigHandler) SetDefaultMachine(id string) error {
	cfg, err := h.Load()
	if err != nil {
		return err
	}
	cfg.DefaultMachineID = id
	return h.Save(cfg)
}

// ClearDefaults removes both default ids
func (h *UserConfigHandler) ClearDefaults() error {
	return h.Save(&UserConfig{})
}

// ConfigPath returns the file the handler reads and writes
func (h *UserConfigHandler) ConfigPath() string {
	return h.configPath
}
