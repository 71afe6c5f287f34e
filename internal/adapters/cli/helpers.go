package cli

import (
	"fmt"
	"time"

	"github.com/andrescamacho/lazysim/internal/domain/shared"
	"github.com/andrescamacho/lazysim/internal/infrastructure/config"
)

// parseInstant parses an RFC3339 flag value into UTC
func parseInstant(flag, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s value %q: expected RFC3339, e.g. 2025-06-01T08:00:00Z", flag, value)
	}
	return t.UTC(), nil
}

// resolveClock returns a fixed clock when --now is set, the wall clock otherwise
func resolveClock() (shared.Clock, error) {
	if nowFlag == "" {
		return shared.NewRealClock(), nil
	}
	at, err := parseInstant("now", nowFlag)
	if err != nil {
		return nil, err
	}
	return &shared.FixedClock{At: at}, nil
}

// resolveDepositID resolves the deposit from the flag or the user default
// Priority: --deposit flag > ~/.lazysim/config.json
func resolveDepositID(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	userCfg, err := loadUserConfig()
	if err != nil {
		return "", fmt.Errorf("no deposit specified and failed to load user config: %w", err)
	}
	if userCfg.DefaultDepositID != "" {
		return userCfg.DefaultDepositID, nil
	}

	return "", fmt.Errorf("no deposit specified: use --deposit, or set a default with 'lazysim config set-default --deposit <id>'")
}

// resolveMachineID resolves the machine from the flag or the user default
// Priority: --machine flag > ~/.lazysim/config.json
func resolveMachineID(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	userCfg, err := loadUserConfig()
	if err != nil {
		return "", fmt.Errorf("no machine specified and failed to load user config: %w", err)
	}
	if userCfg.DefaultMachineID != "" {
		return userCfg.DefaultMachineID, nil
	}

	return "", fmt.Errorf("no machine specified: use --machine, or set a default with 'lazysim config set-default --machine <id>'")
}

func loadUserConfig() (*config.UserConfig, error) {
	handler, err := config.NewUserConfigHandler()
	if err != nil {
		return nil, err
	}
	return handler.Load()
}
