package node

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"minerid.dev/node/chaincfg"
)

type Config struct {
	Network  string `json:"network"`
	LogLevel string `json:"log_level"`

	// MaxMinerIDScriptBytes bounds the size of any single coinbase
	// output script handed to the miner id scan. The verification core
	// itself has no internal ceiling.
	MaxMinerIDScriptBytes int `json:"max_minerid_script_bytes"`
}

const defaultMaxMinerIDScriptBytes = 100_000

func DefaultConfig() Config {
	return Config{
		Network:               chaincfg.MainNet.Name,
		LogLevel:              "info",
		MaxMinerIDScriptBytes: defaultMaxMinerIDScriptBytes,
	}
}

func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.Network) == "" {
		return errors.New("network is required")
	}
	if _, err := chaincfg.Lookup(cfg.Network); err != nil {
		return fmt.Errorf("invalid network: %w", err)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.LogLevel))); err != nil {
		return fmt.Errorf("invalid log_level %q", cfg.LogLevel)
	}
	if cfg.MaxMinerIDScriptBytes <= 0 {
		return errors.New("max_minerid_script_bytes must be > 0")
	}
	return nil
}

// LoggerLevel resolves the configured level; ValidateConfig must have
// accepted the config first.
func LoggerLevel(cfg Config) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.LogLevel)))
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
