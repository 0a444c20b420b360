package node

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := ValidateConfig(DefaultConfig()); err != nil {
		t.Fatalf("ValidateConfig(DefaultConfig()): %v", err)
	}
}

func TestValidateConfig_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty network", func(c *Config) { c.Network = "" }},
		{"unknown network", func(c *Config) { c.Network = "simnet" }},
		{"bad log level", func(c *Config) { c.LogLevel = "chatty" }},
		{"zero script ceiling", func(c *Config) { c.MaxMinerIDScriptBytes = 0 }},
		{"negative script ceiling", func(c *Config) { c.MaxMinerIDScriptBytes = -1 }},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		if err := ValidateConfig(cfg); err == nil {
			t.Fatalf("%s: expected rejection", tc.name)
		}
	}
}

func TestValidateConfig_AllNetworks(t *testing.T) {
	for _, network := range []string{"main", "stn", "test", "regtest"} {
		cfg := DefaultConfig()
		cfg.Network = network
		if err := ValidateConfig(cfg); err != nil {
			t.Fatalf("network %s rejected: %v", network, err)
		}
	}
}

func TestLoggerLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "debug"
	if got := LoggerLevel(cfg); got != zerolog.DebugLevel {
		t.Fatalf("LoggerLevel = %v", got)
	}
	cfg.LogLevel = "WARN"
	if got := LoggerLevel(cfg); got != zerolog.WarnLevel {
		t.Fatalf("LoggerLevel = %v, case folding broken", got)
	}
}
