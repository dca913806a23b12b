// Package config owns the TOML brick configuration consumed by the CLI.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/danmuck/nxtlink/internal/device"
)

// BrickConfig selects the serial node a brick is reachable on.
type BrickConfig struct {
	Name          string `toml:"name"`
	Device        string `toml:"device"`
	Baud          int    `toml:"baud"`
	ReadTimeoutMS int    `toml:"read_timeout_ms"`
}

// LoadBrickConfig reads path, fills defaults and validates.
func LoadBrickConfig(path string) (BrickConfig, error) {
	var cfg BrickConfig
	if err := loadToml(path, &cfg); err != nil {
		return BrickConfig{}, err
	}
	applyDefaults(&cfg)
	if err := ValidateBrickConfig(cfg); err != nil {
		return BrickConfig{}, err
	}
	return cfg, nil
}

// DefaultBrickConfig is the configuration used when no file exists.
func DefaultBrickConfig() BrickConfig {
	cfg := BrickConfig{}
	applyDefaults(&cfg)
	return cfg
}

func applyDefaults(cfg *BrickConfig) {
	def := device.DefaultConfig()
	if cfg.Name == "" {
		cfg.Name = "nxt"
	}
	if cfg.Device == "" {
		cfg.Device = def.Path
	}
	if cfg.Baud == 0 {
		cfg.Baud = def.Baud
	}
	if cfg.ReadTimeoutMS == 0 {
		cfg.ReadTimeoutMS = int(def.ReadTimeout / time.Millisecond)
	}
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func ValidateBrickConfig(cfg BrickConfig) error {
	if strings.TrimSpace(cfg.Device) == "" {
		return fmt.Errorf("brick config missing device path")
	}
	if cfg.Baud < 0 {
		return fmt.Errorf("brick config baud must be positive, got %d", cfg.Baud)
	}
	if cfg.ReadTimeoutMS < 0 {
		return fmt.Errorf("brick config read_timeout_ms must not be negative, got %d", cfg.ReadTimeoutMS)
	}
	return nil
}

// DeviceConfig maps the brick configuration onto the device boundary.
func (c BrickConfig) DeviceConfig() device.Config {
	return device.Config{
		Path:        c.Device,
		Baud:        c.Baud,
		ReadTimeout: time.Duration(c.ReadTimeoutMS) * time.Millisecond,
	}
}
