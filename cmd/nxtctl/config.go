package main

import (
	"os"

	"github.com/danmuck/nxtlink/internal/config"
	"github.com/danmuck/nxtlink/internal/device"
	"github.com/danmuck/nxtlink/internal/logging"
	"github.com/danmuck/nxtlink/internal/session"
)

const defaultConfigFile = "nxtctl.toml"

// resolveConfig prefers the --config flag, then a nxtctl.toml beside the
// invocation, then built-in defaults.
func resolveConfig() (config.BrickConfig, error) {
	if configPath != "" {
		return config.LoadBrickConfig(configPath)
	}
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return config.LoadBrickConfig(defaultConfigFile)
	}
	return config.DefaultBrickConfig(), nil
}

// openSession opens the configured serial device and wraps it in a
// transaction session. The caller owns the Close.
func openSession() (*session.Session, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, err
	}
	log := logging.New("nxtctl")
	log.Debug().
		Str("brick", cfg.Name).
		Str("device", cfg.Device).
		Int("baud", cfg.Baud).
		Msg("opening device")
	dev, err := device.OpenSerial(cfg.DeviceConfig())
	if err != nil {
		return nil, err
	}
	return session.New(dev, logging.New("session")), nil
}
