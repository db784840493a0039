// Package config loads the process configuration from the environment.
package config

import (
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds the application configuration loaded from environment
// variables.
type Config struct {
	// DataDir is the directory all budget data is stored in.
	// Environment variable: DATA_DIR
	DataDir string `koanf:"DATA_DIR"`

	// Profile is the budget profile to serve. Every profile is a
	// subdirectory of DataDir with its own months and settings.
	// Environment variable: PROFILE
	Profile string `koanf:"PROFILE"`

	// Bind is the listen address of the HTTP server.
	// Environment variable: BIND
	Bind string `koanf:"BIND"`
}

// Load reads the configuration from the environment. Unset variables
// keep their defaults.
func Load() (Config, error) {
	cfg := Config{
		DataDir: "data",
		Profile: "default",
		Bind:    ":8080",
	}

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", nil), nil); err != nil {
		return cfg, err
	}

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf", FlatPaths: true}); err != nil {
		return cfg, err
	}

	return cfg, nil
}
