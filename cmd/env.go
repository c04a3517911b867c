package cmd

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/inference-sim/simplesim/sim/restaurant"
)

// envDefaults are the flag defaults, overridable from the environment.
type envDefaults struct {
	Replications int     `env:"SIMPLESIM_REPLICATIONS"`
	Horizon      float64 `env:"SIMPLESIM_HORIZON"`
	Seed         int64   `env:"SIMPLESIM_SEED"`
	LogLevel     string  `env:"SIMPLESIM_LOG"`
}

func builtinDefaults() envDefaults {
	return envDefaults{
		Replications: restaurant.DefaultReplications,
		Horizon:      restaurant.OneDay,
		Seed:         restaurant.DefaultSeed,
		LogLevel:     "warn",
	}
}

// loadEnvDefaults starts from the built-in defaults and applies any
// SIMPLESIM_* variables that are set.
func loadEnvDefaults() (envDefaults, error) {
	d := builtinDefaults()
	if err := env.Parse(&d); err != nil {
		return envDefaults{}, fmt.Errorf("parse env: %w", err)
	}
	return d, nil
}
