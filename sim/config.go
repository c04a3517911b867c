package sim

import (
	"fmt"
	"math"

	"github.com/inference-sim/simplesim/sim/trace"
)

// RunConfig groups the parameters of one run.
type RunConfig struct {
	Replications int              // number of independent replications (must be >= 1)
	Horizon      float64          // max simulation time per replication (must be >= 0)
	Seed         int64            // seeds the run's single random Stream
	TraceLevel   trace.TraceLevel // "none" (default) or "events"
}

// NewRunConfig creates a RunConfig with tracing disabled.
func NewRunConfig(replications int, horizon float64, seed int64) RunConfig {
	return RunConfig{
		Replications: replications,
		Horizon:      horizon,
		Seed:         seed,
		TraceLevel:   trace.TraceLevelNone,
	}
}

// Validate checks that the config describes a runnable run.
func (c RunConfig) Validate() error {
	if c.Replications < 1 {
		return fmt.Errorf("replications must be >= 1, got %d: %w", c.Replications, ErrInvalidConfig)
	}
	if math.IsNaN(c.Horizon) || c.Horizon < 0 {
		return fmt.Errorf("horizon must be a non-negative number, got %v: %w", c.Horizon, ErrInvalidConfig)
	}
	if !trace.IsValidTraceLevel(string(c.TraceLevel)) {
		return fmt.Errorf("unknown trace level %q; valid: none, events: %w", c.TraceLevel, ErrInvalidConfig)
	}
	return nil
}
