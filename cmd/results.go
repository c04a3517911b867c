package cmd

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/rs/xid"
	"github.com/sirupsen/logrus"

	sim "github.com/inference-sim/simplesim/sim"
	"github.com/inference-sim/simplesim/sim/stats"
	"github.com/inference-sim/simplesim/sim/trace"
)

// Results is the JSON document written by --results-path.
type Results struct {
	RunID        string                    `json:"run_id"`
	Seed         int64                     `json:"seed"`
	Replications int                       `json:"replications"`
	Horizon      *float64                  `json:"horizon,omitempty"` // nil when unbounded
	TotalEvents  int                       `json:"total_events"`
	Terminations map[trace.Termination]int `json:"terminations"`
	Stats        *stats.Stats              `json:"stats"`
}

func newResults(cfg sim.RunConfig, st *stats.Stats, tr *trace.SimulationTrace) Results {
	terms := make(map[trace.Termination]int)
	for _, r := range tr.Replications {
		terms[r.Termination]++
	}
	var horizon *float64
	if !math.IsInf(cfg.Horizon, 1) {
		h := cfg.Horizon
		horizon = &h
	}
	return Results{
		RunID:        xid.New().String(),
		Seed:         cfg.Seed,
		Replications: cfg.Replications,
		Horizon:      horizon,
		TotalEvents:  tr.TotalEvents(),
		Terminations: terms,
		Stats:        st,
	}
}

// saveResults writes res as indented JSON to path.
func saveResults(path string, res Results) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing results to %s: %w", path, err)
	}
	logrus.Infof("Results (run %s) written to %s", res.RunID, path)
	return nil
}
