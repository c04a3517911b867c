package sim

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/simplesim/sim/stats"
	"github.com/inference-sim/simplesim/sim/trace"
)

// Runner drives replications of a Model and folds their Stats together.
//
// Replications run one after another. Each gets a fresh Clock, Scheduler and
// Stats; the random Stream is created once per Run and never reseeded.
type Runner struct {
	config RunConfig
	trace  *trace.SimulationTrace
}

// NewRunner validates cfg and returns a Runner for it.
func NewRunner(cfg RunConfig) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Runner{config: cfg, trace: trace.NewSimulationTrace(cfg.TraceLevel)}, nil
}

// Run executes the model for every replication and returns the run-level Stats,
// whose series span all replications in replication order. Any error from a
// model hook, including a scheduling error, aborts the run.
func (r *Runner) Run(m Model) (*stats.Stats, error) {
	if m == nil {
		return nil, errors.New("model cannot be nil")
	}
	r.trace = trace.NewSimulationTrace(r.config.TraceLevel)
	rng := NewStream(NewSimulationKey(r.config.Seed))
	total := stats.New()

	logrus.Infof("Starting run: replications=%d, horizon=%v, seed=%d",
		r.config.Replications, r.config.Horizon, r.config.Seed)
	for i := 0; i < r.config.Replications; i++ {
		s, err := r.runReplication(i, m, rng)
		if err != nil {
			return nil, fmt.Errorf("replication %d: %w", i, err)
		}
		total.Merge(s.stats)
	}
	logrus.Infof("Run complete: %d replications, %d events, %d random draws",
		r.config.Replications, r.trace.TotalEvents(), rng.Draws())
	return total, nil
}

// runReplication is one pass of REPLICATION_INIT → RUNNING → REPLICATION_DONE.
func (r *Runner) runReplication(idx int, m Model, rng *Stream) (*Simulator, error) {
	s := newSimulator(idx, r.config.Horizon, rng)
	if err := m.Initialize(s); err != nil {
		return nil, fmt.Errorf("initialize: %w", err)
	}
	if s.schedErr != nil {
		return nil, fmt.Errorf("initialize: %w", s.schedErr)
	}
	if s.scheduler.Len() == 0 {
		logrus.Warnf("replication %d: Initialize scheduled no events; zero events processed", idx)
		r.trace.RecordReplication(trace.ReplicationRecord{
			Index:       idx,
			Termination: trace.TerminationEmptyInit,
		})
		return s, nil
	}

	updater, hasUpdate := m.(Updater)
	termination := trace.TerminationQueueEmpty
	for {
		next, ok := s.scheduler.PeekMinTime()
		if !ok {
			break
		}
		if next > s.horizon {
			termination = trace.TerminationHorizon
			break
		}
		ev, seq, _ := s.scheduler.popMin()
		s.clock.advanceTo(ev.Timestamp())
		s.processed++
		logrus.Debugf("[t %12.4f] Executing %s", s.clock.Time(), ev.Kind())
		r.trace.RecordEvent(trace.EventRecord{
			Replication: idx,
			Clock:       s.clock.Time(),
			Kind:        ev.Kind(),
			Seq:         seq,
		})

		if err := m.Handle(s, ev); err != nil {
			return nil, fmt.Errorf("handle %s at t=%v: %w", ev.Kind(), s.clock.Time(), err)
		}
		if s.schedErr != nil {
			return nil, fmt.Errorf("handle %s at t=%v: %w", ev.Kind(), s.clock.Time(), s.schedErr)
		}
		if hasUpdate {
			if err := updater.Update(s, ev); err != nil {
				return nil, fmt.Errorf("update %s at t=%v: %w", ev.Kind(), s.clock.Time(), err)
			}
			if s.schedErr != nil {
				return nil, fmt.Errorf("update %s at t=%v: %w", ev.Kind(), s.clock.Time(), s.schedErr)
			}
		}
	}

	record := trace.ReplicationRecord{
		Index:           idx,
		EventsProcessed: s.processed,
		EndClock:        s.clock.Time(),
		Termination:     termination,
	}
	if termination == trace.TerminationHorizon {
		record.Dropped = s.scheduler.Len()
	}
	r.trace.RecordReplication(record)
	logrus.Debugf("replication %d ended at t=%v after %d events (%s)",
		idx, record.EndClock, record.EventsProcessed, termination)
	return s, nil
}

// Trace returns the records of the most recent Run.
func (r *Runner) Trace() *trace.SimulationTrace {
	return r.trace
}

// Summaries returns one record per replication of the most recent Run.
func (r *Runner) Summaries() []trace.ReplicationRecord {
	return r.trace.Replications
}

// Run executes replications of m up to horizon with a Stream seeded from seed.
func Run(m Model, replications int, horizon float64, seed int64) (*stats.Stats, error) {
	r, err := NewRunner(NewRunConfig(replications, horizon, seed))
	if err != nil {
		return nil, err
	}
	return r.Run(m)
}
