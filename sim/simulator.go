// sim/simulator.go
package sim

import (
	"github.com/inference-sim/simplesim/sim/stats"
)

// Simulator is the context of one replication handed to model hooks: it holds
// simulation time, the pending events, the replication's Stats and the run's
// random Stream.
type Simulator struct {
	clock       Clock
	scheduler   *Scheduler
	stats       *stats.Stats
	rng         *Stream
	horizon     float64
	replication int
	processed   int
	// schedErr keeps the first failed Schedule so the loop aborts even if the
	// model drops the error.
	schedErr error
}

func newSimulator(replication int, horizon float64, rng *Stream) *Simulator {
	s := &Simulator{
		stats:       stats.New(),
		rng:         rng,
		horizon:     horizon,
		replication: replication,
	}
	s.clock.reset()
	s.scheduler = NewScheduler(&s.clock)
	return s
}

// Now returns the current simulation time.
func (s *Simulator) Now() float64 {
	return s.clock.Time()
}

// Schedule pushes ev onto the event queue. Scheduling into the past fails with
// a *SchedulingError; a model should return it so the replication aborts.
func (s *Simulator) Schedule(ev Event) error {
	err := s.scheduler.Push(ev)
	if err != nil && s.schedErr == nil {
		s.schedErr = err
	}
	return err
}

// Stats returns the Stats of the current replication.
func (s *Simulator) Stats() *stats.Stats {
	return s.stats
}

// RNG returns the run's random Stream.
func (s *Simulator) RNG() *Stream {
	return s.rng
}

// Horizon returns the maximum time an event may have and still be dispatched.
func (s *Simulator) Horizon() float64 {
	return s.horizon
}

// Replication returns the zero-based index of the current replication.
func (s *Simulator) Replication() int {
	return s.replication
}

// EventsProcessed returns how many events have been dispatched so far.
func (s *Simulator) EventsProcessed() int {
	return s.processed
}

// Pending returns the number of scheduled events not yet dispatched.
func (s *Simulator) Pending() int {
	return s.scheduler.Len()
}
