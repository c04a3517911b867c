package sim

import (
	"math/rand"
)

// SimulationKey uniquely identifies a reproducible simulation run.
// Two runs with the same SimulationKey and identical model configuration
// MUST produce bit-for-bit identical Stats.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// Stream is the single uniform random source of a run. It is seeded once and
// shared by every replication, so a run is one contiguous random sequence.
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type Stream struct {
	key   SimulationKey
	rng   *rand.Rand
	draws uint64
}

// NewStream creates a Stream seeded from key.
func NewStream(key SimulationKey) *Stream {
	return &Stream{
		key: key,
		rng: rand.New(rand.NewSource(int64(key))),
	}
}

// Float64 returns a uniform draw on [0, 1). It satisfies random.Source.
func (s *Stream) Float64() float64 {
	s.draws++
	return s.rng.Float64()
}

// Uniform01 is Float64 under its distribution name.
func (s *Stream) Uniform01() float64 {
	return s.Float64()
}

// Draws returns how many uniform values have been consumed.
func (s *Stream) Draws() uint64 {
	return s.draws
}

// Key returns the SimulationKey used to seed this Stream.
func (s *Stream) Key() SimulationKey {
	return s.key
}
