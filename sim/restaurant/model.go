// Package restaurant models the front counter of a restaurant as a
// single-server queue.
//
// Groups of customers arrive at random and wait in line to pay; one group is
// served at a time. The clock counts minutes.
package restaurant

import (
	"fmt"

	"github.com/inference-sim/simplesim/sim"
)

// Metric names recorded by the model.
const (
	MetricNumCustomers = "num_customers"
	MetricWaitTime     = "wait_time"
	MetricServiceTime  = "service_time"
	MetricNumServed    = "num_served"
	MetricQueueLength  = "queue_length"
)

// ArriveEvent is a group arriving at the counter.
type ArriveEvent struct {
	time      float64
	GroupSize int
}

func (e *ArriveEvent) Timestamp() float64 { return e.time }
func (e *ArriveEvent) Kind() string       { return "arrive-counter" }

// DepartEvent is the group at the head of the line leaving the counter.
type DepartEvent struct {
	time float64
}

func (e *DepartEvent) Timestamp() float64 { return e.time }
func (e *DepartEvent) Kind() string       { return "depart-counter" }

// party is a group waiting at the counter.
type party struct {
	arrived float64
	size    int
}

// Model is the counter scenario. It implements sim.Model and sim.Updater.
type Model struct {
	dists *samplers
	line  []party // FIFO; line[0] is being served
}

// NewModel builds a Model from cfg, validating every distribution.
func NewModel(cfg Config) (*Model, error) {
	dists, err := cfg.buildSamplers()
	if err != nil {
		return nil, err
	}
	return &Model{dists: dists}, nil
}

// Initialize empties the line and schedules the first arrival at t=0.
func (m *Model) Initialize(s *sim.Simulator) error {
	m.line = make([]party, 0)
	first, err := m.newArrival(s, 0)
	if err != nil {
		return err
	}
	return s.Schedule(first)
}

// Handle dispatches on the event kind.
func (m *Model) Handle(s *sim.Simulator, ev sim.Event) error {
	switch e := ev.(type) {
	case *ArriveEvent:
		return m.handleArrive(s, e)
	case *DepartEvent:
		return m.handleDepart(s)
	default:
		return fmt.Errorf("restaurant: unexpected event kind %q", ev.Kind())
	}
}

// Update records the length of the line after every event.
func (m *Model) Update(s *sim.Simulator, _ sim.Event) error {
	s.Stats().RecordInt(MetricQueueLength, len(m.line))
	return nil
}

// QueueLength returns the number of groups at the counter, including the one
// being served.
func (m *Model) QueueLength() int {
	return len(m.line)
}

func (m *Model) handleArrive(s *sim.Simulator, e *ArriveEvent) error {
	now := s.Now()
	s.Stats().RecordInt(MetricNumCustomers, e.GroupSize)
	m.line = append(m.line, party{arrived: now, size: e.GroupSize})
	if len(m.line) == 1 {
		if err := m.startService(s); err != nil {
			return err
		}
	}

	gap, err := m.dists.interarrival.Sample(s.RNG())
	if err != nil {
		return fmt.Errorf("interarrival: %w", err)
	}
	next, err := m.newArrival(s, now+gap)
	if err != nil {
		return err
	}
	return s.Schedule(next)
}

func (m *Model) handleDepart(s *sim.Simulator) error {
	if len(m.line) == 0 {
		return fmt.Errorf("restaurant: departure at t=%v with an empty line", s.Now())
	}
	served := m.line[0]
	m.line = m.line[1:]
	s.Stats().RecordInt(MetricNumServed, served.size)
	if len(m.line) > 0 {
		return m.startService(s)
	}
	return nil
}

// startService begins serving the group at the head of the line.
func (m *Model) startService(s *sim.Simulator) error {
	now := s.Now()
	s.Stats().Record(MetricWaitTime, now-m.line[0].arrived)
	svc, err := m.dists.serviceTime.Sample(s.RNG())
	if err != nil {
		return fmt.Errorf("service_time: %w", err)
	}
	s.Stats().Record(MetricServiceTime, svc)
	return s.Schedule(&DepartEvent{time: now + svc})
}

// newArrival draws the group size when the arrival is created.
func (m *Model) newArrival(s *sim.Simulator, at float64) (*ArriveEvent, error) {
	size, err := m.dists.groupSize.Sample(s.RNG())
	if err != nil {
		return nil, fmt.Errorf("group_size: %w", err)
	}
	return &ArriveEvent{time: at, GroupSize: int(size)}, nil
}
