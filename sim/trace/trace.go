// Package trace records what the dispatch loop did during a run.
// This package has no dependencies on sim/ and stores only plain data types.
package trace

// TraceLevel controls the verbosity of run tracing.
type TraceLevel string

const (
	// TraceLevelNone keeps only per-replication records.
	TraceLevelNone TraceLevel = "none"
	// TraceLevelEvents also records every dispatched event.
	TraceLevelEvents TraceLevel = "events"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:   true,
	TraceLevelEvents: true,
	"":               true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// Termination names the reason a replication stopped.
type Termination string

const (
	// TerminationQueueEmpty means every scheduled event was processed.
	TerminationQueueEmpty Termination = "queue-empty"
	// TerminationHorizon means the next event lay beyond the horizon.
	TerminationHorizon Termination = "horizon"
	// TerminationEmptyInit means Initialize scheduled nothing.
	TerminationEmptyInit Termination = "empty-init"
)

// EventRecord captures one dispatched event.
type EventRecord struct {
	Replication int
	Clock       float64
	Kind        string
	Seq         uint64
}

// ReplicationRecord summarizes one completed replication.
type ReplicationRecord struct {
	Index           int
	EventsProcessed int
	EndClock        float64
	Termination     Termination
	// Dropped is the number of events left in the queue when the horizon was hit.
	Dropped int
}

// SimulationTrace collects records during a run.
type SimulationTrace struct {
	Level        TraceLevel
	Events       []EventRecord
	Replications []ReplicationRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(level TraceLevel) *SimulationTrace {
	if level == "" {
		level = TraceLevelNone
	}
	return &SimulationTrace{
		Level:        level,
		Events:       make([]EventRecord, 0),
		Replications: make([]ReplicationRecord, 0),
	}
}

// RecordEvent appends a dispatch record when event tracing is enabled.
func (st *SimulationTrace) RecordEvent(record EventRecord) {
	if st.Level != TraceLevelEvents {
		return
	}
	st.Events = append(st.Events, record)
}

// RecordReplication appends a replication summary.
func (st *SimulationTrace) RecordReplication(record ReplicationRecord) {
	st.Replications = append(st.Replications, record)
}

// TotalEvents returns the number of events processed across all replications.
func (st *SimulationTrace) TotalEvents() int {
	total := 0
	for _, r := range st.Replications {
		total += r.EventsProcessed
	}
	return total
}
