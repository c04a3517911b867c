package sim

// Event defines the interface for all simulation events.
// Each event has a Timestamp (simulation time units) and a Kind naming its
// variant. Concrete kinds are defined by the model; an event is never mutated
// once scheduled.
type Event interface {
	Timestamp() float64
	Kind() string
}
