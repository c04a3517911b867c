package sim

// Model is the client side of a simulation.
//
// Initialize is called at the start of every replication. It must reset all
// domain state (the same Model value is reused across replications) and
// schedule the first events. Handle applies one event: it may read s.Now(),
// update domain state, record Stats and schedule further events.
type Model interface {
	Initialize(s *Simulator) error
	Handle(s *Simulator, ev Event) error
}

// Updater is an optional Model extension. Update runs once after Handle for the
// same event, typically for bookkeeping that applies to every event kind.
type Updater interface {
	Update(s *Simulator, ev Event) error
}
