// Package sim provides the discrete-event simulation kernel for simplesim.
//
// # Reading Guide
//
// Start with these files to understand the kernel:
//   - event.go: the Event contract client models implement
//   - scheduler.go: the event queue ordered by (time, insertion sequence)
//   - simulator.go: the per-replication context handed to model hooks
//   - runner.go: the replication controller and dispatch loop
//
// # Architecture
//
// The sim package owns ordering, time and seeding; everything else lives in
// sub-packages:
//   - sim/random/: random-variate generators over a uniform Source
//   - sim/stats/: named observation series and their aggregates
//   - sim/trace/: dispatch and replication records
//   - sim/restaurant/: an example Model (single-server restaurant counter)
//
// # Key Interfaces
//
//   - Event: Timestamp and Kind of a scheduled change
//   - Model: Initialize and Handle hooks supplied by the client
//   - Updater: optional per-event post-processing hook
//
// A run is single-threaded. Replications execute one after another and share a
// single Stream seeded once from the SimulationKey, so the same seed always
// reproduces the same Stats.
package sim
