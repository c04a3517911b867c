package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrScheduling reports an event scheduled before the current clock time.
	ErrScheduling = errors.New("scheduling error")
	// ErrInvalidConfig reports a RunConfig that cannot be run.
	ErrInvalidConfig = errors.New("invalid run config")
)

// SchedulingError describes a causality violation: an event whose time
// precedes the clock, or is not a valid time at all.
type SchedulingError struct {
	Kind      string
	EventTime float64
	ClockTime float64
}

func (e *SchedulingError) Error() string {
	return fmt.Sprintf("scheduling error: %s event at t=%v precedes clock t=%v", e.Kind, e.EventTime, e.ClockTime)
}

// Is makes errors.Is(err, ErrScheduling) match any *SchedulingError.
func (e *SchedulingError) Is(target error) bool {
	return target == ErrScheduling
}
