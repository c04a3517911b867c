package sim

import "fmt"

// Clock holds the current simulation time of a replication.
// Only the dispatch loop moves it; models read it through Simulator.Now.
type Clock struct {
	time float64
}

// Time returns the current simulation time.
func (c *Clock) Time() float64 {
	return c.time
}

// advanceTo moves the clock forward to t.
func (c *Clock) advanceTo(t float64) {
	if t < c.time {
		panic(fmt.Sprintf("clock went backwards: %v < %v", t, c.time))
	}
	c.time = t
}

func (c *Clock) reset() {
	c.time = 0
}
