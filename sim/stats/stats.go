// Package stats accumulates named series of observations recorded by a model.
//
// Recording to a name appends an observation; nothing is ever overwritten.
// Names need no declaration: the first Record creates the series. Iteration
// order over names is the order in which they were first recorded, so reports
// are stable for a given run.
package stats

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrEmptySeries reports a query on a name with no recorded observations.
var ErrEmptySeries = errors.New("no observations recorded")

// ErrInvalidPercentile reports a percentile outside [0, 100].
var ErrInvalidPercentile = errors.New("percentile outside [0, 100]")

// Stats maps metric names to ordered series of observations.
// Not safe for concurrent use.
type Stats struct {
	names  []string
	series map[string][]float64
}

// New returns an empty Stats.
func New() *Stats {
	return &Stats{series: make(map[string][]float64)}
}

// Record appends v to the series for name, creating it on first use.
func (s *Stats) Record(name string, v float64) {
	if _, ok := s.series[name]; !ok {
		s.names = append(s.names, name)
	}
	s.series[name] = append(s.series[name], v)
}

// RecordInt is Record for integer observations.
func (s *Stats) RecordInt(name string, v int) {
	s.Record(name, float64(v))
}

// Merge appends other's series onto the receiver's, name by name, preserving
// order and creating names the receiver has not seen.
func (s *Stats) Merge(other *Stats) {
	if other == nil {
		return
	}
	for _, name := range slices.Clone(other.names) {
		values := slices.Clone(other.series[name])
		if _, ok := s.series[name]; !ok {
			s.names = append(s.names, name)
		}
		s.series[name] = append(s.series[name], values...)
	}
}

// Names returns metric names in first-record order.
func (s *Stats) Names() []string {
	return slices.Clone(s.names)
}

// Has reports whether name has at least one observation.
func (s *Stats) Has(name string) bool {
	return len(s.series[name]) > 0
}

// Len returns the number of distinct metric names.
func (s *Stats) Len() int {
	return len(s.names)
}

func (s *Stats) lookup(name string) ([]float64, error) {
	values := s.series[name]
	if len(values) == 0 {
		return nil, fmt.Errorf("metric %q: %w", name, ErrEmptySeries)
	}
	return values, nil
}

// Values returns a copy of the raw observations for name, in record order.
func (s *Stats) Values(name string) ([]float64, error) {
	values, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	return slices.Clone(values), nil
}

// Count returns the number of observations for name.
func (s *Stats) Count(name string) (int, error) {
	values, err := s.lookup(name)
	if err != nil {
		return 0, err
	}
	return len(values), nil
}

// Sum returns the total of the observations for name.
func (s *Stats) Sum(name string) (float64, error) {
	values, err := s.lookup(name)
	if err != nil {
		return 0, err
	}
	return floats.Sum(values), nil
}

// Mean returns the arithmetic mean of the observations for name.
func (s *Stats) Mean(name string) (float64, error) {
	values, err := s.lookup(name)
	if err != nil {
		return 0, err
	}
	return stat.Mean(values, nil), nil
}

// Variance returns the sample variance (n-1 denominator) of the observations
// for name. A single observation has variance 0.
func (s *Stats) Variance(name string) (float64, error) {
	values, err := s.lookup(name)
	if err != nil {
		return 0, err
	}
	if len(values) == 1 {
		return 0, nil
	}
	return stat.Variance(values, nil), nil
}

// Stdev returns the sample standard deviation of the observations for name.
func (s *Stats) Stdev(name string) (float64, error) {
	v, err := s.Variance(name)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// Min returns the smallest observation for name.
func (s *Stats) Min(name string) (float64, error) {
	values, err := s.lookup(name)
	if err != nil {
		return 0, err
	}
	return floats.Min(values), nil
}

// Max returns the largest observation for name.
func (s *Stats) Max(name string) (float64, error) {
	values, err := s.lookup(name)
	if err != nil {
		return 0, err
	}
	return floats.Max(values), nil
}

// Percentile returns the p-th percentile (0 <= p <= 100) of the observations
// for name, linearly interpolated between order statistics.
func (s *Stats) Percentile(name string, p float64) (float64, error) {
	if math.IsNaN(p) || p < 0 || p > 100 {
		return 0, fmt.Errorf("percentile %v: %w", p, ErrInvalidPercentile)
	}
	values, err := s.lookup(name)
	if err != nil {
		return 0, err
	}
	sorted := slices.Clone(values)
	sort.Float64s(sorted)
	return stat.Quantile(p/100, stat.LinInterp, sorted, nil), nil
}
