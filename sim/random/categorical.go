package random

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// probabilityTolerance absorbs floating-point error when summing probabilities.
const probabilityTolerance = 1e-9

// Outcome is one value of a categorical distribution with its probability.
type Outcome[T any] struct {
	Value       T
	Probability float64
}

// Categorical samples from a finite set of outcomes.
// Cumulative boundaries follow the order the outcomes were given in.
type Categorical[T any] struct {
	values     []T
	boundaries []float64 // cumulative probabilities, same length as values
}

// NewCategorical builds a sampler over outcomes, in the order given.
// Probabilities must be in [0, 1] and sum to at most 1. When the sum is within
// tolerance of 1 the last boundary is pinned to exactly 1.
func NewCategorical[T any](outcomes []Outcome[T]) (*Categorical[T], error) {
	if len(outcomes) == 0 {
		return nil, fmt.Errorf("categorical: no outcomes: %w", ErrConfiguration)
	}
	values := make([]T, 0, len(outcomes))
	boundaries := make([]float64, 0, len(outcomes))
	cumulative := 0.0
	for i, o := range outcomes {
		if math.IsNaN(o.Probability) || o.Probability < 0 || o.Probability > 1 {
			return nil, fmt.Errorf("categorical: outcome %d probability %v outside [0, 1]: %w", i, o.Probability, ErrConfiguration)
		}
		cumulative += o.Probability
		values = append(values, o.Value)
		boundaries = append(boundaries, cumulative)
	}
	switch {
	case cumulative > 1+probabilityTolerance:
		return nil, fmt.Errorf("categorical: probabilities sum to %v > 1: %w", cumulative, ErrConfiguration)
	case cumulative >= 1-probabilityTolerance:
		boundaries[len(boundaries)-1] = 1.0
	default:
		logrus.Warnf("categorical: probabilities sum to %v < 1; draws above it will fail", cumulative)
	}
	return &Categorical[T]{values: values, boundaries: boundaries}, nil
}

// Sample returns the first value whose cumulative boundary is >= u.
// A draw beyond the last boundary wraps ErrConfiguration.
func (c *Categorical[T]) Sample(src Source) (T, error) {
	u := src.Float64()
	for i, b := range c.boundaries {
		if u <= b {
			return c.values[i], nil
		}
	}
	var zero T
	return zero, fmt.Errorf("categorical: draw %v beyond total probability %v: %w", u, c.Total(), ErrConfiguration)
}

// Total returns the sum of the outcome probabilities.
func (c *Categorical[T]) Total() float64 {
	return c.boundaries[len(c.boundaries)-1]
}

// Len returns the number of outcomes.
func (c *Categorical[T]) Len() int {
	return len(c.values)
}
