// Package random provides the random-variate generators used by simulation models.
//
// Every generator draws from a caller-supplied Source and keeps no state of its
// own, so a run is reproducible given the Source's seed. Parameter errors are
// reported eagerly and wrap ErrConfiguration.
package random

import (
	"errors"
	"fmt"
	"math"
)

// ErrConfiguration reports invalid distribution parameters.
var ErrConfiguration = errors.New("invalid distribution configuration")

// Source yields uniform draws on [0, 1). *rand.Rand and *sim.Stream satisfy it.
type Source interface {
	Float64() float64
}

// Uniform01 returns a draw from the continuous uniform distribution on [0, 1).
func Uniform01(src Source) float64 {
	return src.Float64()
}

// maxUniformSpan is the widest range a single float64 draw can cover with
// every integer reachable.
const maxUniformSpan = 1 << 53

// UniformInt returns an integer drawn uniformly from the closed range [a, b].
// Ranges wider than 2^53 integers are rejected.
func UniformInt(src Source, a, b int) (int, error) {
	if a > b {
		return 0, fmt.Errorf("uniform int: a=%d > b=%d: %w", a, b, ErrConfiguration)
	}
	// span wraps to 0 when [a, b] covers every int
	span := uint64(b) - uint64(a) + 1
	if span == 0 || span > maxUniformSpan {
		return 0, fmt.Errorf("uniform int: range [%d, %d] wider than 2^53: %w", a, b, ErrConfiguration)
	}
	offset := uint64(src.Float64() * float64(span))
	if offset >= span {
		offset = span - 1
	}
	return int(uint64(a) + offset), nil
}

// Bernoulli returns 1 with probability p and 0 otherwise.
func Bernoulli(src Source, p float64) (int, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, fmt.Errorf("bernoulli: p=%v outside [0, 1]: %w", p, ErrConfiguration)
	}
	if src.Float64() < p {
		return 1, nil
	}
	return 0, nil
}

// CoinToss reports true or false with equal probability.
func CoinToss(src Source) bool {
	// p is a constant inside [0, 1]
	v, _ := Bernoulli(src, 0.5)
	return v == 1
}

// Exponential returns the gap between events of a Poisson process with the given
// rate. A zero rate means no arrivals and yields 0 without consuming a draw.
func Exponential(src Source, rate float64) (float64, error) {
	if err := checkRate("exponential", rate); err != nil {
		return 0, err
	}
	if rate == 0 {
		return 0, nil
	}
	return -math.Log(1-src.Float64()) / rate, nil
}

// PoissonCount returns the number of events of a Poisson process with the given
// rate that land strictly inside duration.
func PoissonCount(src Source, duration, rate float64) (int, error) {
	if err := checkRate("poisson", rate); err != nil {
		return 0, err
	}
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration < 0 {
		return 0, fmt.Errorf("poisson: duration=%v must be finite and non-negative: %w", duration, ErrConfiguration)
	}
	if rate == 0 {
		return 0, nil
	}
	elapsed := 0.0
	count := 0
	for elapsed < duration {
		gap, _ := Exponential(src, rate)
		elapsed += gap
		if elapsed < duration {
			count++
		}
	}
	return count, nil
}

// Erlang returns the time until k events occur, the sum of k exponential gaps.
func Erlang(src Source, k int, rate float64) (float64, error) {
	if k < 1 {
		return 0, fmt.Errorf("erlang: k=%d must be >= 1: %w", k, ErrConfiguration)
	}
	if err := checkRate("erlang", rate); err != nil {
		return 0, err
	}
	total := 0.0
	for i := 0; i < k; i++ {
		gap, _ := Exponential(src, rate)
		total += gap
	}
	return total, nil
}

// Normal returns a draw from N(mean, stdev) using the Box-Muller transform.
func Normal(src Source, mean, stdev float64) (float64, error) {
	if math.IsNaN(stdev) || stdev < 0 {
		return 0, fmt.Errorf("normal: stdev=%v must be non-negative: %w", stdev, ErrConfiguration)
	}
	u1 := src.Float64()
	u2 := src.Float64()
	if u1 == 0 {
		u1 = math.SmallestNonzeroFloat64 // ln(0) would yield +Inf
	}
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + stdev*z, nil
}

func checkRate(dist string, rate float64) error {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
		return fmt.Errorf("%s: rate=%v must be a finite non-negative number: %w", dist, rate, ErrConfiguration)
	}
	return nil
}
