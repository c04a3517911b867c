package random

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqSource replays a fixed list of uniform draws.
type seqSource struct {
	vals []float64
	next int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.next]
	s.next++
	return v
}

func TestUniformInt_StaysInRangeAndCoversIt(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	seen := make(map[int]int)
	for i := 0; i < 100000; i++ {
		v, err := UniformInt(rng, 1, 6)
		require.NoError(t, err)
		if v < 1 || v > 6 {
			t.Fatalf("draw %d: %d outside [1, 6]", i, v)
		}
		seen[v]++
	}
	assert.Len(t, seen, 6, "every integer in [1, 6] should appear")
}

func TestUniformInt_Boundaries(t *testing.T) {
	src := &seqSource{vals: []float64{0, 0.999999999}}
	lo, err := UniformInt(src, -2, 2)
	require.NoError(t, err)
	hi, err := UniformInt(src, -2, 2)
	require.NoError(t, err)
	assert.Equal(t, -2, lo)
	assert.Equal(t, 2, hi)
}

func TestUniformInt_SingletonRange(t *testing.T) {
	v, err := UniformInt(&seqSource{vals: []float64{0.7}}, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, v)
}

func TestUniformInt_RejectsInvertedRange(t *testing.T) {
	_, err := UniformInt(&seqSource{}, 5, 1)
	assert.True(t, errors.Is(err, ErrConfiguration))
}

func TestUniformInt_RejectsRangesWiderThanFloatPrecision(t *testing.T) {
	tests := []struct {
		name string
		a, b int
	}{
		{"zero to max int", 0, math.MaxInt},
		{"whole int range", math.MinInt, math.MaxInt},
		{"minus one to max int minus one", -1, math.MaxInt - 1},
		{"one past 2^53", 0, 1 << 53},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UniformInt(rand.New(rand.NewSource(1)), tt.a, tt.b)
			assert.ErrorIs(t, err, ErrConfiguration)
		})
	}
}

func TestUniformInt_NearIntLimitsStaysInRange(t *testing.T) {
	tests := []struct {
		name string
		a, b int
	}{
		{"top of int range", math.MaxInt - 5, math.MaxInt},
		{"bottom of int range", math.MinInt, math.MinInt + 5},
		{"widest accepted span", -1, 1<<53 - 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// GIVEN the extreme draws
			src := &seqSource{vals: []float64{0, 0.9999999999999999}}
			lo, err := UniformInt(src, tt.a, tt.b)
			require.NoError(t, err)
			hi, err := UniformInt(src, tt.a, tt.b)
			require.NoError(t, err)

			// THEN both ends of the range are hit exactly
			assert.Equal(t, tt.a, lo)
			assert.Equal(t, tt.b, hi)

			// AND random draws never leave [a, b]
			rng := rand.New(rand.NewSource(1))
			for i := 0; i < 1000; i++ {
				v, err := UniformInt(rng, tt.a, tt.b)
				require.NoError(t, err)
				require.GreaterOrEqual(t, v, tt.a)
				require.LessOrEqual(t, v, tt.b)
			}
		})
	}
}

func TestBernoulli(t *testing.T) {
	src := &seqSource{vals: []float64{0.29, 0.3, 0.95}}
	for _, want := range []int{1, 0, 0} {
		got, err := Bernoulli(src, 0.3)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestBernoulli_ExtremeProbabilities(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		zero, err := Bernoulli(rng, 0)
		require.NoError(t, err)
		one, err := Bernoulli(rng, 1)
		require.NoError(t, err)
		if zero != 0 || one != 1 {
			t.Fatalf("draw %d: Bernoulli(0)=%d Bernoulli(1)=%d", i, zero, one)
		}
	}
}

func TestBernoulli_RejectsOutOfRangeP(t *testing.T) {
	for _, p := range []float64{-0.1, 1.1, math.NaN()} {
		_, err := Bernoulli(&seqSource{}, p)
		assert.ErrorIs(t, err, ErrConfiguration, "p=%v", p)
	}
}

func TestCoinToss_RoughlyFair(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	heads := 0
	n := 100000
	for i := 0; i < n; i++ {
		if CoinToss(rng) {
			heads++
		}
	}
	assert.InDelta(t, 0.5, float64(heads)/float64(n), 0.01)
}

func TestExponential_Formula(t *testing.T) {
	got, err := Exponential(&seqSource{vals: []float64{0.5}}, 2)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(2)/2, got, 1e-12)
}

func TestExponential_ZeroRateConsumesNoDraw(t *testing.T) {
	src := &seqSource{}
	got, err := Exponential(src, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
	assert.Equal(t, 0, src.next)
}

func TestExponential_MeanMatchesRate(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	n := 100000
	sum := 0.0
	for i := 0; i < n; i++ {
		v, err := Exponential(rng, 0.2)
		require.NoError(t, err)
		sum += v
	}
	mean := sum / float64(n)
	if math.Abs(mean-5)/5 > 0.02 {
		t.Errorf("exponential mean = %.3f, want ≈ 5 (within 2%%)", mean)
	}
}

func TestExponential_RejectsNegativeRate(t *testing.T) {
	_, err := Exponential(&seqSource{}, -1)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestPoissonCount_CountsGapsInsideDuration(t *testing.T) {
	// rate 1: gaps are -ln(1-u). Cumulative times: 0.5, 1.5, 2.5 (exceeds 2).
	u := func(gap float64) float64 { return 1 - math.Exp(-gap) }
	src := &seqSource{vals: []float64{u(0.5), u(1.0), u(1.0)}}
	got, err := PoissonCount(src, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
	assert.Equal(t, 3, src.next)
}

func TestPoissonCount_ZeroRate(t *testing.T) {
	got, err := PoissonCount(&seqSource{}, 100, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestPoissonCount_MeanMatchesRateTimesDuration(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	n := 20000
	total := 0
	for i := 0; i < n; i++ {
		c, err := PoissonCount(rng, 10, 0.5)
		require.NoError(t, err)
		total += c
	}
	assert.InDelta(t, 5.0, float64(total)/float64(n), 0.1)
}

func TestErlang_SumsKExponentials(t *testing.T) {
	src := &seqSource{vals: []float64{0.5, 0.5, 0.5}}
	got, err := Erlang(src, 3, 1)
	require.NoError(t, err)
	assert.InDelta(t, 3*math.Log(2), got, 1e-12)
}

func TestErlang_RejectsNonPositiveK(t *testing.T) {
	_, err := Erlang(&seqSource{}, 0, 1)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestNormal_BoxMuller(t *testing.T) {
	src := &seqSource{vals: []float64{0.25, 0.125}}
	got, err := Normal(src, 10, 2)
	require.NoError(t, err)
	want := 10 + 2*math.Sqrt(-2*math.Log(0.25))*math.Cos(2*math.Pi*0.125)
	assert.InDelta(t, want, got, 1e-12)
}

func TestNormal_ZeroFirstDrawStaysFinite(t *testing.T) {
	got, err := Normal(&seqSource{vals: []float64{0, 0}}, 0, 1)
	require.NoError(t, err)
	assert.False(t, math.IsInf(got, 0) || math.IsNaN(got))
}

func TestNormal_MomentsMatchParams(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	n := 100000
	sum, sumSq := 0.0, 0.0
	for i := 0; i < n; i++ {
		v, err := Normal(rng, 3, 2)
		require.NoError(t, err)
		sum += v
		sumSq += v * v
	}
	mean := sum / float64(n)
	variance := sumSq/float64(n) - mean*mean
	assert.InDelta(t, 3, mean, 0.05)
	assert.InDelta(t, 4, variance, 0.1)
}

func TestNormal_RejectsNegativeStdev(t *testing.T) {
	_, err := Normal(&seqSource{}, 0, -1)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestGenerators_DeterministicForSeed(t *testing.T) {
	draw := func(seed int64) []float64 {
		rng := rand.New(rand.NewSource(seed))
		out := make([]float64, 0, 40)
		for i := 0; i < 10; i++ {
			e, _ := Exponential(rng, 0.3)
			n, _ := Normal(rng, 0, 1)
			k, _ := UniformInt(rng, 1, 100)
			g, _ := Erlang(rng, 2, 1)
			out = append(out, e, n, float64(k), g)
		}
		return out
	}
	assert.Equal(t, draw(99), draw(99))
	assert.NotEqual(t, draw(99), draw(100))
}
