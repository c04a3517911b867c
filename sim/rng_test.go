package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/inference-sim/simplesim/sim/random"
)

// === SimulationKey Tests ===

func TestSimulationKey_Creation(t *testing.T) {
	tests := []struct {
		name string
		seed int64
	}{
		{"positive seed", 42},
		{"zero seed", 0},
		{"negative seed", -1},
		{"max int64", math.MaxInt64},
		{"min int64", math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := NewSimulationKey(tt.seed)
			if int64(key) != tt.seed {
				t.Errorf("NewSimulationKey(%d) = %d, want %d", tt.seed, key, tt.seed)
			}
		})
	}
}

// === Stream Tests ===

func TestStream_MatchesMathRandForSameSeed(t *testing.T) {
	s := NewStream(NewSimulationKey(42))
	ref := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		if got, want := s.Float64(), ref.Float64(); got != want {
			t.Fatalf("draw %d: got %v, want %v", i, got, want)
		}
	}
}

func TestStream_SameKeySameSequence(t *testing.T) {
	s1 := NewStream(NewSimulationKey(7))
	s2 := NewStream(NewSimulationKey(7))
	for i := 0; i < 50; i++ {
		if a, b := s1.Uniform01(), s2.Uniform01(); a != b {
			t.Fatalf("draw %d differs: %v vs %v", i, a, b)
		}
	}
}

func TestStream_CountsDraws(t *testing.T) {
	s := NewStream(NewSimulationKey(1))
	var src random.Source = s
	for i := 0; i < 5; i++ {
		src.Float64()
	}
	if _, err := random.Normal(s, 0, 1); err != nil {
		t.Fatal(err)
	}
	if s.Draws() != 7 {
		t.Errorf("Draws() = %d, want 7", s.Draws())
	}
	if s.Key() != 1 {
		t.Errorf("Key() = %d, want 1", s.Key())
	}
}
