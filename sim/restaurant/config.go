package restaurant

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/simplesim/sim/random"
)

const (
	// OneDay is the default horizon: the model clock counts minutes.
	OneDay = 60 * 24
	// DefaultSeed reproduces the reference run of the scenario.
	DefaultSeed = 0xDEADBEEF
	// DefaultReplications is the number of simulated days in the reference run.
	DefaultReplications = 1000
)

// Config describes the counter scenario. Loaded from YAML via LoadConfig(path).
type Config struct {
	// Interarrival is the gap between groups, in minutes.
	Interarrival random.DistSpec `yaml:"interarrival"`
	// GroupSize is the number of customers in an arriving group.
	GroupSize random.DistSpec `yaml:"group_size"`
	// ServiceTime is the time to serve one group at the counter, in minutes.
	ServiceTime random.DistSpec `yaml:"service_time"`
}

// DefaultConfig returns the reference scenario: one group every 5 minutes on
// average, groups of 1 to 6, and a service time of 2 to 5 minutes.
func DefaultConfig() Config {
	return Config{
		Interarrival: random.DistSpec{
			Type:   "exponential",
			Params: map[string]float64{"rate": 1.0 / 5},
		},
		GroupSize: random.DistSpec{
			Type:   "uniform_int",
			Params: map[string]float64{"a": 1, "b": 6},
		},
		ServiceTime: random.DistSpec{
			Type: "categorical",
			Outcomes: random.OrderedOutcomes{
				{Value: 2, Probability: 0.55},
				{Value: 3, Probability: 0.30},
				{Value: 4, Probability: 0.10},
				{Value: 5, Probability: 0.05},
			},
		},
	}
}

// LoadConfig reads and parses a YAML scenario file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario config: %w", err)
	}
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing scenario config: %w", err)
	}
	return &cfg, nil
}

// samplers holds the distributions built from a Config.
type samplers struct {
	interarrival random.Sampler
	groupSize    random.Sampler
	serviceTime  random.Sampler
}

func (c Config) buildSamplers() (*samplers, error) {
	interarrival, err := random.NewSampler(c.Interarrival)
	if err != nil {
		return nil, fmt.Errorf("interarrival: %w", err)
	}
	groupSize, err := random.NewSampler(c.GroupSize)
	if err != nil {
		return nil, fmt.Errorf("group_size: %w", err)
	}
	serviceTime, err := random.NewSampler(c.ServiceTime)
	if err != nil {
		return nil, fmt.Errorf("service_time: %w", err)
	}
	return &samplers{interarrival: interarrival, groupSize: groupSize, serviceTime: serviceTime}, nil
}

// Validate checks that every distribution in the config can be built.
func (c Config) Validate() error {
	_, err := c.buildSamplers()
	return err
}
