package random

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Sampler draws one value from a configured distribution.
type Sampler interface {
	Sample(src Source) (float64, error)
}

// DistSpec parameterizes a distribution in a YAML scenario file.
type DistSpec struct {
	Type     string             `yaml:"type"`
	Params   map[string]float64 `yaml:"params,omitempty"`
	Outcomes OrderedOutcomes    `yaml:"outcomes,omitempty"`
}

// OrderedOutcomes is a categorical outcome list decoded from a YAML mapping of
// value: probability, keeping the order the keys appear in the document.
type OrderedOutcomes []Outcome[float64]

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *OrderedOutcomes) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: outcomes must be a mapping of value: probability", node.Line)
	}
	out := make(OrderedOutcomes, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var value, prob float64
		if err := node.Content[i].Decode(&value); err != nil {
			return fmt.Errorf("line %d: outcome value: %w", node.Content[i].Line, err)
		}
		if err := node.Content[i+1].Decode(&prob); err != nil {
			return fmt.Errorf("line %d: outcome probability: %w", node.Content[i+1].Line, err)
		}
		out = append(out, Outcome[float64]{Value: value, Probability: prob})
	}
	*o = out
	return nil
}

// ConstantSampler always returns the same value.
type ConstantSampler struct {
	value float64
}

func (s *ConstantSampler) Sample(_ Source) (float64, error) {
	return s.value, nil
}

// UniformIntSampler draws integers uniformly from [a, b].
type UniformIntSampler struct {
	a, b int
}

func (s *UniformIntSampler) Sample(src Source) (float64, error) {
	v, err := UniformInt(src, s.a, s.b)
	return float64(v), err
}

// BernoulliSampler draws 1 with probability p, else 0.
type BernoulliSampler struct {
	p float64
}

func (s *BernoulliSampler) Sample(src Source) (float64, error) {
	v, err := Bernoulli(src, s.p)
	return float64(v), err
}

// ExponentialSampler draws exponential inter-event gaps.
type ExponentialSampler struct {
	rate float64
}

func (s *ExponentialSampler) Sample(src Source) (float64, error) {
	return Exponential(src, s.rate)
}

// ErlangSampler draws the time for k exponential events.
type ErlangSampler struct {
	k    int
	rate float64
}

func (s *ErlangSampler) Sample(src Source) (float64, error) {
	return Erlang(src, s.k, s.rate)
}

// NormalSampler draws from N(mean, stdev).
type NormalSampler struct {
	mean, stdev float64
}

func (s *NormalSampler) Sample(src Source) (float64, error) {
	return Normal(src, s.mean, s.stdev)
}

// CategoricalSampler draws from an ordered outcome table.
type CategoricalSampler struct {
	dist *Categorical[float64]
}

func (s *CategoricalSampler) Sample(src Source) (float64, error) {
	return s.dist.Sample(src)
}

// requireParam checks that all required keys exist in a params map and are finite.
func requireParam(params map[string]float64, keys ...string) error {
	for _, k := range keys {
		v, ok := params[k]
		if !ok {
			return fmt.Errorf("distribution requires parameter %q: %w", k, ErrConfiguration)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("parameter %q must be a finite number, got %v: %w", k, v, ErrConfiguration)
		}
	}
	return nil
}

// requireInt checks that a parameter holds an integral value that fits in an int.
func requireInt(params map[string]float64, key string) (int, error) {
	v := params[key]
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("parameter %q must be an integer, got %v: %w", key, v, ErrConfiguration)
	}
	if v < math.MinInt || v >= math.MaxInt {
		return 0, fmt.Errorf("parameter %q=%v is out of int range: %w", key, v, ErrConfiguration)
	}
	return int(v), nil
}

// NewSampler creates a Sampler from a DistSpec. Parameters are validated here,
// before any draw is made.
func NewSampler(spec DistSpec) (Sampler, error) {
	switch spec.Type {
	case "constant":
		if err := requireParam(spec.Params, "value"); err != nil {
			return nil, err
		}
		return &ConstantSampler{value: spec.Params["value"]}, nil

	case "uniform_int":
		if err := requireParam(spec.Params, "a", "b"); err != nil {
			return nil, err
		}
		a, err := requireInt(spec.Params, "a")
		if err != nil {
			return nil, err
		}
		b, err := requireInt(spec.Params, "b")
		if err != nil {
			return nil, err
		}
		if a > b {
			return nil, fmt.Errorf("uniform_int: a=%d > b=%d: %w", a, b, ErrConfiguration)
		}
		return &UniformIntSampler{a: a, b: b}, nil

	case "bernoulli":
		if err := requireParam(spec.Params, "p"); err != nil {
			return nil, err
		}
		p := spec.Params["p"]
		if p < 0 || p > 1 {
			return nil, fmt.Errorf("bernoulli: p=%v outside [0, 1]: %w", p, ErrConfiguration)
		}
		return &BernoulliSampler{p: p}, nil

	case "exponential":
		if err := requireParam(spec.Params, "rate"); err != nil {
			return nil, err
		}
		if err := checkRate("exponential", spec.Params["rate"]); err != nil {
			return nil, err
		}
		return &ExponentialSampler{rate: spec.Params["rate"]}, nil

	case "erlang":
		if err := requireParam(spec.Params, "k", "rate"); err != nil {
			return nil, err
		}
		k, err := requireInt(spec.Params, "k")
		if err != nil {
			return nil, err
		}
		if k < 1 {
			return nil, fmt.Errorf("erlang: k=%d must be >= 1: %w", k, ErrConfiguration)
		}
		if err := checkRate("erlang", spec.Params["rate"]); err != nil {
			return nil, err
		}
		return &ErlangSampler{k: k, rate: spec.Params["rate"]}, nil

	case "normal":
		if err := requireParam(spec.Params, "mean", "stdev"); err != nil {
			return nil, err
		}
		if spec.Params["stdev"] < 0 {
			return nil, fmt.Errorf("normal: stdev=%v must be non-negative: %w", spec.Params["stdev"], ErrConfiguration)
		}
		return &NormalSampler{mean: spec.Params["mean"], stdev: spec.Params["stdev"]}, nil

	case "categorical":
		dist, err := NewCategorical([]Outcome[float64](spec.Outcomes))
		if err != nil {
			return nil, err
		}
		return &CategoricalSampler{dist: dist}, nil

	default:
		return nil, fmt.Errorf("unknown distribution type %q: %w", spec.Type, ErrConfiguration)
	}
}
