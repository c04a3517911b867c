package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"text/tabwriter"
)

// Summary holds the derived aggregates of one metric.
type Summary struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Stdev float64 `json:"stdev"`
	Min   float64 `json:"min"`
	P50   float64 `json:"p50"`
	P95   float64 `json:"p95"`
	Max   float64 `json:"max"`
}

// MarshalJSON encodes non-finite aggregates as null, since JSON has no
// representation for NaN or infinities.
func (sum Summary) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name  string   `json:"name"`
		Count int      `json:"count"`
		Mean  *float64 `json:"mean"`
		Stdev *float64 `json:"stdev"`
		Min   *float64 `json:"min"`
		P50   *float64 `json:"p50"`
		P95   *float64 `json:"p95"`
		Max   *float64 `json:"max"`
	}{
		Name:  sum.Name,
		Count: sum.Count,
		Mean:  finite(sum.Mean),
		Stdev: finite(sum.Stdev),
		Min:   finite(sum.Min),
		P50:   finite(sum.P50),
		P95:   finite(sum.P95),
		Max:   finite(sum.Max),
	})
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// Summary computes the aggregates for name.
func (s *Stats) Summary(name string) (Summary, error) {
	values, err := s.lookup(name)
	if err != nil {
		return Summary{}, err
	}
	sum := Summary{Name: name, Count: len(values)}
	// lookup succeeded, so none of the queries below can fail
	sum.Mean, _ = s.Mean(name)
	sum.Stdev, _ = s.Stdev(name)
	sum.Min, _ = s.Min(name)
	sum.Max, _ = s.Max(name)
	sum.P50, _ = s.Percentile(name, 50)
	sum.P95, _ = s.Percentile(name, 95)
	return sum, nil
}

// Summaries returns one Summary per metric, in first-record order.
func (s *Stats) Summaries() []Summary {
	out := make([]Summary, 0, len(s.names))
	for _, name := range s.names {
		sum, err := s.Summary(name)
		if err != nil {
			continue
		}
		out = append(out, sum)
	}
	return out
}

// MarshalJSON encodes the per-metric summaries, keeping name order.
func (s *Stats) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Metrics []Summary `json:"metrics"`
	}{Metrics: s.Summaries()})
}

// Print writes a table of the per-metric summaries to w.
func (s *Stats) Print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "=== Simulation Stats ===")
	fmt.Fprintln(tw, "metric\tcount\tmean\tstdev\tmin\tp50\tp95\tmax")
	for _, sum := range s.Summaries() {
		fmt.Fprintf(tw, "%s\t%d\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n",
			sum.Name, sum.Count, sum.Mean, sum.Stdev, sum.Min, sum.P50, sum.P95, sum.Max)
	}
	return tw.Flush()
}
