package benchmark

import (
	"math"
	"sort"
)

// Summary holds the latency statistics of one operation kind, in milliseconds.
type Summary struct {
	Kind   OperationKind
	Count  int
	Mean   float64
	Median float64
	P90    float64
	P99    float64
	Min    float64
	Max    float64
}

// Failure is a failed call as listed in the report.
type Failure struct {
	Kind    OperationKind
	Message string
}

// Report is the aggregated outcome of a run.
type Report struct {
	// Operations has one entry per kind with at least one success, in OperationKinds order.
	Operations []Summary
	// Failures lists every failed call in call order.
	Failures []Failure
}

// Summary returns the statistics for kind, if any call of that kind succeeded.
func (r Report) Summary(kind OperationKind) (Summary, bool) {
	for _, s := range r.Operations {
		if s.Kind == kind {
			return s, true
		}
	}
	return Summary{}, false
}

// Aggregate computes per-kind statistics over successful results and collects failures.
// It does not modify the log.
func Aggregate(log *RunLog) Report {
	var report Report
	latencies := make(map[OperationKind][]float64)

	for _, r := range log.results {
		if !r.Success {
			report.Failures = append(report.Failures, Failure{Kind: r.Kind, Message: r.Error})
			continue
		}
		latencies[r.Kind] = append(latencies[r.Kind], r.LatencyMs())
	}

	for _, kind := range OperationKinds {
		samples := latencies[kind]
		if len(samples) == 0 {
			continue
		}
		report.Operations = append(report.Operations, summarize(kind, samples))
	}

	return report
}

func summarize(kind OperationKind, samples []float64) Summary {
	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}

	return Summary{
		Kind:   kind,
		Count:  len(sorted),
		Mean:   sum / float64(len(sorted)),
		Median: Percentile(sorted, 0.5),
		P90:    Percentile(sorted, 0.9),
		P99:    Percentile(sorted, 0.99),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
	}
}

// Percentile returns sorted[floor(n*p)], clamped to the last element.
// sorted must be ascending and non-empty.
func Percentile(sorted []float64, p float64) float64 {
	idx := int(math.Floor(float64(len(sorted)) * p))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return sorted[idx]
}
