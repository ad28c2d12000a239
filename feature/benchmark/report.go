package benchmark

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var rule = strings.Repeat("=", 50)

// WriteHeader prints the run parameters before the first iteration.
func WriteHeader(w io.Writer, endpoint, bucket string, cfg Config) {
	fmt.Fprintf(w, "Starting S3 benchmark with %d iterations\n", cfg.Iterations)
	fmt.Fprintf(w, "Endpoint: %s\n", endpoint)
	fmt.Fprintf(w, "Bucket: %s\n", bucket)
	fmt.Fprintf(w, "Object size: %d bytes\n", cfg.ObjectSize)
	fmt.Fprintln(w, rule)
}

// WriteReport prints the per-operation statistics followed by the failures, if any.
func WriteReport(w io.Writer, report Report) {
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintln(w, color.New(color.Bold).Sprint("BENCHMARK SUMMARY"))
	fmt.Fprintln(w, rule)

	for _, s := range report.Operations {
		fmt.Fprintf(w, "\n%s:\n", s.Kind)
		fmt.Fprintf(w, "  Successful operations: %d\n", s.Count)
		fmt.Fprintf(w, "  Average latency: %.2fms\n", s.Mean)
		fmt.Fprintf(w, "  Median latency: %.2fms\n", s.Median)
		fmt.Fprintf(w, "  P90 latency: %.2fms\n", s.P90)
		fmt.Fprintf(w, "  P99 latency: %.2fms\n", s.P99)
		fmt.Fprintf(w, "  Min latency: %.2fms\n", s.Min)
		fmt.Fprintf(w, "  Max latency: %.2fms\n", s.Max)
	}

	if len(report.Failures) == 0 {
		return
	}

	fmt.Fprintf(w, "\n%s\n", color.New(color.FgRed).Sprintf("Failures: %d", len(report.Failures)))
	for _, f := range report.Failures {
		fmt.Fprintf(w, "  %s: %s\n", f.Kind, f.Message)
	}
}
