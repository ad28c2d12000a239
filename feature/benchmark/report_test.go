package benchmark

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func withoutColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	WriteHeader(&buf, "http://localhost:9000", "bench", Config{Iterations: 3, ObjectSize: 2048})

	want := "Starting S3 benchmark with 3 iterations\n" +
		"Endpoint: http://localhost:9000\n" +
		"Bucket: bench\n" +
		"Object size: 2048 bytes\n" +
		rule + "\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteReport(t *testing.T) {
	withoutColor(t)

	t.Run("WithFailures", func(t *testing.T) {
		report := Report{
			Operations: []Summary{
				{Kind: OperationList, Count: 2, Mean: 12.5, Median: 15, P90: 15, P99: 15, Min: 10, Max: 15},
			},
			Failures: []Failure{
				{Kind: OperationPut, Message: "access denied"},
				{Kind: OperationPut, Message: "slow down"},
			},
		}

		var buf bytes.Buffer
		WriteReport(&buf, report)
		out := buf.String()

		assert.Contains(t, out, "BENCHMARK SUMMARY")
		assert.Contains(t, out, "\nListObjects:\n")
		assert.Contains(t, out, "  Successful operations: 2\n")
		assert.Contains(t, out, "  Average latency: 12.50ms\n")
		assert.Contains(t, out, "  Median latency: 15.00ms\n")
		assert.Contains(t, out, "  P90 latency: 15.00ms\n")
		assert.Contains(t, out, "  P99 latency: 15.00ms\n")
		assert.Contains(t, out, "  Min latency: 10.00ms\n")
		assert.Contains(t, out, "  Max latency: 15.00ms\n")
		assert.NotContains(t, out, "PutObject:\n")
		assert.Contains(t, out, "\nFailures: 2\n  PutObject: access denied\n  PutObject: slow down\n")
	})

	t.Run("NoFailures", func(t *testing.T) {
		report := Report{
			Operations: []Summary{{Kind: OperationGet, Count: 1, Mean: 1, Median: 1, P90: 1, P99: 1, Min: 1, Max: 1}},
		}

		var buf bytes.Buffer
		WriteReport(&buf, report)

		assert.Contains(t, buf.String(), "GetObject:")
		assert.NotContains(t, buf.String(), "Failures")
	})
}
