package benchmark

import "time"

// OperationKind identifies one of the four measured storage operations.
type OperationKind int

const (
	OperationList OperationKind = iota
	OperationPut
	OperationGet
	OperationDelete
)

// OperationKinds lists every kind in report order.
var OperationKinds = []OperationKind{OperationList, OperationPut, OperationGet, OperationDelete}

func (k OperationKind) String() string {
	switch k {
	case OperationList:
		return "ListObjects"
	case OperationPut:
		return "PutObject"
	case OperationGet:
		return "GetObject"
	case OperationDelete:
		return "DeleteObject"
	default:
		return "Unknown"
	}
}

// OperationResult is the outcome of one measured call.
type OperationResult struct {
	// Kind is the operation that was issued.
	Kind OperationKind
	// Elapsed is the wall time from issuing the call to its resolution.
	Elapsed time.Duration
	// Success reports whether the call returned without error.
	Success bool
	// Error holds the error message of a failed call.
	Error string
	// Key is the object key created by a successful Put.
	Key string
}

// LatencyMs returns the elapsed time in fractional milliseconds.
func (r OperationResult) LatencyMs() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

// RunLog is the append-only record of a run plus the keys still awaiting deletion.
type RunLog struct {
	results []OperationResult
	pending []string
	deleted map[string]bool
}

// NewRunLog creates an empty log.
func NewRunLog() *RunLog {
	return &RunLog{deleted: make(map[string]bool)}
}

// Append records a result in call order.
func (l *RunLog) Append(r OperationResult) {
	l.results = append(l.results, r)
}

// Results returns a copy of the recorded results in call order.
func (l *RunLog) Results() []OperationResult {
	out := make([]OperationResult, len(l.results))
	copy(out, l.results)
	return out
}

// Track registers a key created by a successful Put.
func (l *RunLog) Track(key string) {
	l.pending = append(l.pending, key)
}

// MarkDeleted records that a tracked key has been removed.
func (l *RunLog) MarkDeleted(key string) {
	l.deleted[key] = true
}

// Pending returns the tracked keys not yet deleted, in creation order.
func (l *RunLog) Pending() []string {
	var keys []string
	for _, key := range l.pending {
		if !l.deleted[key] {
			keys = append(keys, key)
		}
	}
	return keys
}

// Count returns the number of results of the given kind, successful or not.
func (l *RunLog) Count(kind OperationKind) int {
	n := 0
	for _, r := range l.results {
		if r.Kind == kind {
			n++
		}
	}
	return n
}
