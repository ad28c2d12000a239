package benchmark

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"s3bench/core/storage"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

var (
	passMarker = color.New(color.FgGreen).Sprint("✓")
	failMarker = color.New(color.FgRed).Sprint("✗")
)

// Runner executes the benchmark rounds against a storage client, one call at a time.
type Runner struct {
	client storage.Client
	bucket string
	cfg    Config
	logger *zap.Logger
	out    io.Writer
	log    *RunLog
}

// NewRunner creates a runner. Progress lines are written to out as each call resolves.
func NewRunner(client storage.Client, bucket string, cfg Config, logger *zap.Logger, out io.Writer) *Runner {
	return &Runner{
		client: client,
		bucket: bucket,
		cfg:    cfg,
		logger: logger,
		out:    out,
		log:    NewRunLog(),
	}
}

// Run performs every configured iteration. Operation failures are recorded, never returned.
func (r *Runner) Run(ctx context.Context) *RunLog {
	for i := 0; i < r.cfg.Iterations; i++ {
		fmt.Fprintf(r.out, "Iteration %d/%d\n", i+1, r.cfg.Iterations)
		r.runIteration(ctx)
		r.pause(ctx)
	}
	return r.log
}

func (r *Runner) runIteration(ctx context.Context) {
	r.record(r.list(ctx))

	put := r.put(ctx)
	r.record(put)
	if !put.Success {
		return
	}
	r.log.Track(put.Key)

	// Delete runs even when Get failed so the object is not left behind.
	r.record(r.get(ctx, put.Key))

	del := r.remove(ctx, put.Key)
	r.record(del)
	if del.Success {
		r.log.MarkDeleted(put.Key)
	}
}

// Cleanup deletes every tracked key whose in-iteration Delete did not succeed.
// Failures are logged and otherwise ignored. It returns the number of keys removed and left behind.
func (r *Runner) Cleanup(ctx context.Context) (removed, failed int) {
	pending := r.log.Pending()
	if len(pending) == 0 {
		return 0, 0
	}

	fmt.Fprintln(r.out, "\nCleaning up remaining test objects...")
	for _, key := range pending {
		if err := r.client.RemoveObject(ctx, r.bucket, key); err != nil {
			r.logger.Warn("Failed to clean up object", zap.String("key", key), zap.Error(err))
			failed++
			continue
		}
		r.log.MarkDeleted(key)
		removed++
	}

	r.logger.Debug("Cleanup finished", zap.Int("removed", removed), zap.Int("failed", failed))
	return removed, failed
}

func (r *Runner) list(ctx context.Context) OperationResult {
	return measure(OperationList, func() error {
		_, err := r.client.ListObjects(ctx, r.bucket, r.cfg.ListMaxKeys)
		return err
	})
}

func (r *Runner) put(ctx context.Context) OperationResult {
	key := NewObjectKey(r.cfg.KeyPrefix, time.Now())
	data, err := NewPayload(r.cfg.ObjectSize)
	if err != nil {
		return OperationResult{Kind: OperationPut, Error: err.Error()}
	}

	result := measure(OperationPut, func() error {
		return r.client.PutObject(ctx, r.bucket, key, bytes.NewReader(data), int64(len(data)))
	})
	if result.Success {
		result.Key = key
	}
	return result
}

func (r *Runner) get(ctx context.Context, key string) OperationResult {
	return measure(OperationGet, func() error {
		body, err := r.client.GetObject(ctx, r.bucket, key)
		if err != nil {
			return err
		}
		defer body.Close()

		// The transfer only counts once the body has been read in full.
		_, err = io.Copy(io.Discard, body)
		return err
	})
}

func (r *Runner) remove(ctx context.Context, key string) OperationResult {
	return measure(OperationDelete, func() error {
		return r.client.RemoveObject(ctx, r.bucket, key)
	})
}

func (r *Runner) record(result OperationResult) {
	r.log.Append(result)

	marker := passMarker
	if !result.Success {
		marker = failMarker
	}
	fmt.Fprintf(r.out, "  %s: %.2fms %s\n", result.Kind, result.LatencyMs(), marker)
}

func (r *Runner) pause(ctx context.Context) {
	if r.cfg.Pause <= 0 {
		return
	}
	timer := time.NewTimer(r.cfg.Pause)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// measure times fn from just before it is called until it returns.
func measure(kind OperationKind, fn func() error) OperationResult {
	start := time.Now()
	err := fn()
	result := OperationResult{
		Kind:    kind,
		Elapsed: time.Since(start),
		Success: err == nil,
	}
	if err != nil {
		result.Error = err.Error()
	}
	return result
}
