// Package benchmark measures the latency of object storage operations.
//
// A Runner performs a fixed number of iterations against a storage.Client.
// Each iteration is strictly sequential:
//
//  1. ListObjects (always)
//  2. PutObject with a fresh random payload and a unique key
//  3. GetObject then DeleteObject on that key, only if the Put succeeded
//  4. a flat pause before the next iteration
//
// Every call is timed individually and recorded in a RunLog, success or not,
// and a progress line is written as soon as it resolves. Failures never stop
// the run. Keys whose Delete did not succeed are swept by Cleanup.
//
// # Statistics
//
// Aggregate turns a RunLog into a Report: for each operation kind with at
// least one success it gives the count, mean, median, p90, p99, min and max
// latency. Percentiles use nearest-rank-down selection (index floor(n*p),
// clamped to the last sample). Failed calls are excluded from latency
// figures and listed separately in call order.
//
// # Usage
//
//	runner := benchmark.NewRunner(client, cfg.Storage.Bucket, cfg.Benchmark, logg, os.Stdout)
//	log := runner.Run(ctx)
//	benchmark.WriteReport(os.Stdout, benchmark.Aggregate(log))
//	runner.Cleanup(ctx)
package benchmark
