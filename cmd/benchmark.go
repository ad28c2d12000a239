package cmd

import (
	"context"
	"fmt"
	"io"

	"s3bench/core/config"
	"s3bench/core/logger"
	"s3bench/core/storage"
	"s3bench/feature/benchmark"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runBenchmark(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".", cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Nothing may reach the network before this passes.
	if err := cfg.Validate(); err != nil {
		return err
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}

	runAndReport(cmd.Context(), client, cfg, logg, cmd.OutOrStdout())
	return nil
}

// runAndReport drives the runner, prints the summary and sweeps leftover objects.
func runAndReport(ctx context.Context, client storage.Client, cfg *config.Config, logg *zap.Logger, out io.Writer) {
	logg.Debug("Starting benchmark",
		zap.String("endpoint", cfg.Storage.Endpoint),
		zap.String("region", cfg.Storage.Region),
		zap.String("bucket", cfg.Storage.Bucket),
		zap.Int("iterations", cfg.Benchmark.Iterations),
		zap.Int64("object_size", cfg.Benchmark.ObjectSize),
	)

	benchmark.WriteHeader(out, cfg.Storage.Endpoint, cfg.Storage.Bucket, cfg.Benchmark)

	runner := benchmark.NewRunner(client, cfg.Storage.Bucket, cfg.Benchmark, logg, out)
	log := runner.Run(ctx)
	report := benchmark.Aggregate(log)
	benchmark.WriteReport(out, report)

	removed, failed := runner.Cleanup(ctx)
	if failed > 0 {
		logg.Warn("Some benchmark objects were left in the bucket", zap.Int("remaining", failed))
	}

	logg.Debug("Benchmark completed",
		zap.Int("results", len(log.Results())),
		zap.Int("failures", len(report.Failures)),
		zap.Int("swept", removed),
	)
}
