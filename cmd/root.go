package cmd

import (
	"fmt"
	"os"
	"time"

	"s3bench/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd runs the benchmark; it has no subcommands.
var RootCmd = &cobra.Command{
	Use:   "s3bench",
	Short: "S3 latency benchmark",
	Long: `s3bench measures the latency of ListObjects, PutObject, GetObject and
DeleteObject against an S3-compatible endpoint and prints summary statistics.

Every flag falls back to an environment variable (S3_ENDPOINT, S3_REGION,
S3_BUCKET, S3_ACCESS_KEY_ID, S3_SECRET_ACCESS_KEY, BENCHMARK_ITERATIONS, ...),
which may also be provided through a .env file in the working directory.`,
	Example: `  export S3_BUCKET=my-test-bucket
  export S3_ACCESS_KEY_ID=your-access-key
  export S3_SECRET_ACCESS_KEY=your-secret-key
  s3bench

  s3bench --bucket my-test-bucket --access-key-id KEY --secret-access-key SECRET \
    --iterations 20 --object-size 2048`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBenchmark,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with ISO8601 timestamps, same as an interactive run.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	flags := RootCmd.Flags()
	flags.String("endpoint", "https://s3.amazonaws.com", "S3 endpoint URL (env S3_ENDPOINT)")
	flags.String("region", "us-east-1", "S3 region (env S3_REGION)")
	flags.String("bucket", "", "S3 bucket name, required (env S3_BUCKET)")
	flags.String("access-key-id", "", "S3 access key ID, required (env S3_ACCESS_KEY_ID)")
	flags.String("secret-access-key", "", "S3 secret access key, required (env S3_SECRET_ACCESS_KEY)")
	flags.Int("iterations", 10, "Number of benchmark iterations")
	flags.Int64("object-size", 1024, "Size of test objects in bytes")
	flags.Int("timeout", 30, "Connect and response-header timeout in seconds")
	flags.Duration("pause", 100*time.Millisecond, "Delay between iterations")
	flags.String("key-prefix", "benchmark", "Prefix of generated object keys")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.String("log-format", "console", "Log format: console or json")
	flags.SortFlags = false
}
