// Package config provides configuration management for the benchmark.
//
// It utilizes Viper for merging command-line flags, environment variables,
// an optional .env file and struct-tag defaults into one immutable Config.
//
// # Configuration Structure
//
// The Config struct is divided into subsections, each mapped to an
// environment prefix:
//   - Storage (S3_*): endpoint, region, bucket, credentials, timeout
//   - Benchmark (BENCHMARK_*): iterations, object size, pause, key prefix
//   - Log (LOG_*): logging level and format
//
// # Precedence
//
// A flag that was set on the command line wins, then the process
// environment, then .env, then the `default` struct tag.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".", cmd.Flags())
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config
