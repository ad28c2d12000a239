// Package logger provides a structured logging facility based on Zap.
//
// Diagnostics (startup parameters, cleanup warnings, fatal errors) are
// written to stderr so that stdout carries only the benchmark progress and
// summary.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: console (coloured levels, ISO8601 time) or json
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Warn("Failed to clean up object", zap.String("key", key), zap.Error(err))
package logger
