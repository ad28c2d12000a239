package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"s3bench/core/logger"
	"s3bench/core/storage"
	"s3bench/feature/benchmark"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned by Validate when a required setting is missing or out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Storage holds the S3 endpoint, bucket and credentials.
	Storage storage.Config `mapstructure:"s3"`
	// Benchmark holds the run parameters.
	Benchmark benchmark.Config `mapstructure:"benchmark"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// FlagBindings maps command-line flag names to configuration keys.
var FlagBindings = map[string]string{
	"endpoint":          "s3.endpoint",
	"region":            "s3.region",
	"bucket":            "s3.bucket",
	"access-key-id":     "s3.access_key_id",
	"secret-access-key": "s3.secret_access_key",
	"timeout":           "s3.timeout_seconds",
	"iterations":        "benchmark.iterations",
	"object-size":       "benchmark.object_size",
	"pause":             "benchmark.pause",
	"key-prefix":        "benchmark.key_prefix",
	"log-level":         "log.level",
	"log-format":        "log.format",
}

// LoadConfig loads configuration from flags, environment variables and a .env file.
// Flags that were set win over the environment, which wins over .env and the defaults.
func LoadConfig(path string, flags *pflag.FlagSet) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Missing .env is fine; existing variables are never overridden.
	_ = godotenv.Load(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. S3_BUCKET -> s3.bucket)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range FlagBindings {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks that the configuration is complete enough to start a run.
func (c *Config) Validate() error {
	if c.Storage.Bucket == "" {
		return fmt.Errorf("%w: S3 bucket name is required. Set S3_BUCKET env var or use --bucket flag", ErrInvalidConfig)
	}
	if c.Storage.AccessKeyID == "" || c.Storage.SecretAccessKey == "" {
		return fmt.Errorf("%w: S3 credentials are required. Set S3_ACCESS_KEY_ID and S3_SECRET_ACCESS_KEY env vars or use --access-key-id and --secret-access-key flags", ErrInvalidConfig)
	}
	if c.Benchmark.Iterations < 0 {
		return fmt.Errorf("%w: iterations must not be negative, got %d", ErrInvalidConfig, c.Benchmark.Iterations)
	}
	if c.Benchmark.ObjectSize < 0 {
		return fmt.Errorf("%w: object size must not be negative, got %d", ErrInvalidConfig, c.Benchmark.ObjectSize)
	}
	if c.Benchmark.ObjectSize > benchmark.MaxObjectSize {
		return fmt.Errorf("%w: object size must not exceed %d bytes (single PUT limit), got %d", ErrInvalidConfig, benchmark.MaxObjectSize, c.Benchmark.ObjectSize)
	}
	if c.Benchmark.ListMaxKeys <= 0 {
		return fmt.Errorf("%w: list max keys must be positive, got %d", ErrInvalidConfig, c.Benchmark.ListMaxKeys)
	}
	if c.Benchmark.Pause < 0 {
		return fmt.Errorf("%w: pause must not be negative, got %s", ErrInvalidConfig, c.Benchmark.Pause)
	}
	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
