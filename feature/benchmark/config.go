package benchmark

import "time"

// Config holds the run parameters of a benchmark.
type Config struct {
	// Iterations is the number of List/Put/Get/Delete rounds.
	Iterations int `mapstructure:"iterations" default:"10"`
	// ObjectSize is the size in bytes of every uploaded object.
	ObjectSize int64 `mapstructure:"object_size" default:"1024"`
	// Pause is the flat delay after each iteration.
	Pause time.Duration `mapstructure:"pause" default:"100ms"`
	// KeyPrefix is prepended to every generated object key.
	KeyPrefix string `mapstructure:"key_prefix" default:"benchmark"`
	// ListMaxKeys caps the entries requested by each List call.
	ListMaxKeys int `mapstructure:"list_max_keys" default:"10"`
}
