package storage

import "strings"

// Config holds configuration for the S3-compatible endpoint.
type Config struct {
	// Endpoint is the URL of the storage service. The scheme selects TLS.
	Endpoint string `mapstructure:"endpoint" default:"https://s3.amazonaws.com"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:"us-east-1"`
	// Bucket is the bucket the benchmark objects are written to.
	Bucket string `mapstructure:"bucket" default:""`
	// AccessKeyID is the access key ID for authentication.
	AccessKeyID string `mapstructure:"access_key_id" default:""`
	// SecretAccessKey is the secret access key for authentication.
	SecretAccessKey string `mapstructure:"secret_access_key" default:""`
	// TimeoutSeconds bounds connection setup and time to first response byte.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Host returns the endpoint without its scheme, as minio expects it.
func (c Config) Host() string {
	host := strings.TrimPrefix(c.Endpoint, "http://")
	host = strings.TrimPrefix(host, "https://")
	return strings.TrimSuffix(host, "/")
}

// Secure reports whether the endpoint should be reached over TLS.
// Only an explicit http:// scheme disables it.
func (c Config) Secure() bool {
	return !strings.HasPrefix(c.Endpoint, "http://")
}
