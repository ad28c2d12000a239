package storage_test

import (
	"testing"

	"s3bench/core/storage"

	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:        "localhost:9000",
			AccessKeyID:     "testkey",
			SecretAccessKey: "testsecret",
			Bucket:          "test-bucket",
			Region:          "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTP", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:        "http://localhost:9000",
			AccessKeyID:     "testkey",
			SecretAccessKey: "testsecret",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:        "https://s3.amazonaws.com",
			AccessKeyID:     "testkey",
			SecretAccessKey: "testsecret",
			Region:          "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("InvalidEndpoint", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:        "https://bad host:9000",
			AccessKeyID:     "testkey",
			SecretAccessKey: "testsecret",
		}

		client, err := storage.NewClient(cfg)
		assert.Error(t, err)
		assert.Nil(t, client)
	})
}

func TestConfig_Endpoint(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		host     string
		secure   bool
	}{
		{"HTTPS", "https://s3.amazonaws.com", "s3.amazonaws.com", true},
		{"HTTP", "http://localhost:9000", "localhost:9000", false},
		{"NoScheme", "minio.internal:9000", "minio.internal:9000", true},
		{"TrailingSlash", "http://localhost:9000/", "localhost:9000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := storage.Config{Endpoint: tt.endpoint}
			assert.Equal(t, tt.host, c.Host())
			assert.Equal(t, tt.secure, c.Secure())
		})
	}
}
