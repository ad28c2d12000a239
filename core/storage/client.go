package storage

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Client defines the storage operations the benchmark measures.
type Client interface {
	// ListObjects returns at most maxKeys entries from the first page of the bucket listing.
	ListObjects(ctx context.Context, bucketName string, maxKeys int) ([]minio.ObjectInfo, error)
	// PutObject uploads size bytes read from reader.
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, size int64) error
	// GetObject downloads an object. The caller must drain and close the body.
	GetObject(ctx context.Context, bucketName, objectName string) (io.ReadCloser, error)
	// RemoveObject deletes an object from a bucket.
	RemoveObject(ctx context.Context, bucketName, objectName string) error
}

// NewClient creates a new Minio client based on the configuration.
func NewClient(cfg Config) (Client, error) {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Bodies are not bounded so that large transfers are timed in full.
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	minioClient, err := minio.New(cfg.Host(), &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure:    cfg.Secure(),
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &minioClientWrapper{client: minioClient}, nil
}

type minioClientWrapper struct {
	client *minio.Client
}

func (c *minioClientWrapper) ListObjects(ctx context.Context, bucketName string, maxKeys int) ([]minio.ObjectInfo, error) {
	// A single ListObjectsV2 request with no delimiter; later pages are never fetched.
	result, err := minio.Core{Client: c.client}.ListObjectsV2(bucketName, "", "", "", "", maxKeys)
	if err != nil {
		return nil, err
	}
	return result.Contents, nil
}

func (c *minioClientWrapper) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, size int64) error {
	_, err := c.client.PutObject(ctx, bucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	return err
}

func (c *minioClientWrapper) GetObject(ctx context.Context, bucketName, objectName string) (io.ReadCloser, error) {
	return c.client.GetObject(ctx, bucketName, objectName, minio.GetObjectOptions{})
}

func (c *minioClientWrapper) RemoveObject(ctx context.Context, bucketName, objectName string) error {
	return c.client.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{})
}
