package mocks

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of storage.Client
type Client struct {
	mock.Mock
}

func (m *Client) ListObjects(ctx context.Context, bucketName string, maxKeys int) ([]minio.ObjectInfo, error) {
	args := m.Called(ctx, bucketName, maxKeys)
	if objects, ok := args.Get(0).([]minio.ObjectInfo); ok {
		return objects, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, size int64) error {
	args := m.Called(ctx, bucketName, objectName, reader, size)
	return args.Error(0)
}

func (m *Client) GetObject(ctx context.Context, bucketName, objectName string) (io.ReadCloser, error) {
	args := m.Called(ctx, bucketName, objectName)
	if obj, ok := args.Get(0).(io.ReadCloser); ok {
		return obj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) RemoveObject(ctx context.Context, bucketName, objectName string) error {
	args := m.Called(ctx, bucketName, objectName)
	return args.Error(0)
}
