package benchmark

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MaxObjectSize is the largest object S3 accepts in a single PUT (5 GiB).
const MaxObjectSize int64 = 5 << 30

// NewObjectKey builds a unique key from the current time and a random suffix.
func NewObjectKey(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%d-%s", prefix, now.UnixMilli(), uuid.NewString())
}

// NewPayload returns size random bytes.
func NewPayload(size int64) ([]byte, error) {
	if size < 0 || size > MaxObjectSize {
		return nil, fmt.Errorf("payload size %d out of range [0, %d]", size, MaxObjectSize)
	}
	data := make([]byte, size)
	if _, err := rand.Read(data); err != nil {
		return nil, fmt.Errorf("failed to generate payload: %w", err)
	}
	return data, nil
}
