// internal/weather/storage.go
package weather

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	commonerrors "bank-support/internal/common/errors"
	"bank-support/internal/common/logger"
	"bank-support/internal/common/metrics"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Define interface for mocking
type ObjectStore interface {
	HeadBucket(ctx context.Context, input *s3.HeadBucketInput) (*s3.HeadBucketOutput, error)
	CreateBucket(ctx context.Context, input *s3.CreateBucketInput) (*s3.CreateBucketOutput, error)
	PutObject(ctx context.Context, input *s3.PutObjectInput) (*s3.PutObjectOutput, error)
}

// Store persists weather payloads as JSON objects in a bucket, one object per
// fetch, keyed <prefix><city>-<timestamp>.json.
type Store struct {
	config *Config
	s3     ObjectStore
	logger logger.Logger
	now    func() time.Time
}

func NewStore(config *Config, s3Client ObjectStore, log logger.Logger) *Store {
	return &Store{
		config: config,
		s3:     s3Client,
		logger: log.WithFields(map[string]interface{}{"component": "weather-store"}),
		now:    time.Now,
	}
}

// EnsureBucket creates the configured bucket when it does not exist yet.
// Bucket creation assumes us-east-1 semantics; other regions would need a
// location constraint on the create call.
func (s *Store) EnsureBucket(ctx context.Context) error {
	_, err := s.s3.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.config.Bucket),
	})
	if err == nil {
		s.logger.Info("bucket already exists", map[string]interface{}{"bucket": s.config.Bucket})
		return nil
	}

	var notFound *types.NotFound
	if !errors.As(err, &notFound) {
		return fmt.Errorf("head bucket %q: %w", s.config.Bucket, err)
	}

	s.logger.Info("bucket not found, creating it", map[string]interface{}{"bucket": s.config.Bucket})
	if _, err := s.s3.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(s.config.Bucket),
	}); err != nil {
		return commonerrors.NewBucketCreateFailedError(s.config.Bucket, err)
	}

	return nil
}

// Save uploads the payload with an injected timestamp field and returns the
// object key.
func (s *Store) Save(ctx context.Context, city string, payload []byte) (string, error) {
	var data map[string]interface{}
	if err := json.Unmarshal(payload, &data); err != nil {
		return "", fmt.Errorf("decode payload: %w", err)
	}

	timestamp := s.now().Format("20060102-150405")
	data["timestamp"] = timestamp

	body, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}

	key := fmt.Sprintf("%s%s-%s.json", s.config.KeyPrefix, city, timestamp)

	if _, err := s.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	}); err != nil {
		metrics.StorageUploads.WithLabelValues("error").Inc()
		return "", commonerrors.NewStoragePutFailedError(key, err)
	}

	metrics.StorageUploads.WithLabelValues("success").Inc()
	return key, nil
}
