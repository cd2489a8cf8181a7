// internal/weather/storage_test.go
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"bank-support/internal/common/logger"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Mock Object Store
// ==========================

type MockObjectStore struct {
	HeadBucketFunc   func(ctx context.Context, input *s3.HeadBucketInput) (*s3.HeadBucketOutput, error)
	CreateBucketFunc func(ctx context.Context, input *s3.CreateBucketInput) (*s3.CreateBucketOutput, error)
	PutObjectFunc    func(ctx context.Context, input *s3.PutObjectInput) (*s3.PutObjectOutput, error)

	createCalls []s3.CreateBucketInput
	putCalls    []s3.PutObjectInput
}

func (m *MockObjectStore) HeadBucket(ctx context.Context, input *s3.HeadBucketInput) (*s3.HeadBucketOutput, error) {
	if m.HeadBucketFunc != nil {
		return m.HeadBucketFunc(ctx, input)
	}
	return &s3.HeadBucketOutput{}, nil
}

func (m *MockObjectStore) CreateBucket(ctx context.Context, input *s3.CreateBucketInput) (*s3.CreateBucketOutput, error) {
	m.createCalls = append(m.createCalls, *input)
	if m.CreateBucketFunc != nil {
		return m.CreateBucketFunc(ctx, input)
	}
	return &s3.CreateBucketOutput{}, nil
}

func (m *MockObjectStore) PutObject(ctx context.Context, input *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
	m.putCalls = append(m.putCalls, *input)
	if m.PutObjectFunc != nil {
		return m.PutObjectFunc(ctx, input)
	}
	return &s3.PutObjectOutput{}, nil
}

func createStoreConfig() *Config {
	return &Config{
		Bucket:    "test-bucket",
		KeyPrefix: "weather-data/",
	}
}

// ==========================
// EnsureBucket Tests
// ==========================

func TestStore_EnsureBucket_AlreadyExists(t *testing.T) {
	mockStore := &MockObjectStore{}
	store := NewStore(createStoreConfig(), mockStore, logger.NewTestLogger(t))

	err := store.EnsureBucket(context.Background())

	require.NoError(t, err)
	assert.Empty(t, mockStore.createCalls)
}

func TestStore_EnsureBucket_CreatesMissingBucket(t *testing.T) {
	mockStore := &MockObjectStore{
		HeadBucketFunc: func(ctx context.Context, input *s3.HeadBucketInput) (*s3.HeadBucketOutput, error) {
			return nil, &types.NotFound{}
		},
	}
	store := NewStore(createStoreConfig(), mockStore, logger.NewTestLogger(t))

	err := store.EnsureBucket(context.Background())

	require.NoError(t, err)
	require.Len(t, mockStore.createCalls, 1)
	assert.Equal(t, "test-bucket", *mockStore.createCalls[0].Bucket)
}

func TestStore_EnsureBucket_HeadErrorPropagates(t *testing.T) {
	mockStore := &MockObjectStore{
		HeadBucketFunc: func(ctx context.Context, input *s3.HeadBucketInput) (*s3.HeadBucketOutput, error) {
			return nil, errors.New("access denied")
		},
	}
	store := NewStore(createStoreConfig(), mockStore, logger.NewTestLogger(t))

	err := store.EnsureBucket(context.Background())

	assert.Error(t, err)
	assert.Empty(t, mockStore.createCalls)
}

func TestStore_EnsureBucket_CreateFails(t *testing.T) {
	mockStore := &MockObjectStore{
		HeadBucketFunc: func(ctx context.Context, input *s3.HeadBucketInput) (*s3.HeadBucketOutput, error) {
			return nil, &types.NotFound{}
		},
		CreateBucketFunc: func(ctx context.Context, input *s3.CreateBucketInput) (*s3.CreateBucketOutput, error) {
			return nil, errors.New("bucket name taken")
		},
	}
	store := NewStore(createStoreConfig(), mockStore, logger.NewTestLogger(t))

	err := store.EnsureBucket(context.Background())

	assert.Error(t, err)
}

// ==========================
// Save Tests
// ==========================

func TestStore_Save_KeyAndTimestamp(t *testing.T) {
	mockStore := &MockObjectStore{}
	store := NewStore(createStoreConfig(), mockStore, logger.NewTestLogger(t))
	store.now = func() time.Time {
		return time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)
	}

	key, err := store.Save(context.Background(), "Seattle", []byte(testPayload))

	require.NoError(t, err)
	assert.Equal(t, "weather-data/Seattle-20240102-150405.json", key)

	require.Len(t, mockStore.putCalls, 1)
	put := mockStore.putCalls[0]
	assert.Equal(t, "test-bucket", *put.Bucket)
	assert.Equal(t, key, *put.Key)
	assert.Equal(t, "application/json", *put.ContentType)

	body, err := io.ReadAll(put.Body)
	require.NoError(t, err)
	var stored map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &stored))
	assert.Equal(t, "20240102-150405", stored["timestamp"])
	assert.Equal(t, "London", stored["name"])
}

func TestStore_Save_InvalidPayload(t *testing.T) {
	mockStore := &MockObjectStore{}
	store := NewStore(createStoreConfig(), mockStore, logger.NewTestLogger(t))

	_, err := store.Save(context.Background(), "Seattle", []byte("not json"))

	assert.Error(t, err)
	assert.Empty(t, mockStore.putCalls)
}

func TestStore_Save_PutFails(t *testing.T) {
	mockStore := &MockObjectStore{
		PutObjectFunc: func(ctx context.Context, input *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
			return nil, errors.New("slow down")
		},
	}
	store := NewStore(createStoreConfig(), mockStore, logger.NewTestLogger(t))

	_, err := store.Save(context.Background(), "Seattle", []byte(testPayload))

	assert.Error(t, err)
}
