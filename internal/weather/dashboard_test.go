// internal/weather/dashboard_test.go
package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"bank-support/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDashboard_MissingSettings(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
	}{
		{name: "missing API key", config: &Config{Bucket: "test-bucket"}},
		{name: "missing bucket", config: &Config{APIKey: "test-key"}},
		{name: "missing both", config: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDashboard(tt.config, nil, nil, logger.NewTestLogger(t))
			assert.ErrorIs(t, err, ErrMissingSettings)
		})
	}
}

func TestDashboard_ProcessCity_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testPayload))
	}))
	defer server.Close()

	config := createFetcherConfig(server.URL)
	log := logger.NewTestLogger(t)
	mockStore := &MockObjectStore{}

	fetcher := NewFetcher(config, nil, log)
	store := NewStore(config, mockStore, log)
	dashboard, err := NewDashboard(config, fetcher, store, log)
	require.NoError(t, err)

	err = dashboard.ProcessCity(context.Background(), "London")

	require.NoError(t, err)
	require.Len(t, mockStore.putCalls, 1)
	assert.Contains(t, *mockStore.putCalls[0].Key, "weather-data/London-")
}

func TestDashboard_ProcessCity_RejectsInvalidPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
	}))
	defer server.Close()

	config := createFetcherConfig(server.URL)
	log := logger.NewTestLogger(t)
	mockStore := &MockObjectStore{}

	fetcher := NewFetcher(config, nil, log)
	store := NewStore(config, mockStore, log)
	dashboard, err := NewDashboard(config, fetcher, store, log)
	require.NoError(t, err)

	err = dashboard.ProcessCity(context.Background(), "London")

	assert.Error(t, err)
	assert.Empty(t, mockStore.putCalls)
}

func TestDashboard_ProcessCity_FetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	config := createFetcherConfig(server.URL)
	config.MaxRetries = 0
	log := logger.NewTestLogger(t)
	mockStore := &MockObjectStore{}

	fetcher := NewFetcher(config, nil, log)
	store := NewStore(config, mockStore, log)
	dashboard, err := NewDashboard(config, fetcher, store, log)
	require.NoError(t, err)

	err = dashboard.ProcessCity(context.Background(), "Nowhere")

	assert.ErrorIs(t, err, ErrFetchFailed)
	assert.Empty(t, mockStore.putCalls)
}
