// internal/weather/fetcher.go
package weather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bank-support/internal/common/database"
	commonerrors "bank-support/internal/common/errors"
	commonhttp "bank-support/internal/common/http"
	"bank-support/internal/common/logger"
	"bank-support/internal/common/metrics"

	"github.com/redis/go-redis/v9"
)

var (
	ErrFetchFailed = errors.New("WEATHER_FETCH_FAILED")
	ErrAPITimeout  = errors.New("WEATHER_API_TIMEOUT")
)

// Fetcher retrieves current-weather payloads from the OpenWeather API with a
// Redis read-through cache in front.
type Fetcher struct {
	config *Config
	client *commonhttp.Client
	cache  *database.RedisClient
	logger logger.Logger
}

// NewFetcher builds a Fetcher. The cache may be nil; lookups then go straight
// to the API.
func NewFetcher(config *Config, cache *database.RedisClient, log logger.Logger) *Fetcher {
	return &Fetcher{
		config: config,
		client: commonhttp.NewClient(config.Timeout),
		cache:  cache,
		logger: log.WithFields(map[string]interface{}{"component": "weather-fetcher"}),
	}
}

func cacheKey(city string) string {
	return "weather:" + strings.ToLower(city)
}

// FetchCity returns the raw weather payload for a city, serving from cache
// when possible. Cache failures degrade to a direct fetch; they never fail
// the call.
func (f *Fetcher) FetchCity(ctx context.Context, city string) ([]byte, error) {
	key := cacheKey(city)

	if f.cache != nil {
		cached, err := f.cache.Get(ctx, key)
		switch {
		case err == nil:
			metrics.CacheLookups.WithLabelValues("hit").Inc()
			return []byte(cached), nil
		case errors.Is(err, redis.Nil):
			metrics.CacheLookups.WithLabelValues("miss").Inc()
		default:
			metrics.CacheLookups.WithLabelValues("error").Inc()
			f.logger.WithError(commonerrors.NewCacheUnavailableError(err)).Warn("cache lookup failed", map[string]interface{}{
				"city": city,
			})
		}
	}

	payload, err := f.fetch(ctx, city)
	if err != nil {
		metrics.WeatherFetches.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.WeatherFetches.WithLabelValues("success").Inc()

	if f.cache != nil {
		if err := f.cache.Set(ctx, key, payload, f.config.CacheTTL); err != nil {
			f.logger.Warn("cache write failed", map[string]interface{}{
				"city":  city,
				"error": err.Error(),
			})
		}
	}

	return payload, nil
}

func (f *Fetcher) fetch(ctx context.Context, city string) ([]byte, error) {
	params := url.Values{
		"q":     {city},
		"appid": {f.config.APIKey},
		"units": {f.config.Units},
	}
	endpoint := f.config.BaseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	start := time.Now()
	defer func() {
		metrics.WeatherFetchDuration.Observe(time.Since(start).Seconds())
	}()

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt <= f.config.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ErrAPITimeout
			}
		}

		resp, lastErr = f.client.Do(req)

		if ctx.Err() != nil ||
			errors.Is(lastErr, context.DeadlineExceeded) ||
			errors.Is(lastErr, context.Canceled) {
			return nil, ErrAPITimeout
		}

		if lastErr == nil {
			if resp.StatusCode == http.StatusOK {
				break
			}
			resp.Body.Close()
			lastErr = fmt.Errorf("status %d", resp.StatusCode)
			resp = nil
		}
	}

	if lastErr != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, ErrAPITimeout
		}
		return nil, fmt.Errorf("%w: city %q: %v", ErrFetchFailed, city, lastErr)
	}

	if resp == nil {
		return nil, fmt.Errorf("%w: no successful response after retries", ErrFetchFailed)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrFetchFailed, err)
	}

	return payload, nil
}
