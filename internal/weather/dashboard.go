// internal/weather/dashboard.go
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	commonerrors "bank-support/internal/common/errors"
	"bank-support/internal/common/logger"
)

var ErrMissingSettings = errors.New("api key and bucket name must be set")

// Dashboard fetches, displays and persists weather data for cities.
type Dashboard struct {
	fetcher *Fetcher
	store   *Store
	logger  logger.Logger
}

// NewDashboard wires fetcher and store. API key and bucket are mandatory.
func NewDashboard(config *Config, fetcher *Fetcher, store *Store, log logger.Logger) (*Dashboard, error) {
	if config.APIKey == "" || config.Bucket == "" {
		return nil, ErrMissingSettings
	}
	return &Dashboard{
		fetcher: fetcher,
		store:   store,
		logger:  log,
	}, nil
}

// ProcessCity fetches, validates, displays and saves weather data for one
// city.
func (d *Dashboard) ProcessCity(ctx context.Context, city string) error {
	d.logger.Info("processing weather data", map[string]interface{}{"city": city})

	payload, err := d.fetcher.FetchCity(ctx, city)
	if err != nil {
		d.logger.Warn("could not retrieve weather data", map[string]interface{}{
			"city":  city,
			"error": err.Error(),
		})
		return err
	}

	if err := ValidatePayload(payload); err != nil {
		stdErr := commonerrors.NewWeatherPayloadInvalidError(err.Error())
		d.logger.WithError(stdErr).Error("weather payload rejected", map[string]interface{}{
			"city": city,
		})
		return stdErr
	}

	var report Report
	if err := json.Unmarshal(payload, &report); err != nil {
		return fmt.Errorf("decode report: %w", err)
	}
	d.Display(&report)

	key, err := d.store.Save(ctx, city, payload)
	if err != nil {
		d.logger.Error("saving weather data failed", map[string]interface{}{
			"city":  city,
			"error": err.Error(),
		})
		return err
	}

	d.logger.Info("weather data saved", map[string]interface{}{
		"city": city,
		"key":  key,
	})
	return nil
}

// Display logs the weather report in a user-friendly form.
func (d *Dashboard) Display(report *Report) {
	description := ""
	if len(report.Weather) > 0 {
		description = capitalize(report.Weather[0].Description)
	}

	d.logger.Info("current weather", map[string]interface{}{
		"city":       report.Name,
		"tempF":      report.Main.Temp,
		"feelsLikeF": report.Main.FeelsLike,
		"humidity":   report.Main.Humidity,
		"conditions": description,
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
