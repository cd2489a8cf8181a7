// Package errors provides standardized error handling for the support
// assistant and the weather dashboard integrations.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeWeatherFetchFailed    ErrorCode = "WEATHER_FETCH_FAILED"
	ErrCodeWeatherAPITimeout     ErrorCode = "WEATHER_API_TIMEOUT"
	ErrCodeWeatherPayloadInvalid ErrorCode = "WEATHER_PAYLOAD_INVALID"

	ErrCodeBucketCreateFailed ErrorCode = "BUCKET_CREATE_FAILED"
	ErrCodeStoragePutFailed   ErrorCode = "STORAGE_PUT_FAILED"

	ErrCodeCacheUnavailable ErrorCode = "CACHE_UNAVAILABLE"

	ErrCodeNotificationSendFailed   ErrorCode = "NOTIFICATION_SEND_FAILED"
	ErrCodeEscalationPublishFailed  ErrorCode = "ESCALATION_PUBLISH_FAILED"
	ErrCodeEmptyCandidateSet        ErrorCode = "EMPTY_CANDIDATE_SET"
	ErrCodeInvalidConfigurationCode ErrorCode = "INVALID_CONFIGURATION"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// Error Constructors
// ==========================

// NewWeatherFetchFailedError creates a retryable weather API error.
func NewWeatherFetchFailedError(city string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeWeatherFetchFailed,
		Message:   "Weather API request failed",
		Details:   fmt.Sprintf("city: %s, error: %s", city, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewWeatherAPITimeoutError creates a retryable weather API timeout error.
func NewWeatherAPITimeoutError(city string) *StandardError {
	return &StandardError{
		Code:      ErrCodeWeatherAPITimeout,
		Message:   "Weather API call timed out",
		Details:   fmt.Sprintf("city: %s", city),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewWeatherPayloadInvalidError creates a non-retryable payload validation error.
func NewWeatherPayloadInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeWeatherPayloadInvalid,
		Message:   "Weather payload failed schema validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewBucketCreateFailedError creates a retryable bucket provisioning error.
func NewBucketCreateFailedError(bucket string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeBucketCreateFailed,
		Message:   "Bucket creation failed",
		Details:   fmt.Sprintf("bucket: %s, error: %s", bucket, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewStoragePutFailedError creates a retryable object upload error.
func NewStoragePutFailedError(key string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStoragePutFailed,
		Message:   "Object upload failed",
		Details:   fmt.Sprintf("key: %s, error: %s", key, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCacheUnavailableError creates a non-retryable cache error; callers are
// expected to degrade to a direct fetch instead of retrying.
func NewCacheUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCacheUnavailable,
		Message:   "Cache unavailable",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotificationSendFailedError creates a retryable delivery error.
func NewNotificationSendFailedError(channel string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationSendFailed,
		Message:   "Notification delivery failed",
		Details:   fmt.Sprintf("channel: %s, error: %s", channel, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewEscalationPublishFailedError creates a retryable SNS publish error.
func NewEscalationPublishFailedError(topic string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeEscalationPublishFailed,
		Message:   "Escalation publish failed",
		Details:   fmt.Sprintf("topic: %s, error: %s", topic, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidConfigurationError creates a non-retryable configuration error.
func NewInvalidConfigurationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidConfigurationCode,
		Message:   "Invalid configuration",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// Utility Functions
// ==========================

// GetRetryCount returns the recommended retry count per error code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeWeatherFetchFailed,
		ErrCodeBucketCreateFailed,
		ErrCodeStoragePutFailed,
		ErrCodeNotificationSendFailed,
		ErrCodeEscalationPublishFailed:
		return 3

	case ErrCodeWeatherAPITimeout:
		return 2

	default:
		return 0
	}
}

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "WEATHER"):
		return "WEATHER"
	case strings.Contains(codeStr, "BUCKET") || strings.Contains(codeStr, "STORAGE"):
		return "STORAGE"
	case strings.Contains(codeStr, "CACHE"):
		return "CACHE"
	case strings.Contains(codeStr, "NOTIFICATION") || strings.Contains(codeStr, "ESCALATION"):
		return "NOTIFICATION"
	case strings.Contains(codeStr, "CANDIDATE"):
		return "PIPELINE"
	default:
		return "OTHER"
	}
}
