// internal/support/handler.go
package support

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bank-support/internal/chain"
	commonerrors "bank-support/internal/common/errors"
	"bank-support/internal/common/logger"
	"bank-support/internal/common/metrics"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/google/uuid"
)

const (
	TaskType = "interpret-query"

	emailSubject = "Your support request"
)

var (
	ErrNilInput = errors.New("INPUT_REQUIRED")
)

// Define interfaces for mocking
type EmailSender interface {
	SendEmail(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error)
}

type TopicPublisher interface {
	Publish(ctx context.Context, input *sns.PublishInput) (*sns.PublishOutput, error)
}

type Handler struct {
	config *Config
	logger logger.Logger
	email  EmailSender
	topics TopicPublisher
}

// NewHandler builds the query handler. Email and topic clients may be nil
// when the corresponding feature is disabled in config.
func NewHandler(config *Config, log logger.Logger, email EmailSender, topics TopicPublisher) *Handler {
	return &Handler{
		config: config,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
		email:  email,
		topics: topics,
	}
}

// Execute runs the interpretation chain over the input query and performs
// response delivery and escalation around it. The chain itself is total and
// cannot fail; delivery and escalation failures are isolated, logged and
// reflected in the output rather than returned.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	requestID := input.RequestID
	if requestID == "" {
		requestID = uuid.New().String()
	}

	start := time.Now()
	result := chain.Run(input.Query)
	metrics.ChainRunDuration.Observe(time.Since(start).Seconds())
	metrics.ChainRunsTotal.WithLabelValues(string(result.Category)).Inc()
	for key := range result.Details {
		metrics.DetailsExtracted.WithLabelValues(key).Inc()
	}

	h.logger.Info("query interpreted", map[string]interface{}{
		"requestId":  requestID,
		"category":   result.Category,
		"candidates": len(result.Candidates),
		"details":    len(result.Details),
	})

	output := &Output{
		RequestID:   requestID,
		Intent:      result.Intent,
		Candidates:  result.Candidates,
		Category:    result.Category,
		Details:     result.Details,
		Response:    result.Response,
		ProcessedAt: time.Now().UTC().Format(time.RFC3339),
	}

	output.Delivery = h.deliver(ctx, input, result, requestID)
	h.escalate(ctx, result, requestID)

	return output, nil
}

// deliver sends the synthesized response to the customer by email when
// delivery is enabled and an address is known.
func (h *Handler) deliver(ctx context.Context, input *Input, result *chain.Result, requestID string) *DeliveryStatus {
	if !h.config.EmailEnabled || h.email == nil || input.CustomerEmail == "" {
		metrics.ResponsesDelivered.WithLabelValues(ChannelEmail, StatusDisabled).Inc()
		return &DeliveryStatus{Channel: ChannelEmail, Status: StatusDisabled}
	}

	_, err := h.email.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(h.config.FromEmail),
		Destination: &types.Destination{
			ToAddresses: []string{input.CustomerEmail},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(emailSubject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(result.Response)},
			},
		},
	})
	if err != nil {
		stdErr := commonerrors.NewNotificationSendFailedError(ChannelEmail, err)
		h.logger.WithError(stdErr).Error("email delivery failed", map[string]interface{}{
			"requestId": requestID,
			"retryable": stdErr.Retryable,
		})
		metrics.ResponsesDelivered.WithLabelValues(ChannelEmail, StatusFailed).Inc()
		return &DeliveryStatus{Channel: ChannelEmail, Status: StatusFailed}
	}

	metrics.ResponsesDelivered.WithLabelValues(ChannelEmail, StatusSent).Inc()
	return &DeliveryStatus{Channel: ChannelEmail, Status: StatusSent}
}

// escalate publishes an alert for categories the support team wants a human
// on, such as account access problems.
func (h *Handler) escalate(ctx context.Context, result *chain.Result, requestID string) {
	if !h.config.EscalationEnabled || h.topics == nil {
		return
	}

	escalate := false
	for _, category := range h.config.EscalationCategories {
		if category == result.Category {
			escalate = true
			break
		}
	}
	if !escalate {
		return
	}

	message := fmt.Sprintf("request %s routed to %q: %s", requestID, result.Category, result.Intent)
	_, err := h.topics.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(h.config.EscalationTopicARN),
		Subject:  aws.String("Support escalation: " + string(result.Category)),
		Message:  aws.String(message),
	})
	if err != nil {
		stdErr := commonerrors.NewEscalationPublishFailedError(h.config.EscalationTopicARN, err)
		h.logger.WithError(stdErr).Error("escalation publish failed", map[string]interface{}{
			"requestId": requestID,
			"topic":     h.config.EscalationTopicARN,
			"retryable": stdErr.Retryable,
		})
		return
	}

	h.logger.Info("escalation published", map[string]interface{}{
		"requestId": requestID,
		"category":  result.Category,
	})
}
