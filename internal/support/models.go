// internal/support/models.go
package support

import "bank-support/internal/chain"

type Input struct {
	RequestID     string `json:"requestId,omitempty"`
	Query         string `json:"query"`
	CustomerEmail string `json:"customerEmail,omitempty"`
}

// Output carries the five stage outputs of the interpretation chain plus
// request bookkeeping.
type Output struct {
	RequestID   string           `json:"requestId"`
	Intent      string           `json:"intent"`
	Candidates  []chain.Category `json:"candidates"`
	Category    chain.Category   `json:"category"`
	Details     chain.Details    `json:"details"`
	Response    string           `json:"response"`
	Delivery    *DeliveryStatus  `json:"delivery,omitempty"`
	ProcessedAt string           `json:"processedAt"` // ISO 8601
}

// StageOutputs returns the five chain outputs in stage order.
func (o *Output) StageOutputs() []interface{} {
	return []interface{}{o.Intent, o.Candidates, o.Category, o.Details, o.Response}
}

type DeliveryStatus struct {
	Channel string `json:"channel"`
	Status  string `json:"status"` // "sent", "failed", "disabled"
}

// Delivery channels
const (
	ChannelEmail = "email"
)

// Delivery statuses
const (
	StatusSent     = "sent"
	StatusFailed   = "failed"
	StatusDisabled = "disabled"
)
