// Package paystack is a thin client for the Paystack payment gateway. It
// creates payment intents, polls transaction status, and verifies webhook
// signatures. It holds no state of its own.
package paystack

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MagloireKITIO/ifa-donations/pkg/models"
)

// Gateway defines the operations the donation core needs from the payment provider.
type Gateway interface {
	// CreatePayment creates a payment intent and returns the hosted payment page details.
	CreatePayment(ctx context.Context, req *PaymentRequest) (*PaymentIntent, error)

	// GetTransaction fetches the provider's current view of a transaction.
	GetTransaction(ctx context.Context, reference string) (*Transaction, error)

	// VerifySignature reports whether the webhook signature matches the raw body.
	VerifySignature(body []byte, signature string) bool
}

// PaymentRequest carries the details for creating a payment intent.
// Amount is in minor currency units.
type PaymentRequest struct {
	Amount      int64
	Currency    string
	Reference   string
	CallbackURL string
	Email       string
	Phone       string
	Description string
}

// PaymentIntent is the provider's response to a created payment.
type PaymentIntent struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
	// Raw is the provider's data payload as received, kept for audit.
	Raw string
}

// Transaction is the provider's view of a payment attempt.
type Transaction struct {
	Status   string
	Amount   int64
	Currency string
	Raw      string
}

// Outcome maps the provider transaction status to the internal payment outcome.
func (t *Transaction) Outcome() models.PaymentOutcome {
	switch t.Status {
	case "success":
		return models.OutcomeComplete
	case "failed", "abandoned":
		return models.OutcomeFailed
	default:
		return models.OutcomeUnknown
	}
}

// WebhookEvent is the decoded body of a provider webhook delivery.
type WebhookEvent struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// webhookData is the subset of the event data the core cares about.
type webhookData struct {
	Reference string `json:"reference"`
}

// Reference extracts the transaction reference embedded in the event data.
func (e *WebhookEvent) Reference() (string, error) {
	var data webhookData
	if err := json.Unmarshal(e.Data, &data); err != nil {
		return "", fmt.Errorf("failed to decode webhook event data: %w", err)
	}
	if data.Reference == "" {
		return "", fmt.Errorf("webhook event %q carries no transaction reference", e.Event)
	}
	return data.Reference, nil
}

// Outcome maps the provider event name to the internal payment outcome.
// Events other than charge success/failure are ignored by the core.
func (e *WebhookEvent) Outcome() models.PaymentOutcome {
	switch e.Event {
	case "charge.success":
		return models.OutcomeComplete
	case "charge.failed":
		return models.OutcomeFailed
	default:
		return models.OutcomeUnknown
	}
}

// ParseWebhook decodes a raw webhook body.
func ParseWebhook(body []byte) (*WebhookEvent, error) {
	var event WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("failed to decode webhook body: %w", err)
	}
	return &event, nil
}
