package webhook

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/MagloireKITIO/ifa-donations/pkg/api"
	"github.com/MagloireKITIO/ifa-donations/pkg/models"
	"github.com/MagloireKITIO/ifa-donations/pkg/paystack"
	"github.com/MagloireKITIO/ifa-donations/pkg/reconcile"
)

// signatureHeader is the header Paystack signs webhook deliveries with.
const signatureHeader = "x-paystack-signature"

// maxBodyBytes caps webhook bodies; provider payloads are a few KB.
const maxBodyBytes = 1 << 20

// WebhookHandler holds the dependencies for gateway webhook ingestion.
type WebhookHandler struct {
	Gateway paystack.Gateway
	Engine  *reconcile.Engine
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(gateway paystack.Gateway, engine *reconcile.Engine) *WebhookHandler {
	return &WebhookHandler{Gateway: gateway, Engine: engine}
}

// HandlePaystackWebhook verifies the delivery's signature and feeds the event
// through the reconciliation engine.
//
// The gateway delivers at least once and retries on non-2xx responses, so the
// handler acknowledges with 200 in every case once the payload has been read:
// a bad signature gets an error body but no retry invitation, and
// reconciliation failures are logged rather than surfaced, to avoid
// uncontrolled retry storms from the provider.
func (h *WebhookHandler) HandlePaystackWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	signature := r.Header.Get(signatureHeader)
	if !h.Gateway.VerifySignature(body, signature) {
		slog.Warn("webhook signature verification failed, discarding payload", "remote_addr", r.RemoteAddr)
		respond(w, api.Error{Error: "Invalid signature"})
		return
	}

	event, err := paystack.ParseWebhook(body)
	if err != nil {
		slog.Error("failed to parse webhook payload", "error", err)
		respond(w, map[string]string{"status": "ignored"})
		return
	}

	outcome := event.Outcome()
	if outcome == models.OutcomeUnknown {
		slog.Debug("ignoring webhook event", "event", event.Event)
		respond(w, map[string]string{"status": "ignored"})
		return
	}

	reference, err := event.Reference()
	if err != nil {
		slog.Error("webhook event has no usable reference", "event", event.Event, "error", err)
		respond(w, map[string]string{"status": "ignored"})
		return
	}

	if err := h.Engine.Reconcile(r.Context(), reference, outcome, string(body)); err != nil {
		slog.Error("webhook reconciliation failed", "reference", reference, "outcome", outcome, "error", err)
	}

	respond(w, map[string]string{"status": "ok"})
}

func respond(w http.ResponseWriter, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to write webhook response", "error", err)
	}
}
