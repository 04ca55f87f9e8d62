package paystack

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is the production Paystack API endpoint.
	DefaultBaseURL = "https://api.paystack.co"

	requestTimeout = 10 * time.Second
	maxAttempts    = 3
	initialBackoff = 500 * time.Millisecond
)

// APIError represents a rejection from the payment provider.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("paystack: %s (status %d)", e.Message, e.StatusCode)
}

// Temporary reports whether the call is worth retrying. Provider-side 5xx
// responses are; 4xx rejections are not.
func (e *APIError) Temporary() bool {
	return e.StatusCode >= 500
}

// Client implements the Gateway interface against the Paystack HTTP API.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	secretKey     string
	webhookSecret string
}

// NewClient creates a new Client. baseURL may be empty to use the production
// endpoint. webhookSecret may differ from the API secret key depending on
// provider configuration; an empty webhookSecret makes every signature check
// fail, which is the fail-closed deployment choice.
func NewClient(baseURL, secretKey, webhookSecret string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient:    &http.Client{Timeout: requestTimeout},
		baseURL:       baseURL,
		secretKey:     secretKey,
		webhookSecret: webhookSecret,
	}
}

// Make sure we conform to the interface
var _ Gateway = (*Client)(nil)

// envelope is the common wrapper around every Paystack response.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type initializeRequest struct {
	Amount      int64             `json:"amount"`
	Currency    string            `json:"currency,omitempty"`
	Email       string            `json:"email"`
	Reference   string            `json:"reference"`
	CallbackURL string            `json:"callback_url,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type initializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// CreatePayment creates a payment intent via POST /transaction/initialize.
func (c *Client) CreatePayment(ctx context.Context, req *PaymentRequest) (*PaymentIntent, error) {
	body := initializeRequest{
		Amount:      req.Amount,
		Currency:    req.Currency,
		Email:       req.Email,
		Reference:   req.Reference,
		CallbackURL: req.CallbackURL,
	}
	if req.Phone != "" || req.Description != "" {
		body.Metadata = map[string]string{}
		if req.Phone != "" {
			body.Metadata["phone"] = req.Phone
		}
		if req.Description != "" {
			body.Metadata["description"] = req.Description
		}
	}

	data, err := c.do(ctx, http.MethodPost, "/transaction/initialize", body)
	if err != nil {
		return nil, err
	}

	var init initializeData
	if err := json.Unmarshal(data, &init); err != nil {
		return nil, fmt.Errorf("failed to decode initialize response: %w", err)
	}

	return &PaymentIntent{
		AuthorizationURL: init.AuthorizationURL,
		AccessCode:       init.AccessCode,
		Reference:        init.Reference,
		Raw:              string(data),
	}, nil
}

type verifyData struct {
	Status   string `json:"status"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// GetTransaction fetches a transaction's current status via GET /transaction/verify/{reference}.
func (c *Client) GetTransaction(ctx context.Context, reference string) (*Transaction, error) {
	data, err := c.do(ctx, http.MethodGet, "/transaction/verify/"+url.PathEscape(reference), nil)
	if err != nil {
		return nil, err
	}

	var verify verifyData
	if err := json.Unmarshal(data, &verify); err != nil {
		return nil, fmt.Errorf("failed to decode verify response: %w", err)
	}

	return &Transaction{
		Status:   verify.Status,
		Amount:   verify.Amount,
		Currency: verify.Currency,
		Raw:      string(data),
	}, nil
}

// VerifySignature checks the x-paystack-signature header value against the
// HMAC-SHA512 of the raw body. An unconfigured webhook secret fails closed.
func (c *Client) VerifySignature(body []byte, signature string) bool {
	if c.webhookSecret == "" {
		return false
	}
	mac := hmac.New(sha512.New, []byte(c.webhookSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// do executes one API call with retries. Transport errors and provider 5xx
// responses are retried with doubling backoff; 4xx rejections are returned
// immediately.
func (c *Client) do(ctx context.Context, method, path string, body interface{}) (json.RawMessage, error) {
	backoff := initialBackoff
	var lastErr error

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		data, err := c.doOnce(ctx, method, path, body)
		if err == nil {
			return data, nil
		}

		var apiErr *APIError
		if errors.As(err, &apiErr) && !apiErr.Temporary() {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("paystack request failed after %d attempts: %w", maxAttempts, lastErr)
}

func (c *Client) doOnce(ctx context.Context, method, path string, body interface{}) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paystack request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read paystack response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		if resp.StatusCode >= 400 {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return nil, fmt.Errorf("failed to decode paystack response: %w", err)
	}

	if resp.StatusCode >= 400 || !env.Status {
		code := resp.StatusCode
		if code < 400 {
			code = http.StatusBadRequest
		}
		return nil, &APIError{StatusCode: code, Message: env.Message}
	}

	return env.Data, nil
}
