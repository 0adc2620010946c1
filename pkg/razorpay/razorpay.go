package razorpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://api.razorpay.com"

// Config holds the gateway credentials and client settings.
type Config struct {
	KeyID     string
	KeySecret string
	BaseURL   string        // defaults to the production API
	Timeout   time.Duration // per-request timeout, defaults to 30s
}

// Client talks to the Razorpay Orders API. Order creation is retried once on
// transport failure; signature verification is purely local.
type Client struct {
	http      *resty.Client
	keySecret string
}

// Order is the gateway-side order record. Amount is in minor currency units
// (paise for INR).
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// NewClient creates a new gateway client.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetBasicAuth(cfg.KeyID, cfg.KeySecret).
		SetRetryCount(1). // single retry for transient network failure
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		http:      httpClient,
		keySecret: cfg.KeySecret,
	}
}

// CreateOrder opens a gateway order for amount in minor currency units.
func (c *Client) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*Order, error) {
	requestBody := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}

	var order Order
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&order).
		Post("/v1/orders")

	if err != nil {
		return nil, fmt.Errorf("razorpay order request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("razorpay order request failed with status %d: %s", resp.StatusCode(), string(resp.Body()))
	}
	if order.ID == "" {
		return nil, fmt.Errorf("order id missing in razorpay response: %s", string(resp.Body()))
	}

	return &order, nil
}

// VerifySignature checks the gateway's payment confirmation: an HMAC-SHA256
// over "<orderID>|<paymentID>" keyed with the API secret, hex encoded. The
// comparison is constant time.
func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
