package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pajorstaer/rankshop/pkg/clients"
	"go.uber.org/zap"
)

const (
	verifyTimeout = time.Second * 10
	poolSize      = 5
)

var (
	ErrVerificationFailed = errors.New("payment verification failed")
	ErrUnexpectedStatus   = errors.New("unexpected status from payment provider")
)

// Response is the payment provider's verification payload. Any status other
// than "success" means the slip is not redeemable.
type Response struct {
	Status string `json:"status"`
	Amount int    `json:"amount"`
}

// Client verifies TrueWallet gift links against the configured provider. All
// outbound calls share a fixed-size worker pool, so a burst of topups cannot
// flood the provider.
type Client struct {
	baseURL    string
	apiKey     string
	phone      string
	client     clients.HTTPClientI
	workerPool WorkerPoolI
}

func NewClient(baseURL, apiKey, phone string, client clients.HTTPClientI) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		phone:      phone,
		client:     client,
		workerPool: NewWorkerPool(poolSize),
	}
}

// Verify checks slipURL with the provider and returns the verified amount.
// The call is bounded by verifyTimeout and is never retried; the transport
// layer decides whether to ask the user to resubmit.
func (c *Client) Verify(ctx context.Context, slipURL string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, verifyTimeout)
	defer cancel()

	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("url", slipURL)
	params.Set("phone", c.phone)
	reqURL := c.baseURL + "/api/truewallet.php?" + params.Encode()

	var (
		statusCode int
		respBody   []byte
		reqErr     error
	)
	done := make(chan struct{})

	err := c.workerPool.AddTask(ctx, func() error {
		defer close(done)
		statusCode, respBody, _, reqErr = c.client.Get(reqURL, nil)
		return nil
	})
	if err != nil {
		return 0, err
	}

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-done:
	}

	if reqErr != nil {
		zap.L().Warn("payment provider request failed", zap.Error(reqErr))
		return 0, fmt.Errorf("%w: %w", ErrVerificationFailed, reqErr)
	}
	if statusCode != http.StatusOK {
		zap.L().Warn("payment provider returned unexpected status", zap.Int("status", statusCode))
		return 0, ErrUnexpectedStatus
	}

	var response Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		return 0, fmt.Errorf("failed to parse provider response: %w", err)
	}
	if response.Status != "success" {
		return 0, ErrVerificationFailed
	}

	return response.Amount, nil
}

// Close releases the verification worker pool.
func (c *Client) Close() {
	c.workerPool.Close()
}
