package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/rizkypratama/flightdesk/internal/models"
	"github.com/rizkypratama/flightdesk/internal/ratelimit"
)

const (
	endpointShopping = "shopping"
	endpointOrders   = "orders"
)

type UpstreamError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Endpoint, e.StatusCode, e.Err)
	}
	return e.Endpoint + ": " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

type Config struct {
	ShoppingURL string
	OrdersURL   string
	Timeout     time.Duration
	MaxRetries  int
	RetryDelays []time.Duration
	RateLimiter *ratelimit.EndpointLimiter
}

// Client talks to the flight-shopping and order-retrieval APIs and hands
// back domain shapes. It owns the retry, rate-limit and correlation-id
// plumbing so nothing else has to.
type Client struct {
	httpClient *http.Client
	config     Config
	logger     *charmlog.Logger
}

func NewClient(config Config, logger *charmlog.Logger) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = charmlog.Default()
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		config:     config,
		logger:     logger,
	}
}

// Shop posts the wire request and returns the transformed offer list.
func (c *Client) Shop(ctx context.Context, req models.ShoppingRequest) ([]models.FlightOffer, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, &UpstreamError{Endpoint: endpointShopping, Err: err}
	}

	var resp shopResponse
	if err := c.callWithRetry(ctx, endpointShopping, http.MethodPost, c.config.ShoppingURL, body, &resp); err != nil {
		return nil, err
	}

	return transformOffers(resp), nil
}

// GetOrder fetches the raw order envelope for one reference number. The
// envelope is handed to the booking normalizer as-is; casing drift between
// provider versions is resolved there.
func (c *Client) GetOrder(ctx context.Context, referenceNo string) (models.OrderResponseEnvelope, error) {
	var env models.OrderResponseEnvelope
	url := c.config.OrdersURL + "/" + referenceNo
	if err := c.callWithRetry(ctx, endpointOrders, http.MethodGet, url, nil, &env); err != nil {
		return models.OrderResponseEnvelope{}, err
	}
	return env, nil
}

func (c *Client) callWithRetry(ctx context.Context, endpoint, method, url string, body []byte, out any) error {
	if c.config.RateLimiter != nil {
		if err := c.config.RateLimiter.Wait(ctx, endpoint); err != nil {
			return &UpstreamError{Endpoint: endpoint, Err: err}
		}
	}

	var lastErr error
	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return &UpstreamError{Endpoint: endpoint, Err: ctx.Err()}
		default:
		}

		if attempt > 0 {
			delayIdx := attempt - 1
			if delayIdx >= len(c.config.RetryDelays) {
				delayIdx = len(c.config.RetryDelays) - 1
			}
			delay := 200 * time.Millisecond
			if delayIdx >= 0 && delayIdx < len(c.config.RetryDelays) {
				delay = c.config.RetryDelays[delayIdx]
			}

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return &UpstreamError{Endpoint: endpoint, Err: ctx.Err()}
			}
		}

		err := c.call(ctx, endpoint, method, url, body, out)
		if err == nil {
			return nil
		}

		lastErr = err
		c.logger.Warn("upstream call failed",
			"endpoint", endpoint, "attempt", attempt+1, "err", err)
	}

	return lastErr
}

func (c *Client) call(ctx context.Context, endpoint, method, url string, body []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return &UpstreamError{Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &UpstreamError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &UpstreamError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status"),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &UpstreamError{Endpoint: endpoint, Err: err}
	}
	return nil
}
