package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Taeppir/Link/internal/pkg/circuitbreaker"
	"github.com/Taeppir/Link/internal/pkg/logger"
	"github.com/Taeppir/Link/internal/pkg/retry"
)

// DefaultTimeout for HTTP requests
const DefaultTimeout = 30 * time.Second

// Config configures an EnhancedClient
type Config struct {
	BaseURL string
	Timeout time.Duration
	Retry   retry.Config
	Breaker circuitbreaker.Config
}

// EnhancedClient is a JSON client with retry and circuit breaker protection
type EnhancedClient struct {
	baseURL    string
	httpClient *http.Client
	retrier    *retry.Retrier
	breaker    *circuitbreaker.CircuitBreaker
	logger     *logger.ZapLogger
}

// NewEnhancedClient creates a new enhanced HTTP client
func NewEnhancedClient(cfg Config, l *logger.ZapLogger) *EnhancedClient {
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Retry.RetryableFunc == nil {
		cfg.Retry.RetryableFunc = IsRetryable
	}
	if cfg.Breaker.IsFailure == nil {
		cfg.Breaker.IsFailure = IsRetryable
	}
	if cfg.Breaker.Name == "" {
		cfg.Breaker.Name = cfg.BaseURL
	}

	return &EnhancedClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		retrier: retry.New(cfg.Retry, l),
		breaker: circuitbreaker.New(cfg.Breaker, l),
		logger:  l,
	}
}

// GetJSON performs a GET request and decodes the JSON response into out
func (c *EnhancedClient) GetJSON(ctx context.Context, endpoint string, out interface{}) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, out)
}

// PostJSON posts body as JSON and decodes the JSON response into out
func (c *EnhancedClient) PostJSON(ctx context.Context, endpoint string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, endpoint, body, out)
}

// BreakerState returns the state of the client's circuit breaker
func (c *EnhancedClient) BreakerState() circuitbreaker.State {
	return c.breaker.State()
}

func (c *EnhancedClient) do(ctx context.Context, method, endpoint string, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}
	url := c.baseURL + endpoint

	return c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.retrier.Execute(ctx, func(ctx context.Context) error {
			var reader io.Reader
			if payload != nil {
				reader = bytes.NewReader(payload)
			}
			req, err := http.NewRequestWithContext(ctx, method, url, reader)
			if err != nil {
				return err
			}
			if payload != nil {
				req.Header.Set("Content-Type", "application/json")
			}
			req.Header.Set("Accept", "application/json")

			start := time.Now()
			resp, err := c.httpClient.Do(req)
			if err != nil {
				c.logger.Warn("HTTP request failed",
					logger.String("method", method),
					logger.String("url", url),
					logger.Err(err))
				return err
			}
			defer resp.Body.Close()

			c.logger.Debug("HTTP request completed",
				logger.String("method", method),
				logger.String("url", url),
				logger.Int("status", resp.StatusCode),
				logger.Duration("latency", time.Since(start)))

			if resp.StatusCode >= 400 {
				msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
				return &HTTPError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(msg))}
			}

			if out == nil {
				return nil
			}
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return fmt.Errorf("failed to decode response: %w", err)
			}
			return nil
		})
	})
}

// HTTPError is a non-2xx response
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// IsRetryable treats 5xx responses and transient network errors as retryable.
// Client errors and cancellations are not.
func IsRetryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode >= 500
	}
	return retry.NetworkRetryableFunc()(err)
}
