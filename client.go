package restclient

import (
	"context"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// Client is a JSON-focused HTTP client with basic auth, consistent header
// construction, and a unified error taxonomy. It is safe for concurrent use:
// configuration is immutable after New, and every request/response value is
// owned by the call that created it.
type Client struct {
	httpClient *http.Client
	config     Config
	logger     zerolog.Logger
	requestID  bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger enables debug-level request logging on the given logger.
// Without it the client stays silent; error values are never logged,
// callers surface them.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient replaces the underlying *http.Client. The caller owns
// transport concerns (pooling, proxies, TLS); this layer only orchestrates
// requests on top of it.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRequestID stamps each outgoing request with a generated X-Request-Id
// header unless the caller already set one.
func WithRequestID() Option {
	return func(c *Client) {
		c.requestID = true
	}
}

// New creates a new client with the given configuration.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		config:     cfg,
		logger:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (c *Client) Unwrap() *http.Client {
	return c.httpClient
}

// Do executes an HTTP request and returns the complete response. On a
// non-success status the response is returned alongside the classification
// error so callers can still inspect it.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	httpReq, buildErr := c.buildRequest(ctx, req)
	if buildErr != nil {
		return nil, buildErr
	}

	start := time.Now()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, NewTransportFailedError(err)
	}
	if resp == nil {
		return nil, NewNoResponseError()
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewMalformedResponseError(err)
	}

	result := &Response{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       body,
	}

	c.logger.Debug().
		Str("method", req.Method).
		Str("url", httpReq.URL.String()).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request completed")

	if classErr := classifyStatus(result); classErr != nil {
		return result, classErr
	}

	return result, nil
}

// classifyStatus converts a non-success response into a typed error.
// Only 200 and 201 pass; any other code fails, carrying the body text
// when it decodes as UTF-8.
func classifyStatus(resp *Response) *Error {
	if resp.IsSuccess() {
		return nil
	}
	if len(resp.Body) > 0 && utf8.Valid(resp.Body) {
		return NewUnhealthyStatusMessageError(resp.StatusCode, string(resp.Body))
	}
	return NewUnhealthyStatusError(resp.StatusCode)
}
