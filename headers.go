package restclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	headerUserAgent   = "User-Agent"
	headerContentType = "Content-Type"
	headerRequestID   = "X-Request-Id"

	contentTypeJSON = "application/json"
)

// buildRequest constructs an *http.Request from the client config and
// request. It is a pure function of its inputs: the transport is never
// touched, and every failure is reported before a connection is attempted.
func (c *Client) buildRequest(ctx context.Context, req Request) (*http.Request, *Error) {
	target, addrErr := c.resolveAddress(req.Address)
	if addrErr != nil {
		return nil, addrErr
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, NewInvalidAddressError(req.Address)
	}

	// Apply default headers, then request-specific overrides.
	for k, v := range c.config.Headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	if req.Body != nil && httpReq.Header.Get(headerContentType) == "" {
		httpReq.Header.Set(headerContentType, contentTypeJSON)
	}

	if c.config.Username != "" && c.config.Password != "" {
		if !utf8.ValidString(c.config.Username) || !utf8.ValidString(c.config.Password) {
			return nil, NewBadCredentialTokenError()
		}
		httpReq.SetBasicAuth(c.config.Username, c.config.Password)
	}

	if c.config.UserAgent != "" {
		httpReq.Header.Set(headerUserAgent, c.config.UserAgent)
	}

	if c.requestID && httpReq.Header.Get(headerRequestID) == "" {
		httpReq.Header.Set(headerRequestID, uuid.NewString())
	}

	return httpReq, nil
}

// resolveAddress joins a relative address onto the client's base URL and
// rejects anything that does not parse as a well-formed absolute URL.
func (c *Client) resolveAddress(address string) (string, *Error) {
	target := address
	if c.config.BaseURL != "" && !strings.HasPrefix(address, "http://") && !strings.HasPrefix(address, "https://") {
		target = strings.TrimRight(c.config.BaseURL, "/") + "/" + strings.TrimLeft(address, "/")
	}

	u, err := url.Parse(target)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", NewInvalidAddressError(address)
	}

	return target, nil
}
