package restclient

import (
	"fmt"
	"net/url"
	"time"
)

const (
	defaultTimeout = 30 * time.Second
)

// Config configures the client. It is read-only after New; a client never
// mutates its configuration, so one client may serve concurrent calls.
type Config struct {
	// Username is the basic auth username. Auth is applied only when both
	// Username and Password are set.
	Username string

	// Password is the basic auth password.
	Password string

	// UserAgent is sent as the User-Agent header when set.
	UserAgent string

	// BaseURL is prepended to relative addresses. Absolute addresses are
	// used as-is.
	BaseURL string

	// Timeout is the per-request timeout enforced by the underlying
	// transport. Defaults to 30s.
	Timeout time.Duration

	// Headers are default headers applied to all requests. Request-level
	// headers override them.
	Headers map[string]string
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("restclient: timeout must be positive")
	}
	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("restclient: base URL %q is not a valid absolute URL", c.BaseURL)
		}
	}
	return nil
}
