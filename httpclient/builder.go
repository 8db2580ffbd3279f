package httpclient

import (
	"time"

	"github.com/rs/zerolog"
)

// ClientBuilder helps in constructing Client objects.
type ClientBuilder struct {
	config Config
	logger zerolog.Logger
}

// NewClientBuilder creates a new HTTP client builder with default configuration
func NewClientBuilder(logger zerolog.Logger) *ClientBuilder {
	return &ClientBuilder{
		config: DefaultConfig(),
		logger: logger,
	}
}

// WithTimeout sets the request timeout
func (cb *ClientBuilder) WithTimeout(timeout time.Duration) *ClientBuilder {
	cb.config.Timeout = timeout
	return cb
}

// WithUserAgent sets the User-Agent header
func (cb *ClientBuilder) WithUserAgent(userAgent string) *ClientBuilder {
	cb.config.UserAgent = userAgent
	return cb
}

// WithFollowRedirects controls whether redirects are followed
func (cb *ClientBuilder) WithFollowRedirects(follow bool) *ClientBuilder {
	cb.config.FollowRedirects = follow
	return cb
}

// WithInsecureSkipVerify disables TLS certificate verification
func (cb *ClientBuilder) WithInsecureSkipVerify(skip bool) *ClientBuilder {
	cb.config.InsecureSkipVerify = skip
	return cb
}

// WithMaxRedirects caps the number of followed redirects
func (cb *ClientBuilder) WithMaxRedirects(max int) *ClientBuilder {
	cb.config.MaxRedirects = max
	return cb
}

// WithProxy routes requests through the given proxy URL
func (cb *ClientBuilder) WithProxy(proxy string) *ClientBuilder {
	cb.config.Proxy = proxy
	return cb
}

// WithHTTP2 toggles HTTP/2 transport support
func (cb *ClientBuilder) WithHTTP2(enable bool) *ClientBuilder {
	cb.config.EnableHTTP2 = enable
	return cb
}

// WithCustomHeaders sets headers applied to every request
func (cb *ClientBuilder) WithCustomHeaders(headers map[string]string) *ClientBuilder {
	cb.config.CustomHeaders = headers
	return cb
}

// Build creates the HTTP client
func (cb *ClientBuilder) Build() (*Client, error) {
	return NewClient(cb.config, cb.logger)
}
