package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/skillsenselab/restkit/security"
)

// Response is the raw outcome of one transport dispatch.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport dispatches a single HTTP request. Implementations must release
// any connection resources on every exit path. Transport-level faults
// (DNS, TLS, connection) are returned as errors and never wrapped into a
// Response.
type Transport interface {
	Send(ctx context.Context, method, url string, header http.Header, body []byte) (*Response, error)
}

// TransportConfig configures the default HTTP transport.
type TransportConfig struct {
	// Timeout bounds the whole request, including reading the body.
	Timeout time.Duration
	// TLS configures the TLS client settings.
	TLS *security.TLSConfig
}

// HTTPTransport is the default Transport backed by net/http.
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport creates an HTTP transport from the given configuration.
func NewHTTPTransport(cfg TransportConfig) (*HTTPTransport, error) {
	rt := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.TLS != nil {
		tlsCfg, err := cfg.TLS.Build()
		if err != nil {
			return nil, err
		}
		if tlsCfg != nil {
			rt.TLSClientConfig = tlsCfg
		}
	}
	return &HTTPTransport{
		client: &http.Client{Transport: rt, Timeout: cfg.Timeout},
	}, nil
}

// Send dispatches one request and reads the full response body.
func (t *HTTPTransport) Send(ctx context.Context, method, url string, header http.Header, body []byte) (*Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("restkit/client: create request: %w", err)
	}
	if header != nil {
		req.Header = header.Clone()
	}

	resp, err := t.client.Do(req)
	if err != nil {
		// Transport faults propagate to the caller unwrapped.
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("restkit/client: read response body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}

// Close releases idle connections held by the transport.
func (t *HTTPTransport) Close() {
	t.client.CloseIdleConnections()
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (t *HTTPTransport) Unwrap() *http.Client {
	return t.client
}
