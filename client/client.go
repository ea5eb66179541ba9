package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/skillsenselab/restkit/codec"
	"github.com/skillsenselab/restkit/endpoint"
	"github.com/skillsenselab/restkit/signing"
)

// Client issues authenticated requests against one REST API.
//
// Configuration fields are read at call time. Reads are safe under
// concurrent requests; the Set/Clear mutators are not synchronized against
// in-flight requests and need external locking if used concurrently.
type Client struct {
	config           Config
	transport        Transport
	defaultTransport Transport
	codec            codec.Codec
	authorizer       *signing.Authorizer
	logger           zerolog.Logger
	metrics          *Metrics
	tracer           trace.Tracer
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithTransport replaces the default HTTP transport.
func WithTransport(t Transport) Option {
	return func(c *Client) { c.transport = t }
}

// WithCodec replaces the default JSON codec.
func WithCodec(cd codec.Codec) Option {
	return func(c *Client) { c.codec = cd }
}

// WithAuthorizer sets the signature authorizer directly, bypassing
// Config.Signing.
func WithAuthorizer(a *signing.Authorizer) Option {
	return func(c *Client) { c.authorizer = a }
}

// WithLogger enables debug logging of requests.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithMetrics enables Prometheus metrics for the request pipeline.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithTracer enables one OpenTelemetry span per request.
func WithTracer(t trace.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}

// New creates a Client from the given configuration.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		config: cfg,
		codec:  codec.JSON{},
		logger: zerolog.Nop(),
	}
	if cfg.Signing != nil {
		c.authorizer = signing.New(cfg.Signing.AppID, cfg.Signing.AppKey)
	}
	for _, opt := range opts {
		opt(c)
	}

	dt, err := NewHTTPTransport(TransportConfig{Timeout: cfg.Timeout, TLS: cfg.TLS})
	if err != nil {
		return nil, err
	}
	c.defaultTransport = dt
	if c.transport == nil {
		c.transport = dt
	}
	return c, nil
}

// SetHeaders replaces the client's default headers.
func (c *Client) SetHeaders(headers map[string]string) { c.config.Headers = headers }

// ClearHeaders removes all default headers.
func (c *Client) ClearHeaders() { c.config.Headers = nil }

// SetAuth replaces the client's default auth header.
func (c *Client) SetAuth(auth *AuthConfig) { c.config.Auth = auth }

// ClearAuth removes the default auth header.
func (c *Client) ClearAuth() { c.config.Auth = nil }

// SetAuthorizer replaces the client's signature authorizer.
func (c *Client) SetAuthorizer(a *signing.Authorizer) { c.authorizer = a }

// ClearAuthorizer disables request signing.
func (c *Client) ClearAuthorizer() { c.authorizer = nil }

// SetCodec replaces the body codec.
func (c *Client) SetCodec(cd codec.Codec) { c.codec = cd }

// ClearCodec resets the body codec to JSON.
func (c *Client) ClearCodec() { c.codec = codec.JSON{} }

// SetTransport replaces the transport.
func (c *Client) SetTransport(t Transport) { c.transport = t }

// ClearTransport restores the transport built from the client configuration.
func (c *Client) ClearTransport() { c.transport = c.defaultTransport }

// Config returns the client's configuration.
func (c *Client) Config() Config { return c.config }

// Close releases idle connections held by the default transport.
func (c *Client) Close() {
	if t, ok := c.defaultTransport.(*HTTPTransport); ok {
		t.Close()
	}
}

// execute performs one request end-to-end and returns the raw transport
// response. HTTP status handling and decoding happen in the generic layer.
func (c *Client) execute(ctx context.Context, method Method, ep *endpoint.Endpoint, body any, ro *requestOptions) (*Response, error) {
	url := ep.Build(c.config.BaseURL)

	header := make(http.Header)

	// Explicit per-call auth header wins; otherwise the client default
	// applies. Later sources append, never replace.
	auth := c.config.Auth
	if ro.auth != nil {
		auth = ro.auth
	}
	auth.apply(header)

	addAll(header, c.config.Headers)
	addAll(header, ro.headers)

	cd := ro.codec
	if cd == nil {
		cd = c.codec
	}
	var payload []byte
	if body != nil && method.HasBody() {
		data, err := cd.Encode(body)
		if err != nil {
			return nil, fmt.Errorf("restkit/client: encode request body: %w", err)
		}
		payload = data
		if header.Get("Content-Type") == "" {
			header.Set("Content-Type", cd.ContentType())
		}
	}

	// Signature headers are computed last so they never see later caller
	// overrides. The body hash covers the encoded payload bytes, so servers
	// can verify the signature against the bytes they receive.
	authorizer := c.authorizer
	if ro.authorizer != nil {
		authorizer = ro.authorizer
	}
	if authorizer != nil {
		template := ro.template
		if template == "" && c.config.Signing != nil {
			template = c.config.Signing.Template
		}
		switch {
		case !method.HasBody():
			addAll(header, authorizer.Header(method, template))
		case ro.jsonBody:
			addAll(header, authorizer.HeaderForPayload(payload, method, template))
		default:
			addAll(header, authorizer.HeaderForText(body, method, template))
		}
	}

	transport := c.transport
	if ro.transport != nil {
		transport = ro.transport
	}

	ctx, span := c.startSpan(ctx, method, url)
	done := c.metrics.begin(method.Description())
	start := time.Now()

	resp, err := transport.Send(ctx, method.Description(), url, header, payload)
	elapsed := time.Since(start)

	if err != nil {
		done(-1, elapsed)
		c.endSpan(span, 0, err)
		c.logger.Debug().
			Str("method", method.Description()).
			Str("url", url).
			Dur("elapsed", elapsed).
			Err(err).
			Msg("transport fault")
		return nil, err
	}

	done(resp.StatusCode, elapsed)
	c.endSpan(span, resp.StatusCode, nil)
	c.logger.Debug().
		Str("method", method.Description()).
		Str("url", url).
		Int("status", resp.StatusCode).
		Dur("elapsed", elapsed).
		Msg("request completed")
	return resp, nil
}

func (c *Client) startSpan(ctx context.Context, method Method, url string) (context.Context, trace.Span) {
	if c.tracer == nil {
		return ctx, nil
	}
	return c.tracer.Start(ctx, "restkit.request",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method.Description()),
			attribute.String("url.full", url),
		),
	)
}

func (c *Client) endSpan(span trace.Span, statusCode int, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(attribute.Int("http.response.status_code", statusCode))
		if statusCode >= 400 {
			span.SetStatus(codes.Error, statusReason(statusCode))
		}
	}
	span.End()
}

// addAll appends every pair to h, keeping duplicates.
func addAll(h http.Header, m map[string]string) {
	for k, v := range m {
		h.Add(k, v)
	}
}
