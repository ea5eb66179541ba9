package client

import (
	"context"

	"github.com/skillsenselab/restkit/codec"
	"github.com/skillsenselab/restkit/endpoint"
	"github.com/skillsenselab/restkit/signing"
)

// requestOptions collects per-call overrides of the client defaults.
type requestOptions struct {
	headers    map[string]string
	auth       *AuthConfig
	authorizer *signing.Authorizer
	codec      codec.Codec
	transport  Transport
	template   string
	jsonBody   bool
}

// RequestOption configures a single request.
type RequestOption func(*requestOptions)

// WithHeader adds a header to the request.
func WithHeader(key, value string) RequestOption {
	return func(ro *requestOptions) {
		if ro.headers == nil {
			ro.headers = make(map[string]string)
		}
		ro.headers[key] = value
	}
}

// WithHeaders adds headers to the request.
func WithHeaders(headers map[string]string) RequestOption {
	return func(ro *requestOptions) {
		if ro.headers == nil {
			ro.headers = make(map[string]string, len(headers))
		}
		for k, v := range headers {
			ro.headers[k] = v
		}
	}
}

// WithAuth overrides the client's default auth header for this request.
func WithAuth(auth *AuthConfig) RequestOption {
	return func(ro *requestOptions) { ro.auth = auth }
}

// WithRequestAuthorizer overrides the client's signature authorizer for
// this request.
func WithRequestAuthorizer(a *signing.Authorizer) RequestOption {
	return func(ro *requestOptions) { ro.authorizer = a }
}

// WithRequestCodec overrides the body codec for this request.
func WithRequestCodec(cd codec.Codec) RequestOption {
	return func(ro *requestOptions) { ro.codec = cd }
}

// WithRequestTransport overrides the transport for this request.
func WithRequestTransport(t Transport) RequestOption {
	return func(ro *requestOptions) { ro.transport = t }
}

// WithSignatureTemplate overrides the signature template for this request.
func WithSignatureTemplate(template string) RequestOption {
	return func(ro *requestOptions) { ro.template = template }
}

// WithPlainTextBody makes the authorizer hash the body's plain textual
// representation instead of the encoded request payload.
func WithPlainTextBody() RequestOption {
	return func(ro *requestOptions) { ro.jsonBody = false }
}

func newRequestOptions(opts []RequestOption) *requestOptions {
	ro := &requestOptions{jsonBody: true}
	for _, opt := range opts {
		opt(ro)
	}
	return ro
}

// Get performs a GET request and decodes the response into T.
func Get[T any](ctx context.Context, c *Client, ep *endpoint.Endpoint, opts ...RequestOption) (Result[T], error) {
	return do[T](ctx, c, GET, ep, nil, opts)
}

// Delete performs a DELETE request and decodes the response into T.
func Delete[T any](ctx context.Context, c *Client, ep *endpoint.Endpoint, opts ...RequestOption) (Result[T], error) {
	return do[T](ctx, c, DELETE, ep, nil, opts)
}

// Post performs a POST request with an encoded body and decodes the
// response into T.
func Post[T any](ctx context.Context, c *Client, ep *endpoint.Endpoint, body any, opts ...RequestOption) (Result[T], error) {
	return do[T](ctx, c, POST, ep, body, opts)
}

// Put performs a PUT request with an encoded body and decodes the response
// into T.
func Put[T any](ctx context.Context, c *Client, ep *endpoint.Endpoint, body any, opts ...RequestOption) (Result[T], error) {
	return do[T](ctx, c, PUT, ep, body, opts)
}

// Patch performs a PATCH request with an encoded body and decodes the
// response into T.
func Patch[T any](ctx context.Context, c *Client, ep *endpoint.Endpoint, body any, opts ...RequestOption) (Result[T], error) {
	return do[T](ctx, c, PATCH, ep, body, opts)
}

// do maps the raw transport response into a Result. Transport faults are
// returned as errors; HTTP and decode failures live inside the Result.
func do[T any](ctx context.Context, c *Client, method Method, ep *endpoint.Endpoint, body any, opts []RequestOption) (Result[T], error) {
	ro := newRequestOptions(opts)

	resp, err := c.execute(ctx, method, ep, body, ro)
	if err != nil {
		return Result[T]{}, err
	}

	raw := string(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Fail[T](raw, statusReason(resp.StatusCode)), nil
	}

	// Raw-text results succeed even on an empty body.
	var zero T
	if _, isText := any(zero).(string); isText {
		return Ok(any(raw).(T)), nil
	}

	if raw == "" {
		// An empty body cannot populate a typed result. No reason text;
		// callers distinguish this case by the empty reason list.
		return Fail[T](raw), nil
	}

	cd := ro.codec
	if cd == nil {
		cd = c.codec
	}
	var value T
	if err := cd.Decode(resp.Body, &value); err != nil {
		return Fail[T](raw, decodeFailReason, err.Error()), nil
	}
	return Ok(value), nil
}
