// Package client issues authenticated HTTP calls against a REST API and
// returns every outcome as a Result.
//
// A Client carries default headers, an optional auth header, an optional
// HMAC signature authorizer, a body codec, and the transport. All of it can
// be overridden per call:
//
//	c, err := client.New(client.Config{
//	    BaseURL: "https://api.example.com",
//	    Signing: &client.SigningConfig{AppID: "app-123", AppKey: "s3cret"},
//	})
//
//	user, err := client.Get[User](ctx, c,
//	    endpoint.New().WithVersion("v2").WithPathParams("/users/{id}", map[string]string{"id": "42"}))
//
// HTTP-level and decode-level failures are reported inside the Result;
// only transport faults (DNS, TLS, connection) come back as Go errors.
//
// # Observability
//
// The client is silent by default. Wire a zerolog logger, a Prometheus
// metrics collector, or an OpenTelemetry tracer with WithLogger,
// WithMetrics, and WithTracer.
//
// # Concurrency
//
// A Client may serve concurrent requests; configuration reads are not
// synchronized against the Set/Clear mutators, so callers who reconfigure
// a client while requests are in flight need their own locking.
package client
