package signing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skillsenselab/restkit/describe"
)

// Signature templates used when the caller does not supply one.
const (
	DefaultTemplate     = "{appid}{method}{timestamp}{nonce}"
	DefaultBodyTemplate = "{appid}{method}{timestamp}{nonce}{bodyhash}"
)

// Header names carried by every signed request. These are a wire contract
// with the remote API.
const (
	HeaderTimestamp = "X-Req-Timestamp"
	HeaderNonce     = "X-Req-Nonce"
	HeaderSignature = "X-Req-Sig"
	HeaderAppID     = "X-App-Id"
)

// Authorizer derives authentication headers from caller credentials.
// It is safe for concurrent use.
type Authorizer struct {
	appID  string
	appKey string
	now    func() time.Time
	nonce  func() string
}

// Option configures an Authorizer.
type Option func(*Authorizer)

// WithClock overrides the timestamp source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(a *Authorizer) { a.now = now }
}

// WithNonceSource overrides the nonce source. Intended for tests.
func WithNonceSource(nonce func() string) Option {
	return func(a *Authorizer) { a.nonce = nonce }
}

// New creates an Authorizer for the given credentials. The appKey is used
// only as the HMAC key and is never transmitted.
func New(appID, appKey string, opts ...Option) *Authorizer {
	a := &Authorizer{
		appID:  appID,
		appKey: appKey,
		now:    time.Now,
		nonce:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AppID returns the public identifier.
func (a *Authorizer) AppID() string {
	return a.appID
}

// sigContext holds the per-call values substituted into one signature
// template. Constructed fresh for every signing operation.
type sigContext struct {
	timestamp string
	nonce     string
	appID     string
	method    string
	bodyHash  string
}

// expand substitutes {placeholder} tokens in the template. Unknown
// placeholders are left verbatim.
func (c sigContext) expand(template string) string {
	return strings.NewReplacer(
		"{appid}", c.appID,
		"{method}", c.method,
		"{timestamp}", c.timestamp,
		"{nonce}", c.nonce,
		"{bodyhash}", c.bodyHash,
	).Replace(template)
}

// Header generates authentication headers for a request without a body.
// An empty template selects DefaultTemplate.
func (a *Authorizer) Header(method describe.Describable, template string) map[string]string {
	if template == "" {
		template = DefaultTemplate
	}
	return a.headers(a.newContext(method, ""), template)
}

// HeaderForPayload generates authentication headers for a body-bearing
// request. The content hash covers exactly the payload bytes as they go on
// the wire, so a server can recompute it from the bytes it received. A nil
// payload hashes the empty string. An empty template selects
// DefaultBodyTemplate.
func (a *Authorizer) HeaderForPayload(payload []byte, method describe.Describable, template string) map[string]string {
	if template == "" {
		template = DefaultBodyTemplate
	}
	return a.headers(a.newContext(method, SHA256Hex(string(payload))), template)
}

// HeaderForText generates authentication headers whose content hash covers
// the plain textual representation of body. A nil body hashes the empty
// string. An empty template selects DefaultBodyTemplate.
func (a *Authorizer) HeaderForText(body any, method describe.Describable, template string) map[string]string {
	if template == "" {
		template = DefaultBodyTemplate
	}
	var text string
	if body != nil {
		text = fmt.Sprint(body)
	}
	return a.headers(a.newContext(method, SHA256Hex(text)), template)
}

// newContext builds a signing context with a fresh timestamp and nonce.
// Never reused across calls, even for retries of the same request.
func (a *Authorizer) newContext(method describe.Describable, bodyHash string) sigContext {
	return sigContext{
		timestamp: strconv.FormatInt(a.now().Unix(), 10),
		nonce:     a.nonce(),
		appID:     a.appID,
		method:    method.Description(),
		bodyHash:  bodyHash,
	}
}

func (a *Authorizer) headers(c sigContext, template string) map[string]string {
	return map[string]string{
		HeaderTimestamp: c.timestamp,
		HeaderNonce:     c.nonce,
		HeaderSignature: HMACSHA256Hex(c.expand(template), a.appKey),
		HeaderAppID:     a.appID,
	}
}
