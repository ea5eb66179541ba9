package endpoint

import (
	"strings"

	"github.com/skillsenselab/restkit/describe"
)

// Endpoint is a mutable builder for one target URL. Builder methods return
// the receiver to allow chaining.
type Endpoint struct {
	segments []string
	query    map[string]string
	custom   bool
}

// New creates an empty endpoint resolved against the client's base URL.
func New() *Endpoint {
	return &Endpoint{}
}

// FromURL creates an endpoint from a fully qualified URL. The client's base
// URL is never prepended; further path segments may still be chained on.
func FromURL(raw string) *Endpoint {
	return &Endpoint{
		segments: []string{clean(raw)},
		custom:   true,
	}
}

// WithVersion appends a cleaned API version segment. Non-string values are
// resolved to display text via describe.Text.
func (e *Endpoint) WithVersion(version any) *Endpoint {
	return e.WithPath(version)
}

// WithPath appends a cleaned path segment. Non-string values are resolved
// to display text via describe.Text.
func (e *Endpoint) WithPath(path any) *Endpoint {
	e.segments = append(e.segments, clean(describe.Text(path)))
	return e
}

// WithPathParams substitutes every {key} placeholder in path with the
// matching value from params, then appends the cleaned result. Placeholders
// without a matching key are left untouched.
func (e *Endpoint) WithPathParams(path any, params map[string]string) *Endpoint {
	p := describe.Text(path)
	for key, value := range params {
		p = strings.ReplaceAll(p, "{"+key+"}", value)
	}
	e.segments = append(e.segments, clean(p))
	return e
}

// WithQuery replaces the endpoint's query parameters.
func (e *Endpoint) WithQuery(query map[string]string) *Endpoint {
	e.query = query
	return e
}

// IsCustomURL reports whether the endpoint was built from a full URL.
func (e *Endpoint) IsCustomURL() bool {
	return e.custom
}

// Build produces the final URL. The base is ignored for endpoints created
// with FromURL. Segments that cleaned down to nothing are skipped so they
// never produce a doubled separator. Query parameters are appended in map
// iteration order.
func (e *Endpoint) Build(base string) string {
	parts := make([]string, 0, len(e.segments)+1)
	if !e.custom {
		if b := clean(base); b != "" {
			parts = append(parts, b)
		}
	}
	for _, segment := range e.segments {
		if segment != "" {
			parts = append(parts, segment)
		}
	}

	url := strings.Join(parts, "/")
	if len(e.query) == 0 {
		return url
	}

	pairs := make([]string, 0, len(e.query))
	for key, value := range e.query {
		pairs = append(pairs, key+"="+value)
	}
	return url + "?" + strings.Join(pairs, "&")
}

// clean strips exactly one leading and one trailing slash. Interior
// separators are left alone.
func clean(segment string) string {
	segment = strings.TrimPrefix(segment, "/")
	return strings.TrimSuffix(segment, "/")
}
