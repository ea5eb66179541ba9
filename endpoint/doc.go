// Package endpoint builds target URLs for REST API calls.
//
// An Endpoint accumulates path segments fluently and is consumed once when
// the final URL is produced:
//
//	url := endpoint.New().
//	    WithVersion("v2").
//	    WithPathParams("/users/{id}/orders", map[string]string{"id": "42"}).
//	    WithQuery(map[string]string{"limit": "10"}).
//	    Build("https://api.example.com")
//
// Path and version arguments may be strings or enum-like values; non-string
// values are resolved to display text via the describe package. Each segment
// is cleaned of a single leading and trailing slash before it is appended,
// so callers can be sloppy about separators.
//
// Endpoints are not safe for concurrent use; each call site should build
// its own.
package endpoint
