package client

import "net/http"

// Method identifies the HTTP method of a request.
type Method int

const (
	GET Method = iota
	HEAD
	DELETE
	POST
	PUT
	PATCH
)

// Description returns the canonical short name sent on the wire and
// substituted into signature templates.
func (m Method) Description() string {
	switch m {
	case GET:
		return http.MethodGet
	case HEAD:
		return http.MethodHead
	case DELETE:
		return http.MethodDelete
	case POST:
		return http.MethodPost
	case PUT:
		return http.MethodPut
	case PATCH:
		return http.MethodPatch
	}
	return ""
}

// String implements fmt.Stringer.
func (m Method) String() string {
	return m.Description()
}

// HasBody reports whether the method carries a request payload.
func (m Method) HasBody() bool {
	switch m {
	case POST, PUT, PATCH:
		return true
	}
	return false
}
