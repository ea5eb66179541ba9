package client

import (
	"fmt"
	"net/http"
)

// decodeFailReason is the fixed first reason attached to decode failures.
const decodeFailReason = "failed to decode response body"

// Result is the outcome of one request: either a decoded value or failure
// details. Exactly one variant is populated; a Result is immutable once
// returned.
type Result[T any] struct {
	ok      bool
	value   T
	rawBody string
	reasons []string
}

// Ok creates a successful result.
func Ok[T any](value T) Result[T] {
	return Result[T]{ok: true, value: value}
}

// Fail creates a failed result carrying the raw response body and zero or
// more human-readable reasons.
func Fail[T any](rawBody string, reasons ...string) Result[T] {
	return Result[T]{rawBody: rawBody, reasons: reasons}
}

// IsOk reports whether the result holds a value.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// Value returns the decoded value and whether the result succeeded.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.ok
}

// MustValue returns the decoded value, panicking on a failed result.
func (r Result[T]) MustValue() T {
	if !r.ok {
		panic(fmt.Sprintf("restkit/client: MustValue on failed result: %v", r.reasons))
	}
	return r.value
}

// RawBody returns the raw response body of a failed result. It may be empty.
func (r Result[T]) RawBody() string {
	return r.rawBody
}

// Reasons returns the failure reasons in the order they were recorded.
func (r Result[T]) Reasons() []string {
	return r.reasons
}

// Match dispatches to exactly one of the two handlers. Nil handlers are
// skipped.
func (r Result[T]) Match(ok func(T), fail func(rawBody string, reasons []string)) {
	if r.ok {
		if ok != nil {
			ok(r.value)
		}
		return
	}
	if fail != nil {
		fail(r.rawBody, r.reasons)
	}
}

// statusReason renders the failure reason for a non-2xx response.
func statusReason(statusCode int) string {
	if text := http.StatusText(statusCode); text != "" {
		return fmt.Sprintf("HTTP %d %s", statusCode, text)
	}
	return fmt.Sprintf("HTTP %d", statusCode)
}
