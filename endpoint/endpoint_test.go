package endpoint

import (
	"strings"
	"testing"
)

type apiVersion int

const (
	versionLegacy apiVersion = iota
	versionCurrent
)

func (v apiVersion) Description() string {
	switch v {
	case versionLegacy:
		return "v1"
	case versionCurrent:
		return "v2"
	}
	return ""
}

func TestClean(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"users", "users"},
		{"/users", "users"},
		{"users/", "users"},
		{"/users/", "users"},
		{"/users/42/orders/", "users/42/orders"},
		{"//users//", "/users/"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := clean(tt.in); got != tt.want {
			t.Errorf("clean(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildJoinsSegments(t *testing.T) {
	url := New().
		WithPath("/users/").
		WithPathParams("/{id}/orders", map[string]string{"id": "42"}).
		Build("https://api.example.com")

	want := "https://api.example.com/users/42/orders"
	if url != want {
		t.Errorf("got %q, want %q", url, want)
	}
}

func TestBuildTrailingSlashOnBase(t *testing.T) {
	url := New().WithPath("users").Build("https://api.example.com/")
	want := "https://api.example.com/users"
	if url != want {
		t.Errorf("got %q, want %q", url, want)
	}
}

func TestBuildSkipsEmptySegments(t *testing.T) {
	url := New().
		WithPath("/").
		WithPath("users").
		WithPath("").
		Build("https://api.example.com")

	want := "https://api.example.com/users"
	if url != want {
		t.Errorf("empty segments must not double the separator: got %q, want %q", url, want)
	}
}

func TestWithVersion(t *testing.T) {
	url := New().WithVersion("v2").WithPath("users").Build("https://api.example.com")
	want := "https://api.example.com/v2/users"
	if url != want {
		t.Errorf("got %q, want %q", url, want)
	}
}

func TestWithVersionDescribable(t *testing.T) {
	url := New().WithVersion(versionCurrent).WithPath("users").Build("https://api.example.com")
	want := "https://api.example.com/v2/users"
	if url != want {
		t.Errorf("got %q, want %q", url, want)
	}
}

func TestWithPathParamsUnmatchedPlaceholder(t *testing.T) {
	url := New().
		WithPathParams("/users/{id}/orders/{order}", map[string]string{"id": "7"}).
		Build("https://api.example.com")

	want := "https://api.example.com/users/7/orders/{order}"
	if url != want {
		t.Errorf("unmatched placeholders must stay literal: got %q, want %q", url, want)
	}
}

func TestWithPathParamsIgnoresExtraKeys(t *testing.T) {
	url := New().
		WithPathParams("/users/{id}", map[string]string{"id": "7", "unused": "x"}).
		Build("https://api.example.com")

	want := "https://api.example.com/users/7"
	if url != want {
		t.Errorf("got %q, want %q", url, want)
	}
}

func TestWithQuery(t *testing.T) {
	url := New().
		WithPath("items").
		WithQuery(map[string]string{"a": "1", "b": "2"}).
		Build("https://api.example.com")

	if strings.Count(url, "?") != 1 {
		t.Errorf("expected exactly one '?': %q", url)
	}
	if strings.HasSuffix(url, "&") {
		t.Errorf("unexpected trailing '&': %q", url)
	}
	if !strings.Contains(url, "a=1") || !strings.Contains(url, "b=2") {
		t.Errorf("missing query pairs: %q", url)
	}
}

func TestWithQueryReplaces(t *testing.T) {
	url := New().
		WithPath("items").
		WithQuery(map[string]string{"a": "1"}).
		WithQuery(map[string]string{"b": "2"}).
		Build("https://api.example.com")

	if strings.Contains(url, "a=1") {
		t.Errorf("WithQuery must replace, not merge: %q", url)
	}
	if !strings.Contains(url, "b=2") {
		t.Errorf("missing replacement query: %q", url)
	}
}

func TestBuildEmptyQueryOmitsSeparator(t *testing.T) {
	url := New().
		WithPath("items").
		WithQuery(map[string]string{}).
		Build("https://api.example.com")

	if strings.Contains(url, "?") {
		t.Errorf("empty query must not add '?': %q", url)
	}
}

func TestFromURLIgnoresBase(t *testing.T) {
	url := FromURL("https://other.example.com/webhook/").
		WithPath("events").
		Build("https://api.example.com")

	want := "https://other.example.com/webhook/events"
	if url != want {
		t.Errorf("got %q, want %q", url, want)
	}
}

func TestFromURLIsCustom(t *testing.T) {
	if !FromURL("https://other.example.com").IsCustomURL() {
		t.Error("FromURL endpoint must report custom URL")
	}
	if New().IsCustomURL() {
		t.Error("New endpoint must not report custom URL")
	}
}
