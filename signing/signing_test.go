package signing

import (
	"testing"
	"time"
)

type method string

func (m method) Description() string { return string(m) }

func fixedAuthorizer(appID, appKey string) *Authorizer {
	return New(appID, appKey,
		WithClock(func() time.Time { return time.Unix(1700000000, 0) }),
		WithNonceSource(func() string { return "fixed-nonce" }),
	)
}

func TestHeaderShape(t *testing.T) {
	a := New("app-123", "secret")
	h := a.Header(method("GET"), "")

	for _, name := range []string{HeaderTimestamp, HeaderNonce, HeaderSignature, HeaderAppID} {
		if h[name] == "" {
			t.Errorf("missing header %s", name)
		}
	}
	if h[HeaderAppID] != "app-123" {
		t.Errorf("got app id %q, want %q", h[HeaderAppID], "app-123")
	}
	if len(h) != 4 {
		t.Errorf("expected exactly 4 headers, got %d", len(h))
	}
}

func TestHeaderDeterministic(t *testing.T) {
	a := fixedAuthorizer("app-123", "secret")

	first := a.Header(method("GET"), "")
	second := a.Header(method("GET"), "")
	if first[HeaderSignature] != second[HeaderSignature] {
		t.Error("identical inputs must produce identical signatures")
	}

	want := HMACSHA256Hex("app-123GET1700000000fixed-nonce", "secret")
	if first[HeaderSignature] != want {
		t.Errorf("got %s, want %s", first[HeaderSignature], want)
	}
}

func TestHeaderCustomTemplate(t *testing.T) {
	a := fixedAuthorizer("app-123", "secret")
	h := a.Header(method("DELETE"), "{method}|{appid}|{timestamp}|{nonce}")

	want := HMACSHA256Hex("DELETE|app-123|1700000000|fixed-nonce", "secret")
	if h[HeaderSignature] != want {
		t.Errorf("got %s, want %s", h[HeaderSignature], want)
	}
}

func TestHeaderUnknownPlaceholderLeftVerbatim(t *testing.T) {
	a := fixedAuthorizer("app-123", "secret")
	h := a.Header(method("GET"), "{appid}{mystery}")

	want := HMACSHA256Hex("app-123{mystery}", "secret")
	if h[HeaderSignature] != want {
		t.Errorf("unknown placeholders must stay verbatim in the signed string")
	}
}

func TestHeaderFreshNonceAndTimestamp(t *testing.T) {
	a := New("app-123", "secret")
	first := a.Header(method("GET"), "")
	second := a.Header(method("GET"), "")
	if first[HeaderNonce] == second[HeaderNonce] {
		t.Error("nonce must be fresh for every signing operation")
	}
}

func TestHeaderForPayloadSignature(t *testing.T) {
	a := fixedAuthorizer("app-123", "secret")

	h := a.HeaderForPayload([]byte(`{"name":"alice"}`), method("POST"), "")

	bodyHash := SHA256Hex(`{"name":"alice"}`)
	want := HMACSHA256Hex("app-123POST1700000000fixed-nonce"+bodyHash, "secret")
	if h[HeaderSignature] != want {
		t.Errorf("got %s, want %s", h[HeaderSignature], want)
	}
}

func TestHeaderForPayloadHashesExactBytes(t *testing.T) {
	a := fixedAuthorizer("app-123", "secret")

	// HTML metacharacters must be hashed as given, not re-encoded.
	payload := []byte(`{"name":"<b>&co"}`)
	h := a.HeaderForPayload(payload, method("POST"), "")

	want := HMACSHA256Hex("app-123POST1700000000fixed-nonce"+SHA256Hex(string(payload)), "secret")
	if h[HeaderSignature] != want {
		t.Error("payload bytes must be hashed verbatim")
	}
}

func TestHeaderForPayloadChangesWithPayload(t *testing.T) {
	a := fixedAuthorizer("app-123", "secret")

	first := a.HeaderForPayload([]byte(`{"name":"alice"}`), method("POST"), "")
	second := a.HeaderForPayload([]byte(`{"name":"bob"}`), method("POST"), "")
	if first[HeaderSignature] == second[HeaderSignature] {
		t.Error("signature must change when the payload changes")
	}
}

func TestHeaderForPayloadNilPayload(t *testing.T) {
	a := fixedAuthorizer("app-123", "secret")

	h := a.HeaderForPayload(nil, method("POST"), "")

	want := HMACSHA256Hex("app-123POST1700000000fixed-nonce"+SHA256Hex(""), "secret")
	if h[HeaderSignature] != want {
		t.Error("nil payload must hash the empty string")
	}
}

func TestHeaderForText(t *testing.T) {
	a := fixedAuthorizer("app-123", "secret")

	h := a.HeaderForText("raw text", method("PUT"), "")

	want := HMACSHA256Hex("app-123PUT1700000000fixed-nonce"+SHA256Hex("raw text"), "secret")
	if h[HeaderSignature] != want {
		t.Error("plain-text body must hash its textual representation")
	}
}

func TestHeaderForTextNilBody(t *testing.T) {
	a := fixedAuthorizer("app-123", "secret")

	h := a.HeaderForText(nil, method("PUT"), "")

	want := HMACSHA256Hex("app-123PUT1700000000fixed-nonce"+SHA256Hex(""), "secret")
	if h[HeaderSignature] != want {
		t.Error("nil body must hash the empty string")
	}
}
