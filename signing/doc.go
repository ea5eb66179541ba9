// Package signing produces HMAC-based authentication headers from caller
// credentials and a templated signature string.
//
// An Authorizer holds an application's public identifier and secret key.
// For every signing operation it generates a fresh timestamp and nonce,
// substitutes them into the signature template, and returns the HMAC-SHA256
// of the result as a header set:
//
//	auth := signing.New("app-123", "s3cret")
//	headers := auth.Header(client.GET, "")
//	// X-Req-Timestamp, X-Req-Nonce, X-Req-Sig, X-App-Id
//
// Templates contain {placeholder} tokens ({appid}, {method}, {timestamp},
// {nonce}, {bodyhash}); unknown placeholders are left verbatim. The header
// names are a wire contract with the remote API and must not change.
//
// No network I/O happens here; signing is deterministic given the same
// inputs, which the WithClock and WithNonceSource options exploit in tests.
package signing
