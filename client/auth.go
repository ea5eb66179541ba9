package client

import (
	"encoding/base64"
	"net/http"
)

// AuthType identifies the authentication header scheme.
type AuthType int

const (
	// AuthNone disables the auth header.
	AuthNone AuthType = iota
	// AuthBearer adds an Authorization: Bearer header.
	AuthBearer
	// AuthBasic adds an Authorization: Basic header.
	AuthBasic
	// AuthHeader adds an arbitrary named header.
	AuthHeader
	// AuthCustom runs a caller-supplied header mutator.
	AuthCustom
)

// AuthConfig describes the explicit auth header attached to requests.
// It is distinct from the signature authorizer: an AuthConfig carries a
// static credential, while the authorizer derives fresh headers per call.
type AuthConfig struct {
	// Type is the authentication scheme.
	Type AuthType
	// Token is the bearer token (AuthBearer).
	Token string
	// Username and Password are the basic auth credentials (AuthBasic).
	Username string
	Password string
	// Name and Value are the header pair (AuthHeader).
	Name  string
	Value string
	// Apply mutates the outgoing headers (AuthCustom).
	Apply func(http.Header)
}

// BearerAuth creates a bearer token auth config.
func BearerAuth(token string) *AuthConfig {
	return &AuthConfig{Type: AuthBearer, Token: token}
}

// BasicAuth creates a basic auth config.
func BasicAuth(username, password string) *AuthConfig {
	return &AuthConfig{Type: AuthBasic, Username: username, Password: password}
}

// HeaderAuth creates an auth config that sends a static named header.
func HeaderAuth(name, value string) *AuthConfig {
	return &AuthConfig{Type: AuthHeader, Name: name, Value: value}
}

// CustomAuth creates an auth config with a header mutator function.
func CustomAuth(fn func(http.Header)) *AuthConfig {
	return &AuthConfig{Type: AuthCustom, Apply: fn}
}

// apply adds the auth header to h. Later header sources append after this,
// never replacing it.
func (a *AuthConfig) apply(h http.Header) {
	if a == nil {
		return
	}
	switch a.Type {
	case AuthBearer:
		h.Add("Authorization", "Bearer "+a.Token)
	case AuthBasic:
		cred := base64.StdEncoding.EncodeToString([]byte(a.Username + ":" + a.Password))
		h.Add("Authorization", "Basic "+cred)
	case AuthHeader:
		if a.Name != "" {
			h.Add(a.Name, a.Value)
		}
	case AuthCustom:
		if a.Apply != nil {
			a.Apply(h)
		}
	}
}
