package client

import (
	"testing"
	"time"

	"github.com/skillsenselab/restkit/security"
)

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Timeout != defaultTimeout {
		t.Errorf("got %v, want %v", cfg.Timeout, defaultTimeout)
	}

	cfg = Config{Timeout: 5 * time.Second}
	cfg.ApplyDefaults()
	if cfg.Timeout != 5*time.Second {
		t.Error("explicit timeout must be kept")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{BaseURL: "https://api.example.com", Timeout: time.Second}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestConfigValidateBadBaseURL(t *testing.T) {
	cfg := Config{BaseURL: "not a url", Timeout: time.Second}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for malformed base URL")
	}
}

func TestConfigValidateSigningCredentials(t *testing.T) {
	cfg := Config{
		Timeout: time.Second,
		Signing: &SigningConfig{AppID: "app-123"},
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for signing config without app key")
	}

	cfg.Signing.AppKey = "secret"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestConfigValidateTLS(t *testing.T) {
	cfg := Config{
		Timeout: time.Second,
		TLS:     &security.TLSConfig{CertFile: "cert.pem"},
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for cert without key")
	}
}
