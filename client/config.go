package client

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/skillsenselab/restkit/security"
)

const defaultTimeout = 30 * time.Second

// SigningConfig holds the credentials for the HMAC signature authorizer.
type SigningConfig struct {
	// AppID is the public application identifier sent with every request.
	AppID string `yaml:"app_id" mapstructure:"app_id" validate:"required"`

	// AppKey is the secret HMAC key. Never transmitted.
	AppKey string `yaml:"app_key" mapstructure:"app_key" validate:"required"`

	// Template overrides the default signature template for all requests.
	Template string `yaml:"template" mapstructure:"template"`
}

// Config configures a Client. Fields are read at call time, not snapshotted,
// so the Set/Clear mutators on Client take effect for subsequent requests.
type Config struct {
	// BaseURL is prepended to every endpoint that is not a custom URL.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"omitempty,url"`

	// Timeout bounds each request, enforced at the transport layer.
	// Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are default headers attached to every request.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// Auth is the default auth header. Individual requests can override it.
	Auth *AuthConfig `yaml:"-" mapstructure:"-"`

	// Signing, when set, enables the signature authorizer for all requests.
	Signing *SigningConfig `yaml:"signing" mapstructure:"signing"`

	// TLS configures the default HTTP transport.
	TLS *security.TLSConfig `yaml:"tls" mapstructure:"tls"`
}

// ApplyDefaults fills zero-value fields with defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := structValidator().Struct(c); err != nil {
		return fmt.Errorf("restkit/client: invalid config: %w", err)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("restkit/client: timeout must be positive")
	}
	return c.TLS.Validate()
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}
