// Package config loads restkit client configuration from YAML files,
// .env files, and environment variables.
//
// Precedence, lowest to highest: YAML file, .env file, process environment.
//
//	var cfg client.Config
//	err := config.Load(&cfg,
//	    config.WithFile("restkit.yml"),
//	    config.WithEnvPrefix("MYAPI"),
//	)
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Options control where configuration is read from.
type Options struct {
	// File is an explicit YAML config file path.
	File string
	// EnvFile is an explicit .env file path. When empty, ./.env is loaded
	// if it exists.
	EnvFile string
	// EnvPrefix namespaces environment variable lookups (PREFIX_BASE_URL).
	EnvPrefix string
}

// Option configures Load.
type Option func(*Options)

// WithFile sets an explicit YAML config file path.
func WithFile(path string) Option {
	return func(o *Options) { o.File = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) Option {
	return func(o *Options) { o.EnvFile = path }
}

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(o *Options) { o.EnvPrefix = prefix }
}

// Load populates cfg from the configured sources. cfg must be a pointer to
// a struct carrying mapstructure tags.
func Load(cfg any, opts ...Option) error {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	if o.EnvFile != "" {
		if err := godotenv.Load(o.EnvFile); err != nil {
			return fmt.Errorf("restkit/config: load env file %s: %w", o.EnvFile, err)
		}
	} else {
		// Best effort; a missing ./.env is not an error.
		_ = godotenv.Load()
	}

	v := viper.New()
	if o.EnvPrefix != "" {
		v.SetEnvPrefix(o.EnvPrefix)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if o.File != "" {
		v.SetConfigFile(o.File)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("restkit/config: read config file %s: %w", o.File, err)
		}
	}

	// AutomaticEnv only resolves keys viper already knows about, so bind
	// every key seen in the file explicitly.
	for _, key := range v.AllKeys() {
		_ = v.BindEnv(key)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("restkit/config: unmarshal: %w", err)
	}
	return nil
}
