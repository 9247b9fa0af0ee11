// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package btcrpc

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config describes a client in a form that can be read from the environment.
type Config struct {
	URL      string        `env:"BTCRPC_URL" env-default:"http://127.0.0.1:8332" validate:"required,url"`
	Username string        `env:"BTCRPC_USERNAME" validate:"excludes=:"`
	Password string        `env:"BTCRPC_PASSWORD"`
	Timeout  time.Duration `env:"BTCRPC_TIMEOUT" env-default:"30s" validate:"gte=0"`
	Retry    RetryConfig
}

type RetryConfig struct {
	Disabled    bool          `env:"BTCRPC_RETRY_DISABLED" env-default:"false"`
	MaxAttempts uint32        `env:"BTCRPC_RETRY_MAX_ATTEMPTS" env-default:"10"`
	Interval    time.Duration `env:"BTCRPC_RETRY_INTERVAL" env-default:"500ms" validate:"gte=0"`
}

var validate = validator.New()

// LoadConfig reads the configuration from the environment. Variables found
// in dotEnvPath are added to the environment first without overriding it; a
// missing file is not an error.
func LoadConfig(dotEnvPath string) (*Config, error) {
	if dotEnvPath != "" {
		if err := godotenv.Load(dotEnvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", dotEnvPath, err)
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Options converts the configuration into client options.
func (c *Config) Options() []Option {
	opts := []Option{WithTimeout(c.Timeout)}
	if c.Retry.Disabled {
		opts = append(opts, WithoutRetry())
	} else {
		opts = append(opts, WithRetryPolicy(RetryPolicy{
			MaxAttempts: c.Retry.MaxAttempts,
			Interval:    c.Retry.Interval,
		}))
	}
	return opts
}

// NewClient validates the configuration and creates a client. opts are
// applied after the configured ones.
func (c *Config) NewClient(opts ...Option) (*Client, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return New(c.URL, c.Username, c.Password, append(c.Options(), opts...)...)
}
