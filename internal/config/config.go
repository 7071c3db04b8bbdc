// Package config provides configuration loading and validation for the agent.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Defaults for the extraction pipeline. The 200-character floor matches the
// point below which scraped pages are almost always a login wall or consent
// boilerplate rather than real content.
const (
	DefaultMinContentLength = 200
	DefaultStrategyDelayMin = 1 * time.Second
	DefaultStrategyDelayMax = 3 * time.Second
	DefaultRenderTimeout    = 45 * time.Second
	DefaultEndpointTimeout  = 8 * time.Second
	DefaultPort             = 8080
)

// Config holds all tunable settings for the extraction pipeline and server.
// It is constructed once at startup and passed explicitly into the
// components that need it; nothing reads configuration globally.
type Config struct {
	// Server
	Port int `mapstructure:"port"`

	// LLM
	APIKey string `mapstructure:"api-key"`

	// Credentials and identity
	CookieFile string `mapstructure:"cookie-file"` // Playwright-style storage state JSON; empty disables the authenticated strategy
	MarkerFile string `mapstructure:"marker-file"` // auth marker overrides; empty uses compiled-in defaults

	// Extraction tuning
	MinContentLength int           `mapstructure:"min-content-length"` // sufficiency threshold in characters
	StrategyDelayMin time.Duration `mapstructure:"strategy-delay-min"` // delay between strategy attempts
	StrategyDelayMax time.Duration `mapstructure:"strategy-delay-max"`
	RenderTimeout    time.Duration `mapstructure:"render-timeout"`   // wall clock per render strategy attempt
	EndpointTimeout  time.Duration `mapstructure:"endpoint-timeout"` // wall clock per direct endpoint attempt

	// Logging
	Debug   bool `mapstructure:"debug"`
	JSONLog bool `mapstructure:"json"`
}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		Port:             DefaultPort,
		MinContentLength: DefaultMinContentLength,
		StrategyDelayMin: DefaultStrategyDelayMin,
		StrategyDelayMax: DefaultStrategyDelayMax,
		RenderTimeout:    DefaultRenderTimeout,
		EndpointTimeout:  DefaultEndpointTimeout,
	}
}

// Load unmarshals the current viper state into a Config, filling unset
// values with defaults and validating the result.
func Load(v *viper.Viper) (*Config, error) {
	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.MinContentLength == 0 {
		c.MinContentLength = DefaultMinContentLength
	}
	if c.StrategyDelayMin == 0 {
		c.StrategyDelayMin = DefaultStrategyDelayMin
	}
	if c.StrategyDelayMax == 0 {
		c.StrategyDelayMax = DefaultStrategyDelayMax
	}
	if c.RenderTimeout == 0 {
		c.RenderTimeout = DefaultRenderTimeout
	}
	if c.EndpointTimeout == 0 {
		c.EndpointTimeout = DefaultEndpointTimeout
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.MinContentLength < 0 {
		return fmt.Errorf("config error: 'min-content-length' must be non-negative")
	}
	if c.StrategyDelayMin < 0 || c.StrategyDelayMax < 0 {
		return fmt.Errorf("config error: strategy delays must be non-negative")
	}
	if c.StrategyDelayMax < c.StrategyDelayMin {
		return fmt.Errorf("config error: 'strategy-delay-max' must be >= 'strategy-delay-min'")
	}
	if c.RenderTimeout <= 0 {
		return fmt.Errorf("config error: 'render-timeout' must be positive")
	}
	if c.EndpointTimeout <= 0 {
		return fmt.Errorf("config error: 'endpoint-timeout' must be positive")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid TCP port")
	}
	return nil
}
