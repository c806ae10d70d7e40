package config

import (
	"time"

	"github.com/evanx/component-validator/errors"
	"github.com/evanx/component-validator/logger"
	"github.com/evanx/component-validator/validation"
)

// ServiceName is the canonical process name used for config resolution,
// logging tags, and telemetry resource attributes.
const ServiceName = "component-validator"

// MetricsConfig configures the optional OTLP metric export.
type MetricsConfig struct {
	Enabled  bool   `yaml:"enabled" mapstructure:"enabled"`
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint" validate:"omitempty,hostname_port"`
	Insecure bool   `yaml:"insecure" mapstructure:"insecure"`
}

// TracingConfig configures the optional OTLP trace export.
type TracingConfig struct {
	Enabled    bool    `yaml:"enabled" mapstructure:"enabled"`
	Endpoint   string  `yaml:"endpoint" mapstructure:"endpoint" validate:"omitempty,hostname_port"`
	Insecure   bool    `yaml:"insecure" mapstructure:"insecure"`
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate" validate:"min=0,max=1"`
}

// Config is the full process configuration for one load-and-validate cycle.
type Config struct {
	Environment string `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Version     string `yaml:"version" mapstructure:"version"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`

	// Module is the reference of the component module to load.
	// Bound to the COMPONENT_MODULE environment variable.
	Module string `yaml:"module" mapstructure:"module" validate:"required"`

	// Props is opaque configuration handed to the component untouched.
	Props map[string]any `yaml:"props" mapstructure:"props"`

	// ProbePrefix gates the demonstrative start/end probe: only
	// instances whose name begins with this prefix are exercised.
	ProbePrefix string `yaml:"probe_prefix" mapstructure:"probe_prefix"`

	// HookTimeout bounds each lifecycle hook invocation.
	HookTimeout time.Duration `yaml:"hook_timeout" mapstructure:"hook_timeout"`

	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
	Tracing TracingConfig `yaml:"tracing" mapstructure:"tracing"`
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	if c.ProbePrefix == "" {
		c.ProbePrefix = "hello-"
	}
	if c.HookTimeout == 0 {
		c.HookTimeout = 30 * time.Second
	}
	if c.Metrics.Endpoint == "" {
		c.Metrics.Endpoint = "localhost:4318"
		c.Metrics.Insecure = true
	}
	if c.Tracing.Endpoint == "" {
		c.Tracing.Endpoint = "localhost:4318"
		c.Tracing.Insecure = true
	}
	if c.Tracing.SampleRate == 0 {
		c.Tracing.SampleRate = 1.0
	}
	if c.Logging.ServiceName == "" {
		c.Logging.ServiceName = ServiceName
	}
	c.Logging.ApplyDefaults()
	if c.Debug && c.Logging.Level == "info" {
		c.Logging.Level = "debug"
	}
}

// Validate validates the configuration. A missing module reference is
// reported here, before any load attempt.
func (c *Config) Validate() error {
	if c.Module == "" {
		return errors.Config("COMPONENT_MODULE is required: no component module to load")
	}
	if err := validation.Validate(c); err != nil {
		return err
	}
	if c.HookTimeout < time.Second || c.HookTimeout > 10*time.Minute {
		return errors.Config("hook_timeout must be between 1s and 10m").
			WithDetail("hook_timeout", c.HookTimeout.String())
	}
	if err := c.Logging.Validate(); err != nil {
		return errors.Config(err.Error())
	}
	return nil
}
