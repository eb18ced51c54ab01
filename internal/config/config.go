// Package config loads the CLI configuration: an optional
// mailprobe.yaml file plus MAILPROBE_-prefixed environment overrides.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Defaults applied when the config file or a key is absent.
const (
	DefaultInput       = "data/emails.txt"
	DefaultOutput      = "data/results.json"
	DefaultDNSTimeout  = 5 // seconds
	DefaultSMTPTimeout = 8 // seconds
	DefaultSMTPPort    = "25"
	DefaultWorkers     = 1
	DefaultLogLevel    = "info"
)

// Config holds all CLI configuration.
type Config struct {
	Input    string     `mapstructure:"input"`
	Output   string     `mapstructure:"output"`
	DNS      DNSConfig  `mapstructure:"dns"`
	SMTP     SMTPConfig `mapstructure:"smtp"`
	Workers  int        `mapstructure:"workers"`
	LogLevel string     `mapstructure:"log_level"`
}

// DNSConfig holds domain lookup configuration.
type DNSConfig struct {
	// TimeoutSeconds bounds each lookup. Zero means the default;
	// negative values are rejected by Validate.
	TimeoutSeconds int `mapstructure:"timeout"`
	// HostOnly disables MX queries in favor of basic host resolution.
	HostOnly bool `mapstructure:"host_only"`
}

// SMTPConfig holds reachability probe configuration.
type SMTPConfig struct {
	TimeoutSeconds int    `mapstructure:"timeout"`
	Port           string `mapstructure:"port"`
}

// Load reads configuration from the given directory path, looking for
// a file named "mailprobe.yaml". A missing file is not an error; the
// defaults apply. Environment variables with prefix MAILPROBE_
// override file values, e.g. MAILPROBE_SMTP_TIMEOUT overrides
// smtp.timeout.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("mailprobe")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)

	v.SetEnvPrefix("MAILPROBE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("input", DefaultInput)
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("dns.timeout", DefaultDNSTimeout)
	v.SetDefault("dns.host_only", false)
	v.SetDefault("smtp.timeout", DefaultSMTPTimeout)
	v.SetDefault("smtp.port", DefaultSMTPPort)
	v.SetDefault("workers", DefaultWorkers)
	v.SetDefault("log_level", DefaultLogLevel)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects impossible values and resolves the zero-timeout
// rule: zero means "use the layer's default", never an instantaneous
// deadline. Negative timeouts are configuration errors.
func (c *Config) Validate() error {
	if c.DNS.TimeoutSeconds < 0 {
		return fmt.Errorf("dns.timeout must be >= 0 seconds, got %d", c.DNS.TimeoutSeconds)
	}
	if c.SMTP.TimeoutSeconds < 0 {
		return fmt.Errorf("smtp.timeout must be >= 0 seconds, got %d", c.SMTP.TimeoutSeconds)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}

	if c.DNS.TimeoutSeconds == 0 {
		c.DNS.TimeoutSeconds = DefaultDNSTimeout
	}
	if c.SMTP.TimeoutSeconds == 0 {
		c.SMTP.TimeoutSeconds = DefaultSMTPTimeout
	}
	if c.Workers == 0 {
		c.Workers = DefaultWorkers
	}
	return nil
}

// DNSTimeout returns the lookup timeout as a duration.
func (c *Config) DNSTimeout() time.Duration {
	return time.Duration(c.DNS.TimeoutSeconds) * time.Second
}

// SMTPTimeout returns the probe timeout as a duration.
func (c *Config) SMTPTimeout() time.Duration {
	return time.Duration(c.SMTP.TimeoutSeconds) * time.Second
}
