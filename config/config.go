// Package config loads site configuration from a YAML file and the
// environment. It is read once at startup and passed to the services.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSMTPPort = 587
	ImplicitTLSPort = 465
)

type Config struct {
	Site       SiteConfig       `yaml:"site"`
	Server     ServerConfig     `yaml:"server"`
	Mail       MailConfig       `yaml:"mail"`
	Redis      RedisConfig      `yaml:"redis"`
	HostedForm HostedFormConfig `yaml:"hosted_form"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type SiteConfig struct {
	FirmName string `yaml:"firm_name"`
	BaseURL  string `yaml:"base_url"`
}

type ServerConfig struct {
	Addr            string          `yaml:"addr"`
	ReadTimeout     string          `yaml:"read_timeout"`
	WriteTimeout    string          `yaml:"write_timeout"`
	IdleTimeout     string          `yaml:"idle_timeout"`
	ShutdownTimeout string          `yaml:"shutdown_timeout"`
	RateLimit       RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig is the per-IP token bucket applied to the API routes.
type RateLimitConfig struct {
	Capacity int    `yaml:"capacity"`
	Window   string `yaml:"window"`
}

// MailConfig holds the SMTP relay credentials and the lead inbox.
type MailConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	To       string `yaml:"to"`
	Subject  string `yaml:"subject"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"` // empty disables Redis
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	TTL      string `yaml:"ttl"`
}

type HostedFormConfig struct {
	URL string `yaml:"url"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			FirmName: "Trupath Wealth",
			BaseURL:  "http://localhost:8080",
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     "15s",
			WriteTimeout:    "15s",
			IdleTimeout:     "60s",
			ShutdownTimeout: "10s",
			RateLimit: RateLimitConfig{
				Capacity: 5,
				Window:   "1m",
			},
		},
		Mail: MailConfig{
			Port:    DefaultSMTPPort,
			From:    "no-reply@trupathwealth.com",
			To:      "garrett@trupathwealth.com",
			Subject: "New Trupath Wealth inquiry",
		},
		Redis: RedisConfig{
			TTL: "24h",
		},
		HostedForm: HostedFormConfig{
			URL: "https://forms.fillout.com/t/oFD6EFxsojus",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SMTP_HOST"); v != "" {
		c.Mail.Host = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			c.Mail.Port = port
		}
	}
	if v := os.Getenv("SMTP_USER"); v != "" {
		c.Mail.Username = v
	}
	if v := os.Getenv("SMTP_PASS"); v != "" {
		c.Mail.Password = v
	}
	if v := os.Getenv("CONTACT_TO"); v != "" {
		c.Mail.To = v
	}
	if v := os.Getenv("CONTACT_FROM"); v != "" {
		c.Mail.From = v
	}

	if v := os.Getenv("HOSTED_FORM_URL"); v != "" {
		c.HostedForm.URL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Addr = ":" + v
	}
	if v := os.Getenv("SITE_BASE_URL"); v != "" {
		c.Site.BaseURL = v
	}
}

// Configured reports whether the relay credentials are present.
func (m MailConfig) Configured() bool {
	return m.Host != "" && m.Username != "" && m.Password != ""
}

// SMTPPort returns the configured port, falling back to 587.
func (m MailConfig) SMTPPort() int {
	if m.Port <= 0 {
		return DefaultSMTPPort
	}
	return m.Port
}

// ImplicitTLS reports whether the relay expects TLS from the first byte.
func (m MailConfig) ImplicitTLS() bool {
	return m.SMTPPort() == ImplicitTLSPort
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func (s ServerConfig) GetReadTimeout() time.Duration {
	return parseDuration(s.ReadTimeout, 15*time.Second)
}

func (s ServerConfig) GetWriteTimeout() time.Duration {
	return parseDuration(s.WriteTimeout, 15*time.Second)
}

func (s ServerConfig) GetIdleTimeout() time.Duration {
	return parseDuration(s.IdleTimeout, 60*time.Second)
}

func (s ServerConfig) GetShutdownTimeout() time.Duration {
	return parseDuration(s.ShutdownTimeout, 10*time.Second)
}

func (r RateLimitConfig) GetWindow() time.Duration {
	return parseDuration(r.Window, time.Minute)
}

// GetTTL returns how long cached projections live. Zero means no expiry.
func (r RedisConfig) GetTTL() time.Duration {
	return parseDuration(r.TTL, 0)
}
