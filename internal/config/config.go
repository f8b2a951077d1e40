package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/cialfor/intake/internal/logging"
)

// ErrInvalidConfig is wrapped by every validation failure from Load.
var ErrInvalidConfig = errors.New("invalid configuration")

// Mail transports
const (
	TransportResend = "resend"
	TransportSMTP   = "smtp"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment    string        `env:"ENV" envDefault:"development"`
	Port           string        `env:"API_PORT" envDefault:"8080"`
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" envSeparator:","`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	MaxBodyBytes   int64         `env:"MAX_BODY_BYTES" envDefault:"65536"`
	TrustProxy     bool          `env:"TRUST_PROXY_HEADERS" envDefault:"true"`

	// Logging Configuration
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile       string `env:"LOG_FILE"`
	LogMaxSize    int    `env:"LOG_MAX_SIZE" envDefault:"100"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
	LogMaxAge     int    `env:"LOG_MAX_AGE" envDefault:"7"`
	LogRequests   bool   `env:"LOG_REQUESTS" envDefault:"false"`

	// Mail Configuration
	Transport    string `env:"MAIL_TRANSPORT" envDefault:"resend"`
	ResendAPIKey string `env:"RESEND_API_KEY"`
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPSecurity string `env:"SMTP_SECURITY" envDefault:"starttls"`

	// Routing Configuration
	InfoEmail  string `env:"INFO_EMAIL" envDefault:"no-reply@contact.cialfor.com"`
	SalesEmail string `env:"SALES_EMAIL" envDefault:"no-reply@contact.cialfor.com"`
	FromEmail  string `env:"FROM_EMAIL" envDefault:"no-reply@contact.cialfor.com"`
	FromName   string `env:"FROM_NAME" envDefault:"Cialfor Contact"`

	// Rate Limit Configuration
	RateWindow        time.Duration `env:"RATE_WINDOW" envDefault:"10m"`
	RateMax           int           `env:"RATE_MAX" envDefault:"5"`
	RateMaxKeys       int           `env:"RATE_MAX_KEYS" envDefault:"10000"`
	RateSweepInterval time.Duration `env:"RATE_SWEEP_INTERVAL" envDefault:"5m"`

	// Delivery Configuration
	DeliveryTimeout time.Duration `env:"DELIVERY_TIMEOUT" envDefault:"15s"`
	ProviderRPS     float64       `env:"PROVIDER_RPS" envDefault:"2"`
	ProviderBurst   int           `env:"PROVIDER_BURST" envDefault:"5"`

	// Telemetry Configuration
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	envLocations := []string{".env"}

	// If ENV is set, try to load that specific file first
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}

	for _, loc := range envLocations {
		// godotenv.Load never overrides variables already in the environment
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	return Parse()
}

// Parse reads the configuration from the process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Transport = strings.ToLower(strings.TrimSpace(cfg.Transport))
	cfg.SMTPSecurity = strings.ToLower(strings.TrimSpace(cfg.SMTPSecurity))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate fails fast on settings that would otherwise surface as a 500 on
// every submission.
func (c *Config) Validate() error {
	switch c.Transport {
	case TransportResend:
		if strings.TrimSpace(c.ResendAPIKey) == "" {
			return fmt.Errorf("%w: RESEND_API_KEY is required when MAIL_TRANSPORT=resend", ErrInvalidConfig)
		}
	case TransportSMTP:
		if strings.TrimSpace(c.SMTPHost) == "" {
			return fmt.Errorf("%w: SMTP_HOST is required when MAIL_TRANSPORT=smtp", ErrInvalidConfig)
		}
		switch c.SMTPSecurity {
		case "starttls", "tls", "none":
		default:
			return fmt.Errorf("%w: SMTP_SECURITY must be starttls, tls or none, got %q", ErrInvalidConfig, c.SMTPSecurity)
		}
	default:
		return fmt.Errorf("%w: unsupported MAIL_TRANSPORT %q", ErrInvalidConfig, c.Transport)
	}

	for name, value := range map[string]string{
		"INFO_EMAIL":  c.InfoEmail,
		"SALES_EMAIL": c.SalesEmail,
		"FROM_EMAIL":  c.FromEmail,
	} {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s must not be empty", ErrInvalidConfig, name)
		}
	}

	if c.RateWindow <= 0 || c.RateMax <= 0 {
		return fmt.Errorf("%w: RATE_WINDOW and RATE_MAX must be positive", ErrInvalidConfig)
	}
	if c.RateMaxKeys < 0 {
		return fmt.Errorf("%w: RATE_MAX_KEYS must be non-negative", ErrInvalidConfig)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: MAX_BODY_BYTES must be positive", ErrInvalidConfig)
	}

	logCfg := c.Logging()
	if err := logCfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Logging returns the logging section as a logging.Config.
func (c *Config) Logging() logging.Config {
	return logging.Config{
		Level:      c.LogLevel,
		File:       c.LogFile,
		MaxSize:    c.LogMaxSize,
		MaxBackups: c.LogMaxBackups,
		MaxAge:     c.LogMaxAge,
		Requests:   c.LogRequests,
	}
}

// IsProduction reports whether ENV is production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
