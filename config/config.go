package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Intake drivers
const (
	IntakeDriverWebhook = "webhook"
	IntakeDriverEmail   = "email"
	IntakeDriverLog     = "log"
)

type Config struct {
	ServerPort  string `env:"SERVER_PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	AppURL      string `env:"APP_URL" envDefault:"http://localhost:8080"`
	StaticDir   string `env:"STATIC_DIR" envDefault:"static"`
	// Lead intake collaborator
	IntakeDriver      string `env:"INTAKE_DRIVER" envDefault:"log"`
	IntakeEndpointURL string `env:"INTAKE_ENDPOINT_URL"`
	IntakeAPIToken    string `env:"INTAKE_API_TOKEN"`
	IntakeInbox       string `env:"INTAKE_INBOX" envDefault:"hello@binarybyte.co.uk"`
	// Email (Resend)
	ResendAPIKey  string `env:"RESEND_API_KEY"`
	EmailFrom     string `env:"EMAIL_FROM" envDefault:"noreply@binarybyte.co.uk"`
	EmailFromName string `env:"EMAIL_FROM_NAME" envDefault:"Binary Byte Website"`
	EmailTestMode bool   `env:"EMAIL_TEST_MODE" envDefault:"true"` // When true, emails are logged to console instead of sent
	// Cloudflare Turnstile
	TurnstileSiteKey   string `env:"TURNSTILE_SITE_KEY"`
	TurnstileSecretKey string `env:"TURNSTILE_SECRET_KEY"`
	// Shared rate limit store; memory store when empty
	RedisURL string `env:"REDIS_URL"`
	// Contact form lifecycle
	FormResetDelay    time.Duration `env:"FORM_RESET_DELAY" envDefault:"3s"`
	FormSubmitTimeout time.Duration `env:"FORM_SUBMIT_TIMEOUT" envDefault:"15s"`
	FormIdleTTL       time.Duration `env:"FORM_IDLE_TTL" envDefault:"2h"`
	// Extra free-provider domains appended to the built-in blocked list
	BlockedEmailDomains []string `env:"BLOCKED_EMAIL_DOMAINS" envSeparator:","`
	AllowedOrigins      []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	// Tracing exports over OTLP/HTTP only when an endpoint is set
	OTelEndpoint    string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTelServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"binarybyte-site"`
}

// Load reads .env (if present) and parses the environment into a Config.
func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := Parse()
	if err != nil {
		log.Fatalf("[CRITICAL] Invalid configuration: %v", err)
	}

	if cfg.EmailTestMode && cfg.IntakeDriver == IntakeDriverEmail {
		log.Println("[INFO] EMAIL_TEST_MODE is on: lead notifications are logged, not sent")
	}
	return cfg
}

// Parse builds a Config from the current process environment without touching .env files.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.IntakeDriver = strings.ToLower(strings.TrimSpace(cfg.IntakeDriver))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects driver settings that could never deliver a lead.
func (c *Config) Validate() error {
	switch c.IntakeDriver {
	case IntakeDriverWebhook:
		if c.IntakeEndpointURL == "" {
			return errors.New("INTAKE_ENDPOINT_URL is required for the webhook intake driver")
		}
	case IntakeDriverEmail:
		if c.IntakeInbox == "" {
			return errors.New("INTAKE_INBOX is required for the email intake driver")
		}
		if !c.EmailTestMode && c.ResendAPIKey == "" {
			return errors.New("RESEND_API_KEY is required when EMAIL_TEST_MODE is off")
		}
	case IntakeDriverLog:
		if c.IsProduction() {
			log.Printf("[WARNING] INTAKE_DRIVER=log in production: leads are only written to the log")
		}
	default:
		return fmt.Errorf("unknown INTAKE_DRIVER %q", c.IntakeDriver)
	}

	if c.FormResetDelay <= 0 {
		return errors.New("FORM_RESET_DELAY must be positive")
	}
	if c.FormSubmitTimeout <= 0 {
		return errors.New("FORM_SUBMIT_TIMEOUT must be positive")
	}
	return nil
}

// IsProduction reports whether the app runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
