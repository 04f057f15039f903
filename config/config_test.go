package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, IntakeDriverLog, cfg.IntakeDriver)
	assert.Equal(t, 3*time.Second, cfg.FormResetDelay)
	assert.Equal(t, 15*time.Second, cfg.FormSubmitTimeout)
	assert.True(t, cfg.EmailTestMode)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("INTAKE_DRIVER", " Webhook ")
	t.Setenv("INTAKE_ENDPOINT_URL", "https://crm.example.com/leads")
	t.Setenv("FORM_RESET_DELAY", "5s")
	t.Setenv("BLOCKED_EMAIL_DOMAINS", "proton.me,icloud.com")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, IntakeDriverWebhook, cfg.IntakeDriver)
	assert.Equal(t, 5*time.Second, cfg.FormResetDelay)
	assert.Equal(t, []string{"proton.me", "icloud.com"}, cfg.BlockedEmailDomains)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			IntakeDriver:      IntakeDriverLog,
			FormResetDelay:    time.Second,
			FormSubmitTimeout: time.Second,
		}
	}

	t.Run("Webhook without URL", func(t *testing.T) {
		cfg := base()
		cfg.IntakeDriver = IntakeDriverWebhook
		assert.ErrorContains(t, cfg.Validate(), "INTAKE_ENDPOINT_URL")
	})

	t.Run("Email without key outside test mode", func(t *testing.T) {
		cfg := base()
		cfg.IntakeDriver = IntakeDriverEmail
		cfg.IntakeInbox = "sales@example.com"
		assert.ErrorContains(t, cfg.Validate(), "RESEND_API_KEY")

		cfg.EmailTestMode = true
		assert.NoError(t, cfg.Validate())
	})

	t.Run("Unknown driver", func(t *testing.T) {
		cfg := base()
		cfg.IntakeDriver = "carrier-pigeon"
		assert.ErrorContains(t, cfg.Validate(), "unknown INTAKE_DRIVER")
	})

	t.Run("Non-positive reset delay", func(t *testing.T) {
		cfg := base()
		cfg.FormResetDelay = 0
		assert.Error(t, cfg.Validate())
	})
}
