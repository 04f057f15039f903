package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"binarybyte_site/config"
	"binarybyte_site/models"

	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLead() models.LeadSubmission {
	return models.LeadSubmission{
		Name:           "Jane Doe",
		Email:          "jane@acme.com",
		CompanyURL:     "https://acme.com",
		Budget:         models.Budget50kAndUp,
		ProjectDetails: "Replatform our order pipeline onto event sourcing.",
		PrivacyConsent: true,
	}
}

func TestWebhookSubmitter(t *testing.T) {
	t.Run("Posts JSON with bearer token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var got models.LeadSubmission
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			assert.Equal(t, testLead(), got)

			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":"lead_42"}`))
		}))
		defer server.Close()

		s := NewWebhookSubmitter(server.URL, "secret", server.Client())
		ack, err := s.SubmitLead(context.Background(), testLead())
		require.NoError(t, err)
		assert.Equal(t, "lead_42", ack.Reference)
		assert.False(t, ack.ReceivedAt.IsZero())
	})

	t.Run("Empty body still succeeds", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		ack, err := NewWebhookSubmitter(server.URL, "", nil).SubmitLead(context.Background(), testLead())
		require.NoError(t, err)
		assert.Empty(t, ack.Reference)
	})

	t.Run("Non-2xx is a failure", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		_, err := NewWebhookSubmitter(server.URL, "", nil).SubmitLead(context.Background(), testLead())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "502")
		assert.Equal(t, 1, calls, "a failed lead is never retried automatically")
	})

	t.Run("Unreachable endpoint", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		_, err := NewWebhookSubmitter(url, "", nil).SubmitLead(context.Background(), testLead())
		assert.Error(t, err)
	})
}

func TestEmailSubmitter(t *testing.T) {
	orig := sendViaResend
	defer func() { sendViaResend = orig }()

	cfg := &config.Config{
		IntakeInbox:   "hello@binarybyte.co.uk",
		ResendAPIKey:  "re_test",
		EmailFrom:     "noreply@binarybyte.co.uk",
		EmailFromName: "Binary Byte Website",
	}

	t.Run("Sanitizes visitor input", func(t *testing.T) {
		lead := testLead()
		lead.Name = `Jane <script>alert(1)</script>Doe`
		lead.ProjectDetails = `<img src=x onerror=alert(1)>We need a new billing system built.`

		email, ref, err := NewEmailSubmitter(cfg).BuildLeadNotificationEmail(lead)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(ref, "lead-"))
		assert.Equal(t, []string{"hello@binarybyte.co.uk"}, email.To)
		assert.Equal(t, "jane@acme.com", email.ReplyTo)
		assert.NotContains(t, email.HTMLBody, "<script>")
		assert.NotContains(t, email.HTMLBody, "onerror")
		assert.NotContains(t, email.TextBody, "<img")
		assert.Contains(t, email.TextBody, "We need a new billing system built.")
		assert.Contains(t, email.Subject, "$50k+ (Enterprise)")
	})

	t.Run("Uses provider message ID as reference", func(t *testing.T) {
		sendViaResend = func(string, *resend.SendEmailRequest) (string, error) {
			return "msg_789", nil
		}
		ack, err := NewEmailSubmitter(cfg).SubmitLead(context.Background(), testLead())
		require.NoError(t, err)
		assert.Equal(t, "msg_789", ack.Reference)
	})

	t.Run("Provider failure surfaces", func(t *testing.T) {
		sendViaResend = func(string, *resend.SendEmailRequest) (string, error) {
			return "", errors.New("boom")
		}
		_, err := NewEmailSubmitter(cfg).SubmitLead(context.Background(), testLead())
		assert.Error(t, err)
	})

	t.Run("Test mode logs and acknowledges", func(t *testing.T) {
		testCfg := *cfg
		testCfg.EmailTestMode = true
		ack, err := NewEmailSubmitter(&testCfg).SubmitLead(context.Background(), testLead())
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(ack.Reference, "lead-"))
	})

	t.Run("Cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewEmailSubmitter(cfg).SubmitLead(ctx, testLead())
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestLogSubmitter(t *testing.T) {
	ack, err := LogSubmitter{}.SubmitLead(context.Background(), testLead())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ack.Reference, "log-"))
}
