package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"binarybyte_site/models"
	"binarybyte_site/services/intake"
)

// WebhookSubmitter posts leads as JSON to the intake endpoint
type WebhookSubmitter struct {
	endpoint   string
	token      string
	httpClient *http.Client
	now        func() time.Time
}

// NewWebhookSubmitter creates the webhook intake driver. The form bounds each
// call with its own deadline, so the client carries no timeout of its own.
func NewWebhookSubmitter(endpoint, token string, httpClient *http.Client) *WebhookSubmitter {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &WebhookSubmitter{
		endpoint:   endpoint,
		token:      token,
		httpClient: httpClient,
		now:        time.Now,
	}
}

// SubmitLead transmits the lead exactly once. Any non-2xx answer is a failure.
func (s *WebhookSubmitter) SubmitLead(ctx context.Context, lead models.LeadSubmission) (intake.Ack, error) {
	body, err := json.Marshal(lead)
	if err != nil {
		return intake.Ack{}, fmt.Errorf("webhook: marshal lead: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return intake.Ack{}, fmt.Errorf("webhook: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return intake.Ack{}, fmt.Errorf("webhook: post lead: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 8192))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return intake.Ack{}, fmt.Errorf("webhook: intake responded with status %d", resp.StatusCode)
	}

	ack := intake.Ack{ReceivedAt: s.now()}
	if len(respBody) > 0 {
		var parsed struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(respBody, &parsed); err == nil {
			ack.Reference = parsed.ID
		}
	}
	log.Printf("[INFO] Lead delivered to intake webhook (ref: %q)", ack.Reference)
	return ack, nil
}
