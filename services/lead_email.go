package services

import (
	"context"
	"fmt"
	"time"

	"binarybyte_site/config"
	"binarybyte_site/models"
	"binarybyte_site/services/intake"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

// leadNotificationData feeds the lead_notification templates
type leadNotificationData struct {
	Reference      string
	ReceivedAt     string
	Name           string
	Email          string
	CompanyURL     string
	Budget         string
	ProjectDetails string
}

// EmailSubmitter delivers leads to the team inbox through Resend
type EmailSubmitter struct {
	cfg    *config.Config
	policy *bluemonday.Policy
	now    func() time.Time
}

// NewEmailSubmitter creates the email intake driver
func NewEmailSubmitter(cfg *config.Config) *EmailSubmitter {
	return &EmailSubmitter{
		cfg:    cfg,
		policy: bluemonday.StrictPolicy(),
		now:    time.Now,
	}
}

// SubmitLead sends one notification email per lead. There is no retry: a
// failure is reported back so the visitor can decide to resend.
func (s *EmailSubmitter) SubmitLead(ctx context.Context, lead models.LeadSubmission) (intake.Ack, error) {
	if err := ctx.Err(); err != nil {
		return intake.Ack{}, err
	}

	email, ref, err := s.BuildLeadNotificationEmail(lead)
	if err != nil {
		return intake.Ack{}, err
	}

	id, err := SendEmail(s.cfg, email)
	if err != nil {
		return intake.Ack{}, err
	}
	if id != "" {
		ref = id
	}
	return intake.Ack{Reference: ref, ReceivedAt: s.now()}, nil
}

// BuildLeadNotificationEmail renders the notification for a lead. Visitor
// input is stripped of markup before it reaches the templates.
func (s *EmailSubmitter) BuildLeadNotificationEmail(lead models.LeadSubmission) (*Email, string, error) {
	ref := "lead-" + uuid.NewString()[:8]
	data := leadNotificationData{
		Reference:      ref,
		ReceivedAt:     s.now().UTC().Format("2006-01-02 15:04 MST"),
		Name:           s.policy.Sanitize(lead.Name),
		Email:          s.policy.Sanitize(lead.Email),
		CompanyURL:     s.policy.Sanitize(lead.CompanyURL),
		Budget:         lead.Budget.Label(),
		ProjectDetails: s.policy.Sanitize(lead.ProjectDetails),
	}

	htmlBody, textBody, err := loadTemplate("lead_notification", "en", data)
	if err != nil {
		return nil, "", fmt.Errorf("render lead notification: %w", err)
	}

	return &Email{
		To:       []string{s.cfg.IntakeInbox},
		ReplyTo:  lead.Email,
		Subject:  fmt.Sprintf("New inquiry from %s (%s)", data.Name, data.Budget),
		HTMLBody: htmlBody,
		TextBody: textBody,
	}, ref, nil
}
