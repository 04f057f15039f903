package intake

import (
	"strings"
	"testing"

	"binarybyte_site/models"

	"github.com/stretchr/testify/assert"
)

func validLead() models.LeadSubmission {
	return models.LeadSubmission{
		Name:           "Jane Doe",
		Email:          "jane@acme.com",
		CompanyURL:     "https://acme.com",
		Budget:         models.Budget20kTo50k,
		ProjectDetails: "We need a scalable backend for our logistics platform.",
		PrivacyConsent: true,
	}
}

func TestValidateValidLead(t *testing.T) {
	errs := Validate(validLead())
	assert.True(t, errs.Valid())
	assert.Empty(t, errs)
}

func TestValidateEmptyLead(t *testing.T) {
	errs := Validate(models.LeadSubmission{})

	assert.Equal(t, FieldErrors{
		FieldName:           ReasonTooShort,
		FieldEmail:          ReasonInvalidEmail,
		FieldBudget:         ReasonRequired,
		FieldProjectDetails: ReasonNeedsDetail,
		FieldPrivacyConsent: ReasonConsentRequired,
	}, errs, "company URL is optional and must not be reported")
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"Empty", "", false},
		{"Single character", "A", false},
		{"Two characters", "Al", true},
		{"Leading space with one letter", " a", true},
		{"Only whitespace", "   ", false},
		{"Multibyte", "Zoë", true},
		{"Single multibyte rune", "é", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lead := validLead()
			lead.Name = tt.value
			reason, failed := Validate(lead)[FieldName]
			assert.Equal(t, !tt.valid, failed)
			if failed {
				assert.Equal(t, ReasonTooShort, reason)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	t.Run("Syntax", func(t *testing.T) {
		for _, email := range []string{"", "not-an-email", "jane@", "@acme.com", "jane acme.com"} {
			lead := validLead()
			lead.Email = email
			assert.Equal(t, ReasonInvalidEmail, Validate(lead)[FieldEmail], email)
		}
	})

	t.Run("Blocked providers regardless of local part", func(t *testing.T) {
		locals := []string{"jane", "john.doe", "ceo+leads", "x"}
		for _, domain := range models.BlockedEmailDomains {
			for _, local := range locals {
				lead := validLead()
				lead.Email = local + "@" + domain
				assert.Equal(t, ReasonFreeEmail, Validate(lead)[FieldEmail], lead.Email)
			}
		}
	})

	t.Run("Blocked domain is case-insensitive", func(t *testing.T) {
		lead := validLead()
		lead.Email = "Jane@GMAIL.COM"
		assert.Equal(t, ReasonFreeEmail, Validate(lead)[FieldEmail])
	})

	t.Run("Work domain passes", func(t *testing.T) {
		lead := validLead()
		lead.Email = "jane@mail.acme.co.uk"
		_, failed := Validate(lead)[FieldEmail]
		assert.False(t, failed)
	})

	t.Run("Lookalike subdomain is not blocked", func(t *testing.T) {
		assert.False(t, IsBlockedDomain("jane@gmail.com.acme.io"))
		assert.True(t, IsBlockedDomain("jane@yahoo.com"))
		assert.False(t, IsBlockedDomain("no-at-sign"))
	})
}

func TestBlockDomains(t *testing.T) {
	assert.False(t, IsBlockedDomain("jane@freemail.test"))
	BlockDomains(" FreeMail.test ", "")
	assert.True(t, IsBlockedDomain("jane@freemail.test"))
}

func TestValidateCompanyURL(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"", true},
		{"not a url", false},
		{"https://acme.com", true},
		{"https://linkedin.com/company/acme", true},
		{"acme.com", false},
		{"http://", false},
		{"mailto:jane@acme.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			lead := validLead()
			lead.CompanyURL = tt.value
			reason, failed := Validate(lead)[FieldCompanyURL]
			assert.Equal(t, !tt.valid, failed)
			if failed {
				assert.Equal(t, ReasonInvalidURL, reason)
			}
		})
	}
}

func TestValidateBudget(t *testing.T) {
	for _, tier := range models.BudgetTiers {
		lead := validLead()
		lead.Budget = tier
		_, failed := Validate(lead)[FieldBudget]
		assert.False(t, failed, tier)
	}

	for _, bad := range []models.BudgetTier{"", "20k", "< $20k (MVP)", "50K+"} {
		lead := validLead()
		lead.Budget = bad
		assert.Equal(t, ReasonRequired, Validate(lead)[FieldBudget], bad)
	}
}

func TestValidateProjectDetails(t *testing.T) {
	lead := validLead()
	lead.ProjectDetails = "too short"
	assert.Equal(t, ReasonNeedsDetail, Validate(lead)[FieldProjectDetails])

	lead.ProjectDetails = "   " + strings.Repeat("x", 19) + "     "
	assert.Equal(t, ReasonNeedsDetail, Validate(lead)[FieldProjectDetails], "surrounding whitespace does not count")

	lead.ProjectDetails = strings.Repeat("x", 20)
	_, failed := Validate(lead)[FieldProjectDetails]
	assert.False(t, failed)
}

func TestValidatePrivacyConsent(t *testing.T) {
	lead := validLead()
	lead.PrivacyConsent = false
	assert.Equal(t, ReasonConsentRequired, Validate(lead)[FieldPrivacyConsent])
}

func TestFieldErrorsError(t *testing.T) {
	errs := FieldErrors{FieldEmail: ReasonFreeEmail, FieldName: ReasonTooShort}
	assert.Equal(t, "invalid lead: name: too short, email: must use a work email", errs.Error())
}

func TestReasonMessageKey(t *testing.T) {
	assert.Equal(t, "contact.errors.email_not_work", ReasonFreeEmail.MessageKey())
	assert.Equal(t, "contact.errors.generic", Reason("unknown").MessageKey())
}
