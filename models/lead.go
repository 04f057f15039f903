package models

import "strings"

// BudgetTier is one of the fixed project budget ranges offered on the contact form
type BudgetTier string

// Budget tiers, smallest first
const (
	BudgetUnder20k BudgetTier = "<20k"
	Budget20kTo50k BudgetTier = "20k-50k"
	Budget50kAndUp BudgetTier = "50k+"
)

// BudgetTiers lists the selectable tiers in display order
var BudgetTiers = []BudgetTier{
	BudgetUnder20k,
	Budget20kTo50k,
	Budget50kAndUp,
}

var budgetLabels = map[BudgetTier]string{
	BudgetUnder20k: "< $20k (MVP)",
	Budget20kTo50k: "$20k - $50k (Growth)",
	Budget50kAndUp: "$50k+ (Enterprise)",
}

// Label returns the human readable range shown on the budget chip
func (b BudgetTier) Label() string {
	if label, ok := budgetLabels[b]; ok {
		return label
	}
	return string(b)
}

// IsValidBudgetTier checks if the value is exactly one of the known tiers
func IsValidBudgetTier(value string) bool {
	for _, tier := range BudgetTiers {
		if string(tier) == value {
			return true
		}
	}
	return false
}

// BlockedEmailDomains are free consumer mail providers rejected by the work email rule
var BlockedEmailDomains = []string{
	"gmail.com",
	"hotmail.com",
	"yahoo.com",
	"outlook.com",
	"aol.com",
}

// LeadSubmission is a prospective client's contact details and project brief.
// It only lives inside a contact form instance and is never stored.
type LeadSubmission struct {
	Name           string     `json:"name" form:"name" validate:"displayname"`
	Email          string     `json:"email" form:"email" validate:"required,email,workemail"`
	CompanyURL     string     `json:"companyUrl" form:"company_url" validate:"omitempty,absurl"`
	Budget         BudgetTier `json:"budget" form:"budget" validate:"budget"`
	ProjectDetails string     `json:"projectDetails" form:"project_details" validate:"detail"`
	PrivacyConsent bool       `json:"privacyConsent" form:"privacy_consent" validate:"consent"`
}

// Normalize trims the single-line fields that never carry meaningful surrounding whitespace
func (l LeadSubmission) Normalize() LeadSubmission {
	l.Email = strings.TrimSpace(l.Email)
	l.CompanyURL = strings.TrimSpace(l.CompanyURL)
	l.Budget = BudgetTier(strings.TrimSpace(string(l.Budget)))
	return l
}

// IsZero reports whether nothing has been entered yet
func (l LeadSubmission) IsZero() bool {
	return l == LeadSubmission{}
}
