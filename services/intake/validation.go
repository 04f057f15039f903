// Package intake holds the contact form logic shared by every place the form is
// shown: the validation rules, the per-instance submission state machine and the
// registry of live form instances.
package intake

import (
	"errors"
	"net/url"
	"reflect"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"binarybyte_site/models"

	"github.com/go-playground/validator/v10"
)

// Field names a LeadSubmission field as it appears in FieldErrors
type Field string

const (
	FieldName           Field = "name"
	FieldEmail          Field = "email"
	FieldCompanyURL     Field = "companyUrl"
	FieldBudget         Field = "budget"
	FieldProjectDetails Field = "projectDetails"
	FieldPrivacyConsent Field = "privacyConsent"
)

// Fields lists every form field in display order
var Fields = []Field{
	FieldName,
	FieldEmail,
	FieldCompanyURL,
	FieldBudget,
	FieldProjectDetails,
	FieldPrivacyConsent,
}

// Reason is a field-scoped validation failure
type Reason string

const (
	ReasonTooShort        Reason = "too short"
	ReasonInvalidEmail    Reason = "invalid address"
	ReasonFreeEmail       Reason = "must use a work email"
	ReasonInvalidURL      Reason = "invalid URL"
	ReasonRequired        Reason = "required"
	ReasonNeedsDetail     Reason = "too short, need more detail"
	ReasonConsentRequired Reason = "must accept to proceed"
)

var reasonKeys = map[Reason]string{
	ReasonTooShort:        "contact.errors.name_too_short",
	ReasonInvalidEmail:    "contact.errors.email_invalid",
	ReasonFreeEmail:       "contact.errors.email_not_work",
	ReasonInvalidURL:      "contact.errors.url_invalid",
	ReasonRequired:        "contact.errors.budget_required",
	ReasonNeedsDetail:     "contact.errors.details_too_short",
	ReasonConsentRequired: "contact.errors.consent_required",
}

// MessageKey returns the i18n key of the user-facing message for the reason
func (r Reason) MessageKey() string {
	if key, ok := reasonKeys[r]; ok {
		return key
	}
	return "contact.errors.generic"
}

// FieldErrors maps each failing field to its reason. Empty means valid.
type FieldErrors map[Field]Reason

// Valid reports whether no field failed
func (fe FieldErrors) Valid() bool {
	return len(fe) == 0
}

// Error implements error so a FieldErrors can travel through error returns
func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, field := range Fields {
		if reason, ok := fe[field]; ok {
			parts = append(parts, string(field)+": "+string(reason))
		}
	}
	return "invalid lead: " + strings.Join(parts, ", ")
}

const (
	minNameLength    = 2
	minDetailsLength = 20
)

var (
	blockedMu      sync.RWMutex
	blockedDomains = domainSet(models.BlockedEmailDomains)
)

// BlockDomains adds domains to the free-provider set rejected by the work email rule
func BlockDomains(domains ...string) {
	blockedMu.Lock()
	defer blockedMu.Unlock()
	for _, d := range domains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" {
			blockedDomains[d] = struct{}{}
		}
	}
}

// IsBlockedDomain reports whether the domain of the address belongs to a free
// consumer provider. The domain is everything after the final '@'.
func IsBlockedDomain(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	domain := strings.ToLower(email[at+1:])

	blockedMu.RLock()
	defer blockedMu.RUnlock()
	_, blocked := blockedDomains[domain]
	return blocked
}

func domainSet(domains []string) map[string]struct{} {
	set := make(map[string]struct{}, len(domains))
	for _, d := range domains {
		set[strings.ToLower(d)] = struct{}{}
	}
	return set
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their JSON names so they line up with Field
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	rules := map[string]validator.Func{
		"displayname": func(fl validator.FieldLevel) bool { return validName(fl.Field().String()) },
		"workemail":   func(fl validator.FieldLevel) bool { return !IsBlockedDomain(fl.Field().String()) },
		"absurl":      func(fl validator.FieldLevel) bool { return validAbsoluteURL(fl.Field().String()) },
		"budget":      func(fl validator.FieldLevel) bool { return models.IsValidBudgetTier(fl.Field().String()) },
		"detail":      func(fl validator.FieldLevel) bool { return validDetails(fl.Field().String()) },
		"consent":     func(fl validator.FieldLevel) bool { return fl.Field().Bool() },
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic("intake: register validation " + tag + ": " + err.Error())
		}
	}
	return v
}

// Validate checks every field of the lead and returns the failures keyed by field.
// It has no side effects and is safe for concurrent use.
func Validate(lead models.LeadSubmission) FieldErrors {
	errs := FieldErrors{}

	err := validate.Struct(lead)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Only reachable if LeadSubmission stops being a struct
		panic("intake: unexpected validation error: " + err.Error())
	}

	for _, fe := range verrs {
		field := Field(fe.Field())
		if _, seen := errs[field]; seen {
			continue
		}
		errs[field] = reasonFor(field, fe.Tag())
	}
	return errs
}

func reasonFor(field Field, tag string) Reason {
	switch field {
	case FieldName:
		return ReasonTooShort
	case FieldEmail:
		if tag == "workemail" {
			return ReasonFreeEmail
		}
		return ReasonInvalidEmail
	case FieldCompanyURL:
		return ReasonInvalidURL
	case FieldBudget:
		return ReasonRequired
	case FieldProjectDetails:
		return ReasonNeedsDetail
	default:
		return ReasonConsentRequired
	}
}

// validName accepts at least two characters, at least one of which is not whitespace
func validName(name string) bool {
	if utf8.RuneCountInString(name) < minNameLength {
		return false
	}
	return strings.IndexFunc(name, func(r rune) bool { return !unicode.IsSpace(r) }) >= 0
}

func validDetails(details string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(details)) >= minDetailsLength
}

func validAbsoluteURL(raw string) bool {
	if raw == "" {
		return true
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
