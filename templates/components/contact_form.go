package components

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"binarybyte_site/middleware"
	"binarybyte_site/models"
	"binarybyte_site/services/intake"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// FormView is everything the lead form body needs to render one instance
type FormView struct {
	Snapshot         intake.Snapshot
	TurnstileSiteKey string
	ResetDelay       time.Duration
	CaptchaFailed    bool
}

// FormContainerID is the element every form fragment response replaces
func FormContainerID(id string) string {
	return "contact-form-" + id
}

// FormURL builds the endpoint of a form instance action
func FormURL(id, action string) string {
	if action == "" {
		return "/contact/forms/" + id
	}
	return "/contact/forms/" + id + "/" + action
}

func FieldID(formID string, field intake.Field) string {
	return formID + "-" + string(field)
}

func ErrorID(formID string, field intake.Field) string {
	return formID + "-err-" + string(field)
}

func SubmitID(formID string) string {
	return formID + "-submit"
}

// LeadForm renders the shared form body for both surfaces. The container is
// replaced wholesale on submit and by the post-success poll.
func LeadForm(ctx context.Context, view FormView) g.Node {
	snap := view.Snapshot
	return Div(ID(FormContainerID(snap.ID)),
		Class("lead-form lead-form--"+string(snap.Surface)),
		g.Attr("data-contact-form", snap.ID),
		g.Attr("data-teardown-url", FormURL(snap.ID, "teardown")),
		g.Attr("data-state", snap.State.String()),
		leadFormBody(ctx, view),
	)
}

func leadFormBody(ctx context.Context, view FormView) g.Node {
	snap := view.Snapshot
	switch {
	case snap.Closed:
		return P(Class("notice"), Tx(ctx, "contact.closed"))
	case snap.State == intake.StateSuccess:
		return successPanel(ctx, view)
	}

	busy := snap.Busy()
	submitURL := FormURL(snap.ID, "submit")

	return g.El("form",
		Class("lead-form__form"),
		g.Attr("method", "post"),
		g.Attr("action", submitURL),
		g.Attr("novalidate"),
		g.Attr("hx-post", submitURL),
		g.Attr("hx-target", "#"+FormContainerID(snap.ID)),
		g.Attr("hx-swap", "outerHTML"),
		g.Attr("hx-disabled-elt", "find fieldset, find button[type='submit']"),
		g.If(busy, g.Attr("aria-busy", "true")),
		Input(Type("hidden"), Name("_csrf"), Value(middleware.CSRFToken(ctx))),
		Input(Type("hidden"), Name("surface"), Value(string(snap.Surface))),
		g.If(snap.TransportFailed,
			Div(Class("notice notice--error"), g.Attr("role", "alert"),
				Strong(Tx(ctx, "contact.failure.title")),
				P(Tx(ctx, "contact.failure.body")),
			),
		),
		g.If(view.CaptchaFailed,
			Div(Class("notice notice--error"), g.Attr("role", "alert"), Tx(ctx, "contact.errors.captcha")),
		),
		g.El("fieldset",
			Class("lead-form__fields"),
			g.Attr("hx-post", FormURL(snap.ID, "fields")),
			g.Attr("hx-trigger", "input delay:300ms"),
			g.Attr("hx-include", "closest form"),
			g.Attr("hx-swap", "none"),
			g.If(busy, g.Attr("disabled")),
			Div(Class("lead-form__row"),
				textField(ctx, snap, intake.FieldName, "name", "text", "name", false),
				textField(ctx, snap, intake.FieldEmail, "email", "email", "email", false),
			),
			textField(ctx, snap, intake.FieldCompanyURL, "company_url", "url", "url", true),
			budgetField(ctx, snap),
			detailsField(ctx, snap),
			consentField(ctx, snap),
		),
		g.If(view.TurnstileSiteKey != "",
			Div(Class("cf-turnstile"), g.Attr("data-sitekey", view.TurnstileSiteKey), g.Attr("data-theme", "dark")),
		),
		SubmitButton(ctx, snap, false),
	)
}

func fieldLabel(ctx context.Context, forID, key string, optional bool) g.Node {
	return g.El("label", g.Attr("for", forID), Class("field__label"),
		Tx(ctx, "contact.labels."+key),
		g.If(optional, Span(Class("field__optional"), g.Textf(" (%s)", T(ctx, "contact.optional")))),
	)
}

func invalidAttrs(snap intake.Snapshot, field intake.Field) g.Node {
	_, visible := snap.VisibleError(field)
	return g.Group([]g.Node{
		g.Attr("aria-describedby", ErrorID(snap.ID, field)),
		g.If(visible, g.Attr("aria-invalid", "true")),
	})
}

func textField(ctx context.Context, snap intake.Snapshot, field intake.Field, key, inputType, autocomplete string, optional bool) g.Node {
	id := FieldID(snap.ID, field)
	value := map[intake.Field]string{
		intake.FieldName:       snap.Lead.Name,
		intake.FieldEmail:      snap.Lead.Email,
		intake.FieldCompanyURL: snap.Lead.CompanyURL,
	}[field]

	return Div(Class("field"),
		fieldLabel(ctx, id, key, optional),
		Input(ID(id), Type(inputType), Name(key), Value(value),
			Class("field__input"),
			Placeholder(T(ctx, "contact.placeholders."+key)),
			g.Attr("autocomplete", autocomplete),
			g.If(!optional, g.Attr("required")),
			invalidAttrs(snap, field),
		),
		FieldError(ctx, snap, field, false),
	)
}

func budgetField(ctx context.Context, snap intake.Snapshot) g.Node {
	groupID := FieldID(snap.ID, intake.FieldBudget)
	return Div(Class("field"),
		Span(ID(groupID+"-label"), Class("field__label"), Tx(ctx, "contact.labels.budget")),
		Div(ID(groupID), Class("chips"), g.Attr("role", "radiogroup"), g.Attr("aria-labelledby", groupID+"-label"),
			invalidAttrs(snap, intake.FieldBudget),
			g.Map(models.BudgetTiers, func(tier models.BudgetTier) g.Node {
				return g.El("label", Class("chip"),
					Input(Type("radio"), Name("budget"), Value(string(tier)),
						g.If(snap.Lead.Budget == tier, g.Attr("checked")),
					),
					Span(g.Text(tier.Label())),
				)
			}),
		),
		FieldError(ctx, snap, intake.FieldBudget, false),
	)
}

func detailsField(ctx context.Context, snap intake.Snapshot) g.Node {
	id := FieldID(snap.ID, intake.FieldProjectDetails)
	return Div(Class("field"),
		fieldLabel(ctx, id, "project_details", false),
		Textarea(ID(id), Name("project_details"), Class("field__input"),
			g.Attr("rows", "5"),
			g.Attr("required"),
			Placeholder(T(ctx, "contact.placeholders.project_details")),
			invalidAttrs(snap, intake.FieldProjectDetails),
			g.Text(snap.Lead.ProjectDetails),
		),
		FieldError(ctx, snap, intake.FieldProjectDetails, false),
	)
}

func consentField(ctx context.Context, snap intake.Snapshot) g.Node {
	id := FieldID(snap.ID, intake.FieldPrivacyConsent)
	return Div(Class("field field--inline"),
		Input(ID(id), Type("checkbox"), Name("privacy_consent"), Value("true"),
			g.If(snap.Lead.PrivacyConsent, g.Attr("checked")),
			g.Attr("required"),
			invalidAttrs(snap, intake.FieldPrivacyConsent),
		),
		g.El("label", g.Attr("for", id),
			Tx(ctx, "contact.labels.privacy_consent"), g.Text(" "),
			A(Href("/privacy"), g.Attr("target", "_blank"), g.Attr("rel", "noopener"), Tx(ctx, "contact.labels.privacy_link")),
		),
		FieldError(ctx, snap, intake.FieldPrivacyConsent, false),
	)
}

// FieldError is the message slot next to a field. With oob set it is rendered
// for an out-of-band swap.
func FieldError(ctx context.Context, snap intake.Snapshot, field intake.Field, oob bool) g.Node {
	reason, visible := snap.VisibleError(field)
	return P(ID(ErrorID(snap.ID, field)), Class("field__error"), g.Attr("aria-live", "polite"),
		g.If(oob, g.Attr("hx-swap-oob", "true")),
		g.If(visible, g.Text(T(ctx, reason.MessageKey()))),
	)
}

// SubmitButton is usable only while the current values pass validation.
// Full renders leave an idle button enabled for plain posts and app.js
// disables it from data-can-submit; out-of-band feedback sets disabled itself.
func SubmitButton(ctx context.Context, snap intake.Snapshot, oob bool) g.Node {
	label := "contact.submit"
	if snap.TransportFailed {
		label = "contact.failure.retry"
	}
	canSubmit := snap.CanSubmit()
	disabled := !canSubmit && (oob || snap.Busy() || snap.Closed)
	return Button(ID(SubmitID(snap.ID)), Type("submit"), Class("btn btn--primary lead-form__submit"),
		g.If(oob, g.Attr("hx-swap-oob", "true")),
		g.Attr("data-can-submit", strconv.FormatBool(canSubmit)),
		g.If(disabled, g.Attr("disabled")),
		Span(Class("when-idle"), Tx(ctx, label)),
		Span(Class("when-busy"), g.Attr("aria-hidden", "true"), Tx(ctx, "contact.submitting")),
	)
}

// FieldFeedback is the response to a field update: fresh error slots and the
// submit button, swapped out of band so the inputs keep focus.
func FieldFeedback(ctx context.Context, snap intake.Snapshot) g.Node {
	nodes := make([]g.Node, 0, len(intake.Fields)+1)
	for _, field := range intake.Fields {
		nodes = append(nodes, FieldError(ctx, snap, field, true))
	}
	nodes = append(nodes, SubmitButton(ctx, snap, true))
	return g.Group(nodes)
}

func successPanel(ctx context.Context, view FormView) g.Node {
	snap := view.Snapshot
	delay := view.ResetDelay
	if delay <= 0 {
		delay = intake.DefaultResetDelay
	}
	ref := ""
	if snap.Ack != nil {
		ref = snap.Ack.Reference
	}

	return Div(Class("lead-form__success"), g.Attr("role", "status"),
		Span(Class("lead-form__check"), g.Attr("aria-hidden", "true"), g.Text("✓")),
		H3(Tx(ctx, "contact.success.title")),
		P(Tx(ctx, "contact.success.body", map[string]interface{}{"name": snap.Lead.Name})),
		g.If(ref != "", P(Class("muted mono"), Tx(ctx, "contact.success.reference", map[string]interface{}{"ref": ref}))),
		Div(
			g.Attr("hx-get", fmt.Sprintf("%s?surface=%s", FormURL(snap.ID, ""), snap.Surface)),
			g.Attr("hx-trigger", fmt.Sprintf("load delay:%dms", delay.Milliseconds())),
			g.Attr("hx-target", "#"+FormContainerID(snap.ID)),
			g.Attr("hx-swap", "outerHTML"),
		),
	)
}

// ContactSection is the inline placement on the home page
func ContactSection(ctx context.Context, company models.Company, view FormView) g.Node {
	return Section(ID("contact"), Class("section contact"),
		Div(Class("container contact__grid"),
			Div(Class("contact__intro"),
				H2(Class("section__title"), Tx(ctx, "contact.title")),
				P(Class("section__subtitle"), Tx(ctx, "contact.subtitle")),
				Ul(Class("checklist"),
					g.Map(company.TrustPoints, func(p string) g.Node { return Li(g.Text(p)) }),
				),
				P(Class("muted"), Tx(ctx, "contact.direct", map[string]interface{}{"email": company.Email})),
			),
			LeadForm(ctx, view),
		),
	)
}

// ContactModal is the dialog placement opened from the navigation
func ContactModal(ctx context.Context, view FormView) g.Node {
	id := view.Snapshot.ID
	titleID := id + "-title"
	return g.El("dialog", ID("contact-modal-"+id), Class("modal"),
		g.Attr("aria-labelledby", titleID),
		g.Attr("data-close-url", FormURL(id, "close")),
		Div(Class("modal__header"),
			H2(ID(titleID), Tx(ctx, "contact.modal_title")),
			Button(Type("button"), Class("modal__close"),
				g.Attr("aria-label", T(ctx, "contact.close")),
				g.Attr("hx-post", FormURL(id, "close")),
				g.Attr("hx-target", "#modal-root"),
				g.Attr("hx-swap", "innerHTML"),
				g.Text("×"),
			),
		),
		LeadForm(ctx, view),
	)
}
