package components

import (
	"context"
	"fmt"
	"time"

	"binarybyte_site/models"
	"binarybyte_site/services/i18n"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type navLink struct {
	href string
	key  string
}

var navLinks = []navLink{
	{"/#services", "nav.services"},
	{"/#work", "nav.work"},
	{"/case-studies", "nav.case_studies"},
	{"/#team", "nav.team"},
	{"/#about", "nav.about"},
}

// SiteNav is the top navigation. "Start a Project" opens a fresh modal form
// instance and falls back to the inline section without JavaScript.
func SiteNav(ctx context.Context, meta PageMeta) g.Node {
	current := i18n.GetLocale(ctx)

	return Header(Class("site-nav"),
		Nav(Class("site-nav__inner container"), g.Attr("aria-label", "Main"),
			A(Class("site-nav__logo"), Href("/"),
				Span(Class("logo-mark"), g.Text("01")),
				Span(g.Text(meta.Company.Name)),
			),
			Ul(Class("site-nav__links"),
				g.Map(navLinks, func(l navLink) g.Node {
					return Li(A(Href(l.href), Tx(ctx, l.key)))
				}),
			),
			Div(Class("site-nav__actions"),
				Div(Class("lang-switch"), g.Attr("role", "group"), g.Attr("aria-label", T(ctx, "nav.language")),
					g.Map(i18n.Languages(), func(lang string) g.Node {
						return A(
							Href(fmt.Sprintf("%s?lang=%s", meta.Path, lang)),
							g.If(lang == current, g.Attr("aria-current", "true")),
							g.Text(lang),
						)
					}),
				),
				ContactModalTrigger(ctx, "btn btn--primary", T(ctx, "nav.start_project")),
			),
		),
	)
}

// ContactModalTrigger renders a link that opens the contact modal
func ContactModalTrigger(ctx context.Context, class, label string) g.Node {
	return A(Class(class), Href("/#contact"),
		g.Attr("hx-get", "/contact/modal"),
		g.Attr("hx-target", "#modal-root"),
		g.Attr("hx-swap", "innerHTML"),
		g.Text(label),
	)
}

// SiteFooter renders company details and legal links
func SiteFooter(ctx context.Context, company models.Company) g.Node {
	return Footer(Class("site-footer"),
		Div(Class("site-footer__grid container"),
			Div(
				A(Class("site-nav__logo"), Href("/"),
					Span(Class("logo-mark"), g.Text("01")),
					Span(g.Text(company.Name)),
				),
				P(Class("muted"), Tx(ctx, "footer.tagline")),
			),
			Div(
				H3(Tx(ctx, "footer.quick_links")),
				Ul(
					g.Map(navLinks, func(l navLink) g.Node {
						return Li(A(Href(l.href), Tx(ctx, l.key)))
					}),
					Li(A(Href("/#contact"), Tx(ctx, "nav.contact"))),
				),
			),
			Div(
				H3(Tx(ctx, "footer.get_in_touch")),
				Ul(
					Li(A(Href("mailto:"+company.Email), g.Text(company.Email))),
					g.If(company.Phone != "", Li(A(Href("tel:"+phoneHref(company.Phone)), g.Text(company.Phone)))),
					Li(Class("muted"), g.Text(company.Location)),
				),
			),
		),
		Div(Class("site-footer__bottom container"),
			P(Class("muted"), g.Textf("© %d %s. %s", time.Now().Year(), company.Name, T(ctx, "footer.rights"))),
			Div(Class("site-footer__legal"),
				A(Href("/privacy"), Tx(ctx, "footer.privacy")),
				A(Href("/terms"), Tx(ctx, "footer.terms")),
			),
		),
	)
}

func phoneHref(phone string) string {
	out := make([]rune, 0, len(phone))
	for _, r := range phone {
		if r == '+' || (r >= '0' && r <= '9') {
			out = append(out, r)
		}
	}
	return string(out)
}
