package components

import (
	"context"
	"strings"

	"binarybyte_site/middleware"
	"binarybyte_site/models"
	"binarybyte_site/services/i18n"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// PageMeta is what every full page needs besides its body
type PageMeta struct {
	SEO              *models.SEO
	Company          models.Company
	AppURL           string
	Path             string
	TurnstileSiteKey string
}

// Layout wraps page sections in the document shell: head metadata, navigation,
// footer, and the roots the contact modal and toasts are swapped into.
func Layout(ctx context.Context, meta PageMeta, children ...g.Node) g.Node {
	nonce := middleware.GetNonce(ctx)
	lang := i18n.GetLocale(ctx)

	return Doctype(
		HTML(
			Lang(lang),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				Meta(Name("csrf-token"), Content(middleware.CSRFToken(ctx))),
				g.El("title", g.Text(meta.SEO.Title)),
				seoTags(meta),
				Link(Rel("icon"), Type("image/svg+xml"), Href(middleware.AssetURL("images/favicon.svg"))),
				Link(Rel("preconnect"), Href("https://fonts.googleapis.com")),
				Link(Rel("stylesheet"), Href("https://fonts.googleapis.com/css2?family=Inter:wght@400;500;700;900&family=JetBrains+Mono:wght@400;700&display=swap")),
				Link(Rel("stylesheet"), Href(middleware.AssetURL("css/site.css"))),
				Script(Src(htmxSrc), g.Attr("nonce", nonce), g.Attr("defer")),
				Script(Src(middleware.AssetURL("js/app.js")), g.Attr("nonce", nonce), g.Attr("defer")),
				g.If(meta.TurnstileSiteKey != "",
					Script(Src("https://challenges.cloudflare.com/turnstile/v0/api.js?render=explicit"), g.Attr("nonce", nonce), g.Attr("async"), g.Attr("defer")),
				),
				Script(Type("application/ld+json"), g.Attr("nonce", nonce), g.Raw(organizationJSONLD(meta))),
			),
			Body(
				g.Attr("hx-headers", JSON(map[string]string{"X-CSRF-Token": middleware.CSRFToken(ctx)})),
				A(Class("skip-link"), Href("#main"), g.Text("Skip to content")),
				SiteNav(ctx, meta),
				Main(ID("main"), g.Group(children)),
				SiteFooter(ctx, meta.Company),
				Div(ID("modal-root")),
				Div(ID("toast"), Class("toast"), g.Attr("aria-live", "polite")),
			),
		),
	)
}

func seoTags(meta PageMeta) g.Node {
	seo := meta.SEO
	nodes := []g.Node{
		Meta(Name("description"), Content(seo.Description)),
		Meta(g.Attr("property", "og:title"), Content(seo.GetOGTitle())),
		Meta(g.Attr("property", "og:description"), Content(seo.GetOGDesc())),
		Meta(g.Attr("property", "og:type"), Content(seo.OGType)),
		Meta(g.Attr("property", "og:locale"), Content(seo.Locale)),
		Meta(Name("twitter:card"), Content(seo.TwitterCard)),
		Meta(Name("twitter:title"), Content(seo.GetOGTitle())),
		Meta(Name("twitter:description"), Content(seo.GetOGDesc())),
	}
	if seo.NoIndex {
		nodes = append(nodes, Meta(Name("robots"), Content("noindex, nofollow")))
	}
	if seo.Canonical != "" {
		nodes = append(nodes,
			Link(Rel("canonical"), Href(seo.Canonical)),
			Meta(g.Attr("property", "og:url"), Content(seo.Canonical)),
		)
		for _, alt := range seo.AltLocales {
			nodes = append(nodes, Link(Rel("alternate"), g.Attr("hreflang", alt), Href(seo.Canonical+"?lang="+alt)))
		}
	}
	if seo.OGImage != "" {
		nodes = append(nodes,
			Meta(g.Attr("property", "og:image"), Content(seo.OGImage)),
			Meta(Name("twitter:image"), Content(seo.OGImage)),
		)
	}
	return g.Group(nodes)
}

// organizationJSONLD renders schema.org data. "</" is escaped so the payload
// cannot close the script element.
func organizationJSONLD(meta PageMeta) string {
	address := map[string]string{
		"@type":           "PostalAddress",
		"addressLocality": meta.Company.Location,
	}
	data := map[string]interface{}{
		"@context":  "https://schema.org",
		"@type":     "Organization",
		"name":      meta.Company.Name,
		"url":       meta.AppURL,
		"email":     meta.Company.Email,
		"telephone": meta.Company.Phone,
		"address":   address,
	}
	return strings.ReplaceAll(JSON(data), "</", `<\/`)
}
