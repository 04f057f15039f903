package pages

import (
	"context"

	"binarybyte_site/models"
	"binarybyte_site/templates/components"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Legal renders a policy document such as the privacy policy
func Legal(meta components.PageMeta, doc models.LegalDoc) templ.Component {
	return components.Component(func(ctx context.Context) g.Node {
		return components.Layout(ctx, meta,
			Article(Class("section legal"),
				Div(Class("container container--narrow"),
					H1(Class("section__title"), g.Text(doc.Title)),
					P(Class("muted mono"), components.Tx(ctx, "legal.last_updated", map[string]interface{}{"date": doc.LastUpdated})),
					g.Map(doc.Sections, func(s models.LegalSection) g.Node {
						return Section(
							H2(g.Text(s.Heading)),
							g.Map(s.Paragraphs, func(p string) g.Node { return P(g.Text(p)) }),
							g.If(len(s.Items) > 0, Ul(
								g.Map(s.Items, func(item string) g.Node { return Li(g.Text(item)) }),
							)),
						)
					}),
				),
			),
		)
	})
}

// NotFound is shown for unknown routes and case study slugs
func NotFound(meta components.PageMeta) templ.Component {
	return components.Component(func(ctx context.Context) g.Node {
		return components.Layout(ctx, meta,
			Section(Class("section not-found"),
				Div(Class("container"),
					P(Class("not-found__code mono"), components.Tx(ctx, "not_found.code")),
					H1(Class("section__title"), components.Tx(ctx, "not_found.title")),
					P(Class("section__subtitle"), components.Tx(ctx, "not_found.body")),
					A(Class("btn btn--primary"), Href("/"), components.Tx(ctx, "not_found.home")),
				),
			),
		)
	})
}
