package pages

import (
	"context"

	"binarybyte_site/models"
	"binarybyte_site/templates/components"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// CaseStudies renders the case study index
func CaseStudies(meta components.PageMeta, studies []models.CaseStudy) templ.Component {
	return components.Component(func(ctx context.Context) g.Node {
		return components.Layout(ctx, meta,
			Section(Class("section page-header"),
				Div(Class("container"),
					H1(Class("section__title"), components.Tx(ctx, "case_studies.title")),
					P(Class("section__subtitle"), components.Tx(ctx, "case_studies.subtitle")),
				),
			),
			Section(Class("section"),
				Div(Class("container grid grid--3"),
					g.Map(studies, func(cs models.CaseStudy) g.Node { return components.CaseStudyCard(ctx, cs) }),
				),
			),
		)
	})
}

// CaseStudy renders one engagement: challenge, solution, results and lessons
func CaseStudy(vm CaseStudyViewModel) templ.Component {
	return components.Component(func(ctx context.Context) g.Node {
		cs := vm.Study
		return components.Layout(ctx, vm.Meta,
			Article(Class("case-study"),
				Section(Class("section page-header"),
					Div(Class("container"),
						A(Class("link-back mono"), Href("/case-studies"), g.Text("← "), components.Tx(ctx, "case_studies.back")),
						P(Class("hero__kicker mono"), g.Text(cs.Niche)),
						H1(Class("section__title"), g.Text(cs.Title)),
						g.If(cs.Subtitle != "", P(Class("section__subtitle"), g.Text(cs.Subtitle))),
					),
				),
				Section(Class("section"),
					Div(Class("container case-study__grid"),
						Div(Class("case-study__body"),
							H2(components.Tx(ctx, "case_studies.challenge")),
							P(g.Text(cs.Challenge)),
							H2(components.Tx(ctx, "case_studies.solution")),
							P(g.Text(cs.Solution)),
							H2(components.Tx(ctx, "case_studies.results")),
							Div(Class("grid grid--3"),
								g.Map(cs.Results, func(r models.CaseResult) g.Node {
									return Div(Class("card stat"),
										Span(Class("stat__value"), g.Text(r.Value)),
										Span(Class("stat__label mono"), g.Text(r.Metric)),
										P(g.Text(r.Description)),
									)
								}),
							),
							g.If(len(cs.Lessons) > 0, g.Group([]g.Node{
								H2(components.Tx(ctx, "case_studies.lessons")),
								Ul(Class("lessons"),
									g.Map(cs.Lessons, func(l models.CaseLesson) g.Node {
										return Li(Strong(g.Text(l.Title)), g.Text(" "), g.Text(l.Description))
									}),
								),
							})),
						),
						Aside(Class("card case-study__specs"),
							H2(components.Tx(ctx, "case_studies.specs")),
							specRow(ctx, "case_studies.industry", cs.Niche),
							specRow(ctx, "case_studies.region", cs.ClientRegion),
							specRow(ctx, "case_studies.duration", cs.Duration),
							P(Class("stat__label mono"), components.Tx(ctx, "case_studies.stack")),
							Ul(Class("tags"),
								g.Map(cs.Stack, func(s string) g.Node { return Li(Class("tag mono"), g.Text(s)) }),
							),
						),
					),
				),
				Section(Class("section section--alt"),
					Div(Class("container cta"),
						H2(components.Tx(ctx, "case_studies.cta_title")),
						P(components.Tx(ctx, "case_studies.cta_body")),
						components.ContactModalTrigger(ctx, "btn btn--primary btn--lg", components.T(ctx, "nav.start_project")),
					),
				),
				g.If(len(vm.More) > 0,
					Section(Class("section"),
						Div(Class("container grid grid--3"),
							g.Map(vm.More, func(other models.CaseStudy) g.Node { return components.CaseStudyCard(ctx, other) }),
						),
					),
				),
			),
		)
	})
}

func specRow(ctx context.Context, labelKey, value string) g.Node {
	if value == "" {
		return nil
	}
	return Dl(Class("facts"),
		Dt(Class("stat__label mono"), components.Tx(ctx, labelKey)),
		Dd(g.Text(value)),
	)
}
