package components

import (
	"context"

	"binarybyte_site/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func sectionHeader(ctx context.Context, titleKey, subtitleKey string) g.Node {
	return Div(Class("section__header"),
		H2(Class("section__title"), Tx(ctx, titleKey)),
		g.If(subtitleKey != "", P(Class("section__subtitle"), Tx(ctx, subtitleKey))),
	)
}

func tags(values []string) g.Node {
	return Ul(Class("tags"),
		g.Map(values, func(v string) g.Node { return Li(Class("tag mono"), g.Text(v)) }),
	)
}

// Hero is the first screen of the home page
func Hero(ctx context.Context, company models.Company) g.Node {
	return Section(ID("top"), Class("hero"),
		Div(Class("container hero__inner"),
			P(Class("hero__kicker mono"), Tx(ctx, "hero.kicker")),
			H1(Class("hero__title"), Tx(ctx, "hero.title")),
			P(Class("hero__subtitle"), Tx(ctx, "hero.subtitle")),
			P(Class("hero__description"), g.Text(company.Description)),
			Div(Class("hero__actions"),
				ContactModalTrigger(ctx, "btn btn--primary btn--lg", T(ctx, "hero.cta")),
				A(Class("btn btn--ghost btn--lg"), Href("#work"), Tx(ctx, "hero.secondary")),
			),
		),
	)
}

// ProofBar is the scrolling technology strip with the headline numbers
func ProofBar(ctx context.Context, content *models.SiteContent) g.Node {
	return Section(Class("proof"), g.Attr("aria-label", T(ctx, "proof.title")),
		Div(Class("marquee"), g.Attr("aria-hidden", "true"),
			Div(Class("marquee__track mono"),
				// Rendered twice so the CSS loop has no gap
				g.Map(append(append([]string{}, content.TechStack...), content.TechStack...), func(tech string) g.Node {
					return Span(Class("marquee__item"), g.Text(tech))
				}),
			),
		),
		Div(Class("container stats"),
			g.Map(content.ProofStats, func(s models.ProofStat) g.Node {
				return Div(Class("stat"),
					Span(Class("stat__value"), g.Text(s.Value)),
					Span(Class("stat__label mono"), g.Text(s.Label)),
				)
			}),
		),
	)
}

// ServicesSection lists the service offerings as a bento grid
func ServicesSection(ctx context.Context, services []models.Service) g.Node {
	return Section(ID("services"), Class("section"),
		Div(Class("container"),
			sectionHeader(ctx, "services.title", "services.subtitle"),
			Div(Class("bento"),
				g.Map(services, func(s models.Service) g.Node {
					cls := "card"
					if s.Wide {
						cls += " card--wide"
					}
					return Article(Class(cls),
						H3(Class("card__title"), g.Text(s.Headline)),
						P(g.Text(s.Body)),
						tags(s.TechTags),
					)
				}),
			),
		),
	)
}

// CaseStudyCard links to a case study detail page
func CaseStudyCard(ctx context.Context, cs models.CaseStudy) g.Node {
	return Article(Class("card case-card"),
		P(Class("case-card__niche mono"), g.Text(cs.Niche)),
		H3(Class("card__title"), A(Href("/case-studies/"+cs.Slug), g.Text(cs.Title))),
		P(g.Text(cs.Summary)),
		g.If(len(cs.Results) > 0,
			Div(Class("case-card__metric"),
				Span(Class("stat__value"), g.Text(cs.Results[0].Value)),
				Span(Class("stat__label mono"), g.Text(cs.Results[0].Metric)),
			),
		),
		A(Class("link-arrow"), Href("/case-studies/"+cs.Slug), Tx(ctx, "work.read")),
	)
}

// FeaturedWork shows the case studies flagged for the home page
func FeaturedWork(ctx context.Context, studies []models.CaseStudy) g.Node {
	return Section(ID("work"), Class("section section--alt"),
		Div(Class("container"),
			sectionHeader(ctx, "work.title", "work.subtitle"),
			Div(Class("grid grid--3"),
				g.Map(studies, func(cs models.CaseStudy) g.Node { return CaseStudyCard(ctx, cs) }),
			),
			P(Class("section__more"), A(Class("btn btn--ghost"), Href("/case-studies"), Tx(ctx, "work.all"))),
		),
	)
}

// TeamSection introduces the people behind the firm
func TeamSection(ctx context.Context, team []models.TeamMember) g.Node {
	return Section(ID("team"), Class("section"),
		Div(Class("container"),
			sectionHeader(ctx, "team.title", "team.subtitle"),
			Div(Class("grid grid--4"),
				g.Map(team, func(m models.TeamMember) g.Node {
					return Article(Class("card team-card"),
						Span(Class("team-card__avatar"), g.Attr("aria-hidden", "true"), g.Text(initials(m.Name))),
						H3(Class("card__title"), g.Text(m.Name)),
						P(Class("team-card__role mono"), g.Text(m.Role)),
						P(g.Text(m.Bio)),
						tags(m.Skills),
						g.If(m.Email != "", A(Class("link-arrow"), Href("mailto:"+m.Email), g.Text(m.Email))),
					)
				}),
			),
		),
	)
}

// AboutSection tells the firm story and its values
func AboutSection(ctx context.Context, content *models.SiteContent) g.Node {
	return Section(ID("about"), Class("section section--alt"),
		Div(Class("container about"),
			sectionHeader(ctx, "about.title", "about.subtitle"),
			Div(Class("about__story"),
				H3(Tx(ctx, "about.story")),
				g.Map(content.Company.About, func(p string) g.Node { return P(g.Text(p)) }),
			),
			Div(Class("grid grid--2"),
				g.Map(content.Values, func(v models.Value) g.Node {
					return Div(Class("card"),
						H3(Class("card__title"), g.Text(v.Title)),
						P(g.Text(v.Description)),
					)
				}),
			),
		),
	)
}

func initials(name string) string {
	var out []rune
	start := true
	for _, r := range name {
		if r == ' ' {
			start = true
			continue
		}
		if start {
			out = append(out, r)
			start = false
		}
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}
