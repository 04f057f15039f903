package pages

import (
	"context"

	"binarybyte_site/templates/components"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Home renders the landing page with its inline contact form
func Home(vm HomeViewModel) templ.Component {
	return components.Component(func(ctx context.Context) g.Node {
		content := vm.Content
		return components.Layout(ctx, vm.Meta,
			components.Hero(ctx, content.Company),
			components.ProofBar(ctx, content),
			components.ServicesSection(ctx, content.Services),
			components.FeaturedWork(ctx, content.FeaturedCaseStudies()),
			components.TeamSection(ctx, content.Team),
			components.AboutSection(ctx, content),
			components.ContactSection(ctx, content.Company, vm.Form),
		)
	})
}
