package components

import (
	"context"
	"io"

	"binarybyte_site/services/i18n"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Component adapts a context-aware node builder to templ.Component so
// handlers render every page and fragment the same way.
func Component(build func(ctx context.Context) g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return build(ctx).Render(w)
	})
}

// T is a shorthand for i18n.T inside node builders
func T(ctx context.Context, key string, args ...map[string]interface{}) string {
	return i18n.T(ctx, key, args...)
}

// Tx renders a translated text node
func Tx(ctx context.Context, key string, args ...map[string]interface{}) g.Node {
	return g.Text(i18n.T(ctx, key, args...))
}
