package components

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func TestComponent(t *testing.T) {
	c := Component(func(ctx context.Context) g.Node {
		return P(Class("x"), g.Text("<hello>"))
	})

	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	assert.Equal(t, `<p class="x">&lt;hello&gt;</p>`, buf.String())
}

func TestJSON(t *testing.T) {
	assert.Equal(t, `{"X-CSRF-Token":"abc"}`, JSON(map[string]string{"X-CSRF-Token": "abc"}))
	assert.Equal(t, "{}", JSON(make(chan int)))
}
