package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/cornergame/internal/web/templates/layout"
)

// Error is a plain error page with a link home
func Error(title, message string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<h1>`+templ.EscapeString(title)+`</h1>`+
			`<p class="error">`+templ.EscapeString(message)+`</p>`+
			`<p><a href="/">Return to home</a></p>`)
		return err
	})
	return layout.Base(title, body)
}
