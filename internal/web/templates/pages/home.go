package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/cornergame/internal/web/templates/layout"
)

// Home explains where rounds are played and lets a visitor look one up
func Home() templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<h1>Corner Game</h1>`+
			`<p>Pick four balls of one color that sit on the corners of a rectangle. `+
			`Rounds are played through the API or the <code>cgame</code> CLI.</p>`+
			`<form id="lookup" method="get" action="/games">`+
			`<label for="id">Round ID</label> <input id="id" name="id" type="text"> `+
			`<button type="submit">View</button></form>`)
		return err
	})
	return layout.Base("Home", body)
}
