package components

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/cornergame/internal/model"
)

// RoundStats renders the round's phase, score and clock
func RoundStats(g *model.GameState) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<dl class="stats">`+
			`<dt>Phase</dt><dd id="phase">%s</dd>`+
			`<dt>Score</dt><dd id="score">%d</dd>`+
			`<dt>Time left</dt><dd id="remaining">%.1fs</dd>`+
			`<dt>Elapsed</dt><dd id="elapsed">%.1fs</dd>`+
			`<dt>Selections</dt><dd id="selections">%d</dd>`+
			`<dt>Perfects</dt><dd id="perfects">%d</dd>`+
			`</dl>`,
			templ.EscapeString(string(g.Phase())), g.Score, g.RemainingTime, g.ElapsedTime, g.Selections, g.Perfects)
		return err
	})
}
