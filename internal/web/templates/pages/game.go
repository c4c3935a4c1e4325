package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/cornergame/internal/model"
	"github.com/mcoot/cornergame/internal/web/templates/components"
	"github.com/mcoot/cornergame/internal/web/templates/layout"
)

// Game is the read-only status page for one round
func Game(g *model.GameState) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Round <span id="game-id">`+templ.EscapeString(string(g.ID))+`</span></h1>`); err != nil {
			return err
		}
		if err := components.RoundStats(g).Render(ctx, w); err != nil {
			return err
		}
		if g.CheatSeen {
			if _, err := io.WriteString(w, `<p id="cheat-seen">A hint was used this round.</p>`); err != nil {
				return err
			}
		}
		return components.Board(g.Board, g.Wiggled).Render(ctx, w)
	})
	return layout.Base("Round "+string(g.ID), body)
}
