package components

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/mcoot/cornergame/internal/model"
)

// Board renders the grid top row first. Cells inside hint are marked.
func Board(b *model.Board, hint *model.Bounds) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		fmt.Fprintf(&sb, `<table class="board" id="board" data-size="%d">`, b.Size())
		for y := b.Size() - 1; y >= 0; y-- {
			fmt.Fprintf(&sb, `<tr data-y="%d">`, y)
			for x := 0; x < b.Size(); x++ {
				color := b.ColorAt(x, y)
				classes := "color-" + color.String()
				if hint != nil && hint.Contains(model.Coordinate{X: x, Y: y}) {
					classes += " hint"
				}
				fmt.Fprintf(&sb, `<td class="%s" data-x="%d" data-y="%d">%c</td>`,
					templ.EscapeString(classes), x, y, color.Letter())
			}
			sb.WriteString("</tr>")
		}
		sb.WriteString("</table>")
		_, err := io.WriteString(w, sb.String())
		return err
	})
}
