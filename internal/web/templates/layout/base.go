package layout

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const stylesheet = `
body { font-family: sans-serif; margin: 2rem; }
table.board { border-collapse: collapse; }
table.board td { width: 2rem; height: 2rem; text-align: center; border: 1px solid #ccc; }
td.color-red { background: #e74c3c; }
td.color-blue { background: #3498db; }
td.color-green { background: #2ecc71; }
td.color-yellow { background: #f1c40f; }
td.hint { outline: 3px dashed #333; }
dl.stats dt { font-weight: bold; }
`

// Base wraps a page body in the shared HTML document
func Base(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!DOCTYPE html><html><head><meta charset=\"utf-8\"><title>"+
			templ.EscapeString(title)+" - Corner Game</title><style>"+stylesheet+"</style></head><body>"); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}
