package devserver

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/nextdev-go/nextvfs/pkg/router"
)

// diagnosticShell renders the minimal HTML shell the dev server owns
// around a resolution: since the real React renderer is an out-of-scope
// peer (spec.md §1), this shell reports what was resolved — the page,
// its layout chain and params, and any Tailwind snippet — rather than
// producing production markup. It implements templ.Component directly
// via templ.ComponentFunc rather than through generated code, the same
// contract pkg/fuego/context.go's Render/RenderOK consume.
func diagnosticShell(pathname string, route *router.Route, pageFile string, tailwindScript string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var body strings.Builder

		body.WriteString("<!doctype html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
		body.WriteString(fmt.Sprintf("<title>%s</title>\n", html.EscapeString(pathname)))
		if tailwindScript != "" {
			body.WriteString(tailwindScript)
			body.WriteByte('\n')
		}
		body.WriteString("</head>\n<body>\n")
		body.WriteString(fmt.Sprintf("<!-- resolved: %s -->\n", html.EscapeString(pathname)))

		switch {
		case route != nil:
			body.WriteString(fmt.Sprintf("<div data-page=%q>\n", route.Page))
			for _, layout := range route.Layouts {
				body.WriteString(fmt.Sprintf("  <div data-layout=%q>\n", layout))
			}
			body.WriteString(fmt.Sprintf("  <!-- params: %v -->\n", route.Params))
			for range route.Layouts {
				body.WriteString("  </div>\n")
			}
			body.WriteString("</div>\n")
		case pageFile != "":
			body.WriteString(fmt.Sprintf("<div data-page=%q></div>\n", pageFile))
		default:
			body.WriteString("<div data-not-found=\"true\"></div>\n")
		}

		body.WriteString("</body>\n</html>\n")

		_, err := io.WriteString(w, body.String())
		return err
	})
}
