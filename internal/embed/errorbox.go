package embed

import (
	"fmt"
	"html"
	"strings"
)

// errorBoxTemplate is deliberately self-contained: it must render
// legibly even when the site's stylesheets and the viewer assets never
// arrive.
const errorBoxTemplate = `<div class="drawio-error" style="border:2px solid #d32f2f;border-radius:4px;background-color:#fdecea;color:#611a15;padding:12px 16px;font-family:sans-serif;">` +
	`<strong>Could not embed diagram &quot;%s&quot;</strong>%s</div>`

// ErrorBox renders the inline artifact shown in place of a diagram
// embed when the source cannot be used. The requested and available
// page lists are included when known, so the reader can see what was
// asked for versus what the file contains.
func ErrorBox(source string, requested, available []string) string {
	var detail strings.Builder
	if len(requested) > 0 {
		fmt.Fprintf(&detail, `<br>requested pages: %s`, html.EscapeString(strings.Join(requested, ", ")))
	}
	if len(available) > 0 {
		fmt.Fprintf(&detail, `<br>available pages: %s`, html.EscapeString(strings.Join(available, ", ")))
	}
	return fmt.Sprintf(errorBoxTemplate, html.EscapeString(source), detail.String())
}
