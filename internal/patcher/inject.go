package patcher

import (
	"html"
	"strings"

	"github.com/ziadkadry99/drawio-embed/internal/assets"
)

// injectAssets adds the stylesheet link and the viewer scripts to a
// page that received at least one embed. Pages already carrying the
// tags (for example on a second patch run) are left alone.
func (p *Patcher) injectAssets(content string) string {
	if strings.Contains(content, assets.CSSHref) {
		return content
	}

	link := `<link rel="stylesheet" href="` + assets.CSSHref + `">`
	scripts := `<script defer src="` + assets.JSHref + `"></script>` +
		`<script defer src="` + html.EscapeString(p.cfg.ViewerURL) + `"></script>`

	content = insertBefore(content, "</head>", link)
	content = insertBefore(content, "</body>", scripts)
	return content
}

// insertBefore inserts fragment ahead of the first case-insensitive
// occurrence of marker, or appends it when the marker is missing.
func insertBefore(content, marker, fragment string) string {
	idx := strings.Index(strings.ToLower(content), marker)
	if idx < 0 {
		return content + fragment
	}
	return content[:idx] + fragment + content[idx:]
}
