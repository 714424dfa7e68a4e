// Package assets holds the static files patched sites need and writes
// them into the output directory.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// CSSHref and JSHref are the site-absolute paths patched pages
// reference; Write places the matching files.
const (
	CSSHref = "/drawio/drawio.css"
	JSHref  = "/drawio/drawio.js"
)

const cssContent = `/* drawio-embed */
.drawio-figure {
  margin: 1em 0;
  text-align: center;
}
.drawio-figure .mxgraph {
  margin: 0 auto;
}
.drawio-caption {
  margin-top: 0.5em;
  font-size: 0.85em;
  color: #666;
}
.drawio-caption a.drawio-edit {
  margin-left: 0.5em;
  text-decoration: none;
}
.drawio-error {
  margin: 1em 0;
}
`

const jsContent = `/* drawio-embed bootstrap */
(function () {
  function render() {
    if (typeof GraphViewer !== "undefined" && GraphViewer.processElements) {
      GraphViewer.processElements();
    }
  }
  if (document.readyState === "loading") {
    document.addEventListener("DOMContentLoaded", render);
  } else {
    render();
  }
})();
`

// Write places the stylesheet and bootstrap script under
// siteDir/drawio/.
func Write(siteDir string) error {
	dir := filepath.Join(siteDir, "drawio")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("assets: creating %s: %w", dir, err)
	}
	for name, content := range map[string]string{
		"drawio.css": cssContent,
		"drawio.js":  jsContent,
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			return fmt.Errorf("assets: writing %s: %w", name, err)
		}
	}
	return nil
}
