package embed

import (
	"bytes"
	"context"
	"html"
	"log/slog"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/ziadkadry99/drawio-embed/internal/config"
)

// captionMD renders caption text. Captions are short inline Markdown;
// no extensions are needed.
var captionMD = goldmark.New()

// Caption composes the figcaption fragment for one embed, or returns ""
// when no caption applies.
//
// An explicit data-caption wins. Otherwise the caption is assembled
// from the enabled parts: the diagram source stem and the selected page
// labels, joined by the configured separator. Each part can be toggled
// with a boolean attribute value or replaced outright with a literal
// one. The editor link, when present, is appended as an inline anchor.
func Caption(ctx context.Context, cfg *config.CaptionConfig, attrs map[string]string, sourceStem string, pageLabels []string, editURL string) string {
	prefix := cfg.Prefix
	if v, ok := attrs["data-caption-prefix"]; ok {
		prefix = v
	}
	separator := cfg.Separator
	if v, ok := attrs["data-caption-separator"]; ok {
		separator = v
	}

	var text string
	if explicit, ok := attrs["data-caption"]; ok && explicit != "" {
		text = explicit
	} else {
		var parts []string
		if part, ok := captionPart(attrs["data-caption-source"], cfg.Source, sourceStem); ok {
			parts = append(parts, part)
		}
		if part, ok := captionPart(attrs["data-caption-pages"], cfg.Pages, strings.Join(pageLabels, ", ")); ok {
			parts = append(parts, part)
		}
		text = strings.Join(parts, separator)
	}

	if text == "" {
		if editURL == "" {
			return ""
		}
		// An editor link with no caption text still gets a caption
		// element to live in.
		return `<figcaption class="drawio-caption">` + editAnchor(editURL) + `</figcaption>`
	}

	rendered := renderInline(ctx, prefix+text)
	if editURL != "" {
		rendered += " " + editAnchor(editURL)
	}
	return `<figcaption class="drawio-caption">` + rendered + `</figcaption>`
}

// captionPart decides one caption part: an empty override keeps the
// configured default, a boolean spelling toggles the part, and any
// other value replaces the part's text.
func captionPart(override string, enabled bool, text string) (string, bool) {
	if override != "" {
		switch strings.ToLower(override) {
		case "true", "1", "yes":
			enabled = true
		case "false", "0", "no":
			enabled = false
		default:
			return override, true
		}
	}
	if !enabled || text == "" {
		return "", false
	}
	return text, true
}

func editAnchor(editURL string) string {
	return `<a class="drawio-edit" href="` + html.EscapeString(editURL) + `" target="_blank" rel="noopener">edit</a>`
}

// renderInline converts caption Markdown to HTML and unwraps the
// enclosing paragraph goldmark produces for a single line.
func renderInline(ctx context.Context, text string) string {
	var buf bytes.Buffer
	if err := captionMD.Convert([]byte(text), &buf); err != nil {
		slog.WarnContext(ctx, "could not render caption markdown", "reason", err)
		return html.EscapeString(text)
	}
	out := strings.TrimSpace(buf.String())
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return out
}
