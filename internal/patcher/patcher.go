// Package patcher rewrites rendered HTML pages, replacing diagram image
// references with interactive viewer embeds.
package patcher

import (
	"context"
	"log/slog"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/ziadkadry99/drawio-embed/internal/config"
	"github.com/ziadkadry99/drawio-embed/internal/drawio"
	"github.com/ziadkadry99/drawio-embed/internal/editlink"
	"github.com/ziadkadry99/drawio-embed/internal/embed"
	"github.com/ziadkadry99/drawio-embed/internal/selector"
)

var remotePattern = regexp.MustCompile(`^https?://`)

// PageContext is the narrow host capability a page hands to the
// patcher: where the page lives and, optionally, where its source can
// be edited.
type PageContext struct {
	RelPath string // page path relative to the site root
	Dir     string // absolute directory of the rendered page on disk
	EditURL string // repository edit URL for the page's source, may be empty
}

// Patcher rewrites pages against one site configuration. The diagram
// parse cache it carries is scoped to the Patcher's lifetime, so one
// Patcher should serve exactly one processing pass.
type Patcher struct {
	cfg   *config.Config
	cache *drawio.Cache
}

// New returns a Patcher for the given configuration.
func New(cfg *config.Config) *Patcher {
	return &Patcher{cfg: cfg, cache: drawio.NewCache(cfg.CacheSize)}
}

// ProcessPage replaces every diagram image reference in content with a
// viewer embed and reports how many replacements were made. Pages
// without diagram references come back unchanged. Individual diagram
// failures degrade to inline error artifacts; ProcessPage itself never
// fails.
func (p *Patcher) ProcessPage(ctx context.Context, content string, page PageContext) (string, int) {
	// Save time if there are no diagrams.
	if !strings.Contains(strings.ToLower(content), ".drawio") {
		return content, 0
	}

	var out strings.Builder
	replaced := 0
	remaining := content

	for {
		idx := findImgTag(remaining)
		if idx < 0 {
			out.WriteString(remaining)
			break
		}
		end := strings.Index(remaining[idx:], ">")
		if end < 0 {
			out.WriteString(remaining)
			break
		}
		end += idx

		tag := remaining[idx+len("<img") : end]
		attrs := parseAttrs(tag)
		src := attrs["src"]
		if !strings.HasSuffix(strings.ToLower(src), ".drawio") {
			out.WriteString(remaining[:end+1])
			remaining = remaining[end+1:]
			continue
		}

		out.WriteString(remaining[:idx])
		out.WriteString(p.replaceDiagram(ctx, attrs, page))
		remaining = remaining[end+1:]
		replaced++
	}

	result := out.String()
	if replaced > 0 {
		result = p.injectAssets(result)
	}
	return result, replaced
}

// replaceDiagram produces the replacement fragment for one diagram
// image tag: a figure wrapping the embed and its caption, or an inline
// error artifact when the diagram cannot be embedded.
func (p *Patcher) replaceDiagram(ctx context.Context, attrs map[string]string, page PageContext) string {
	src := attrs["src"]
	opts := embed.ResolveOptions(ctx, p.cfg, attrs)
	background := p.cfg.Background
	if v, ok := attrs["data-background"]; ok && v != "" {
		background = v
	}

	if remotePattern.MatchString(src) {
		fragment := embed.EmitURL(ctx, opts, src, background)
		caption := embed.Caption(ctx, &p.cfg.Caption, attrs, sourceStem(src), nil, "")
		return wrapFigure(fragment, caption)
	}

	file, err := p.cache.Load(filepath.Join(page.Dir, filepath.FromSlash(src)))
	if err != nil {
		slog.ErrorContext(ctx, "diagram source is not usable",
			"source", src, "page", page.RelPath, "reason", err)
		return embed.ErrorBox(src, nil, nil)
	}

	sel := selector.Resolve(ctx, p.selectorTokens(attrs), len(file.Pages))
	splice, err := file.Splice(ctx, sel.Values, src)
	if err != nil {
		slog.ErrorContext(ctx, "no diagram pages matched selection",
			"source", src, "page", page.RelPath, "reason", err)
		if spliceErr, ok := err.(*drawio.SpliceError); ok {
			return embed.ErrorBox(src, spliceErr.Requested, spliceErr.Available)
		}
		return embed.ErrorBox(src, nil, nil)
	}

	editURL := p.editLink(ctx, attrs, page, file, splice, src)
	title := splice.Labels[0]
	fragment := embed.Emit(ctx, opts, splice.File.XML(), title, editURL, background)
	caption := embed.Caption(ctx, &p.cfg.Caption, attrs, sourceStem(src), splice.Labels, editURL)
	return wrapFigure(fragment, caption)
}

// selectorTokens extracts the page selection for a diagram reference:
// the comma-separated data-pages attribute, else the alt text when
// alt_as_page is enabled, else nil for every page.
func (p *Patcher) selectorTokens(attrs map[string]string) []string {
	if raw, ok := attrs["data-pages"]; ok && strings.TrimSpace(raw) != "" {
		tokens := strings.Split(raw, ",")
		for i := range tokens {
			tokens[i] = strings.TrimSpace(tokens[i])
		}
		return tokens
	}
	if p.cfg.AltAsPage {
		if alt := strings.TrimSpace(attrs["alt"]); alt != "" {
			return []string{alt}
		}
	}
	return nil
}

// editLink decides whether the diagram gets an "open for editing" link
// and builds it. The first spliced page's native id is recovered from
// the original container, since the splice copy may renumber pages.
func (p *Patcher) editLink(ctx context.Context, attrs map[string]string, page PageContext, file *drawio.File, splice *drawio.Splice, src string) string {
	editorBase, ok := p.editorBase(attrs)
	if !ok {
		return ""
	}

	pageID := ""
	if match := file.Lookup(splice.Labels[0]); match != nil {
		pageID = match.ID
	}
	if pageID == "" {
		slog.DebugContext(ctx, "diagram page has no id, skipping edit link",
			"source", src, "page", page.RelPath)
		return ""
	}

	return editlink.Build(ctx, page.EditURL, src, pageID, editorBase)
}

// editorBase resolves the editor target, honoring the explicit disable
// value on either the global default or the per-diagram override.
func (p *Patcher) editorBase(attrs map[string]string) (string, bool) {
	base := p.cfg.EditorURL
	enabled := p.cfg.Edit
	if v, ok := attrs["data-edit"]; ok {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "false", "0", "no":
			return "", false
		case "true", "1", "yes", "":
			enabled = true
		default:
			base = v
			enabled = true
		}
	}
	if !enabled || base == "" {
		return "", false
	}
	return base, true
}

// findImgTag locates the next "<img" start tag, case-insensitively.
func findImgTag(s string) int {
	lower := strings.ToLower(s)
	from := 0
	for {
		idx := strings.Index(lower[from:], "<img")
		if idx < 0 {
			return -1
		}
		idx += from
		after := idx + len("<img")
		if after >= len(s) {
			return -1
		}
		// Reject longer tag names such as <imginary>.
		if c := s[after]; c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '>' || c == '/' {
			return idx
		}
		from = after
	}
}

func wrapFigure(fragment, caption string) string {
	id := "drawio-" + uuid.NewString()
	return `<figure id="` + id + `" class="drawio-figure">` + fragment + caption + `</figure>`
}

// sourceStem returns the diagram filename without directories or the
// .drawio extension, for captions.
func sourceStem(src string) string {
	base := path.Base(strings.ReplaceAll(src, "\\", "/"))
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	return base
}
