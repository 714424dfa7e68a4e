package embed

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"log/slog"
	"strings"
)

// fragmentTemplate is the container element the viewer runtime scans
// for. The escaped JSON configuration rides in the data-mxgraph
// attribute.
const fragmentTemplate = `<div class="mxgraph" style="max-width:100%%;border:1px solid transparent;background-color:%s;" data-mxgraph="%s"></div>`

// Emit serializes the merged options, the spliced container XML, and
// the optional editor link into the embeddable viewer fragment.
//
// The editor link, when present, is folded into the options twice: as
// the edit target and as an extra toolbar feature token. The title
// defaults to the given value when no explicit title option was set.
func Emit(ctx context.Context, opts map[string]any, xmlText, title, editURL, background string) string {
	if editURL != "" {
		opts["edit"] = editURL
		if tb, ok := opts["toolbar"].(string); ok {
			opts["toolbar"] = tb + " edit"
		} else {
			opts["toolbar"] = "edit"
		}
	}
	if _, ok := opts["title"]; !ok && title != "" {
		opts["title"] = title
	}
	opts["xml"] = xmlText
	return render(ctx, opts, background)
}

// EmitURL serializes an embed that references a remote diagram by URL
// instead of carrying spliced XML.
func EmitURL(ctx context.Context, opts map[string]any, url, background string) string {
	opts["url"] = url
	return render(ctx, opts, background)
}

func render(ctx context.Context, opts map[string]any, background string) string {
	payload, err := json.Marshal(opts)
	if err != nil {
		// Option values are strings, ints, and bools; this is unreachable
		// short of a programming error in the option table.
		slog.ErrorContext(ctx, "could not serialize embed options", "reason", err)
		return ""
	}
	return fmt.Sprintf(fragmentTemplate,
		html.EscapeString(strings.TrimSpace(background)),
		html.EscapeString(string(payload)))
}
