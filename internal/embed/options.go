// Package embed resolves per-diagram viewer options and emits the final
// HTML fragments consumed by the draw.io viewer runtime.
package embed

import (
	"context"
	"fmt"
	"strings"

	"github.com/ziadkadry99/drawio-embed/internal/config"
)

// Option describes one embed option: the data attribute that overrides
// it, the viewer option name it feeds, its site-level default, and the
// coercion applied to both default and override values.
//
// Several entries may share one Name. When a later entry produces a
// string for a Name that already holds a string, the values accumulate
// space-separated instead of overwriting; this is how the four toolbar
// toggles combine into one feature-flag string.
type Option struct {
	Attr    string
	Name    string
	Default func(cfg *config.Config) any
	Coerce  func(ctx context.Context, v any) any
}

// optionTable is the fixed-order list of supported embed options. To
// support more options from
// https://www.drawio.com/doc/faq/embed-html-options, add an entry here.
var optionTable = []Option{
	{"data-page", "page", nil, toIntOrString},
	{"data-zoom", "zoom", nil, noAction},
	{"data-edit", "edit", func(c *config.Config) any { return c.Edit }, toEdit},
	{"data-padding", "border", func(c *config.Config) any { return c.Padding }, addFrame},
	{"data-tooltips", "tooltips", func(c *config.Config) any { return c.Tooltips }, toBool},
	{"data-toolbar-position", "toolbar-position", func(c *config.Config) any { return c.Toolbar.Position }, noAction},
	{"data-title", "title", nil, noAction},
	{"data-nohide", "toolbar-nohide", func(c *config.Config) any { return c.Toolbar.NoHide }, toBool},
	{"data-toolbar-pages", "toolbar", func(c *config.Config) any { return c.Toolbar.Pages }, toLiteral("pages")},
	{"data-toolbar-zoom", "toolbar", func(c *config.Config) any { return c.Toolbar.Zoom }, toLiteral("zoom")},
	{"data-toolbar-layers", "toolbar", func(c *config.Config) any { return c.Toolbar.Layers }, toLiteral("layers")},
	{"data-toolbar-lightbox", "toolbar", func(c *config.Config) any { return c.Toolbar.Lightbox }, toLiteral("lightbox")},
}

// ResolveOptions merges site defaults and per-diagram attribute
// overrides into the viewer option map. Missing or unparseable values
// degrade to omitted options; resolution itself never fails.
func ResolveOptions(ctx context.Context, cfg *config.Config, attrs map[string]string) map[string]any {
	conf := make(map[string]any)
	for _, opt := range optionTable {
		var value any
		if opt.Default != nil {
			if d := opt.Default(cfg); d != nil {
				value = opt.Coerce(ctx, d)
			}
		}
		if raw, ok := attrs[opt.Attr]; ok {
			value = opt.Coerce(ctx, raw)
		}
		if value == nil {
			continue
		}
		if prev, ok := conf[opt.Name].(string); ok {
			conf[opt.Name] = prev + " " + fmt.Sprint(value)
			continue
		}
		conf[opt.Name] = value
	}

	if tb, ok := conf["toolbar"].(string); ok {
		tb = strings.TrimSpace(tb)
		if tb == "" {
			delete(conf, "toolbar")
		} else {
			conf["toolbar"] = tb
		}
	}
	return conf
}
