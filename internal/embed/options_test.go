package embed

import (
	"context"
	"testing"

	"github.com/ziadkadry99/drawio-embed/internal/config"
)

func TestResolveOptionsDefaults(t *testing.T) {
	cfg := config.DefaultConfig()

	opts := ResolveOptions(context.Background(), cfg, nil)

	if opts["edit"] != "_blank" {
		t.Errorf("edit = %v, want _blank", opts["edit"])
	}
	if opts["border"] != 15 {
		t.Errorf("border = %v, want padding+5 = 15", opts["border"])
	}
	if opts["tooltips"] != true {
		t.Errorf("tooltips = %v, want true", opts["tooltips"])
	}
	if opts["toolbar-position"] != "top" {
		t.Errorf("toolbar-position = %v, want top", opts["toolbar-position"])
	}
	if opts["toolbar-nohide"] != false {
		t.Errorf("toolbar-nohide = %v, want false", opts["toolbar-nohide"])
	}
	if opts["toolbar"] != "pages zoom layers lightbox" {
		t.Errorf("toolbar = %v, want all features", opts["toolbar"])
	}
	if _, ok := opts["page"]; ok {
		t.Error("page should be omitted without a default or override")
	}
	if _, ok := opts["title"]; ok {
		t.Error("title should be omitted without an override")
	}
}

func TestResolveOptionsToolbarAccumulator(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Toolbar.Zoom = false

	opts := ResolveOptions(context.Background(), cfg, nil)

	if opts["toolbar"] != "pages layers lightbox" {
		t.Errorf("toolbar = %v, want %q", opts["toolbar"], "pages layers lightbox")
	}
}

func TestResolveOptionsToolbarEmptyIsDeleted(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Toolbar.Pages = false
	cfg.Toolbar.Zoom = false
	cfg.Toolbar.Layers = false
	cfg.Toolbar.Lightbox = false

	opts := ResolveOptions(context.Background(), cfg, nil)

	if _, ok := opts["toolbar"]; ok {
		t.Errorf("toolbar = %v, want it deleted when all toggles are off", opts["toolbar"])
	}
}

func TestResolveOptionsOverrides(t *testing.T) {
	cfg := config.DefaultConfig()

	opts := ResolveOptions(context.Background(), cfg, map[string]string{
		"data-page":         "3",
		"data-padding":      "20",
		"data-tooltips":     "no",
		"data-title":        "Architecture",
		"data-toolbar-zoom": "false",
	})

	if opts["page"] != 3 {
		t.Errorf("page = %v (%T), want int 3", opts["page"], opts["page"])
	}
	if opts["border"] != 25 {
		t.Errorf("border = %v, want 25", opts["border"])
	}
	if opts["tooltips"] != false {
		t.Errorf("tooltips = %v, want false", opts["tooltips"])
	}
	if opts["title"] != "Architecture" {
		t.Errorf("title = %v, want Architecture", opts["title"])
	}
	if opts["toolbar"] != "pages layers lightbox" {
		t.Errorf("toolbar = %v, want zoom dropped", opts["toolbar"])
	}
}

func TestResolveOptionsPageNameStaysString(t *testing.T) {
	cfg := config.DefaultConfig()

	opts := ResolveOptions(context.Background(), cfg, map[string]string{"data-page": "Overview"})

	if opts["page"] != "Overview" {
		t.Errorf("page = %v (%T), want string Overview", opts["page"], opts["page"])
	}
}

func TestResolveOptionsNeverFails(t *testing.T) {
	cfg := config.DefaultConfig()

	// Unparseable values degrade, they do not panic or error.
	opts := ResolveOptions(context.Background(), cfg, map[string]string{
		"data-tooltips": "maybe",
		"data-padding":  "wide",
		"data-nohide":   "kinda",
	})

	if opts["tooltips"] != false {
		t.Errorf("tooltips = %v, want false for unparseable input", opts["tooltips"])
	}
	if opts["toolbar-nohide"] != false {
		t.Errorf("toolbar-nohide = %v, want false for unparseable input", opts["toolbar-nohide"])
	}
	// An unparseable padding override omits the option entirely.
	if v, ok := opts["border"]; ok {
		t.Errorf("border = %v, want omitted for unparseable override", v)
	}
}

func TestBoolCoercion(t *testing.T) {
	ctx := context.Background()
	truthy := []string{"Yes", "1", "true", "TRUE", "yes"}
	for _, v := range truthy {
		if got := parseBool(ctx, v); !got {
			t.Errorf("parseBool(%q) = false, want true", v)
		}
	}
	falsy := []string{"No", "0", "false", "FALSE", "no", "maybe", ""}
	for _, v := range falsy {
		if got := parseBool(ctx, v); got {
			t.Errorf("parseBool(%q) = true, want false", v)
		}
	}
}

func TestEditCoercion(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name  string
		input any
		want  any
	}{
		{"bool true", true, "_blank"},
		{"bool false", false, nil},
		{"string true", "yes", "_blank"},
		{"string false", "0", nil},
		{"url without query", "https://draw.example.com/", "https://draw.example.com/?splash=0"},
		{"url with query", "https://draw.example.com/?ui=min", "https://draw.example.com/?ui=min&splash=0"},
		{"unsupported type", 7, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toEdit(ctx, tt.input); got != tt.want {
				t.Errorf("toEdit(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIntOrStringCoercion(t *testing.T) {
	ctx := context.Background()
	if got := toIntOrString(ctx, "42"); got != 42 {
		t.Errorf("toIntOrString(42) = %v (%T), want int", got, got)
	}
	if got := toIntOrString(ctx, "Page One"); got != "Page One" {
		t.Errorf("toIntOrString(Page One) = %v, want original string", got)
	}
}
