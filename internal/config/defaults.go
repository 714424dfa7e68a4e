package config

// DefaultViewerURL serves the static draw.io viewer runtime.
const DefaultViewerURL = "https://viewer.diagrams.net/js/viewer-static.min.js"

// DefaultEditorURL opens diagrams in the hosted draw.io editor.
const DefaultEditorURL = "https://app.diagrams.net/"

// DefaultExcludes are glob patterns skipped during site traversal.
var DefaultExcludes = []string{
	"node_modules/**",
	".git/**",
	"404.html",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SiteDir: "site",
		Include: []string{"**/*.html"},
		Exclude: DefaultExcludes,
		Toolbar: ToolbarConfig{
			Pages:    true,
			Zoom:     true,
			Layers:   true,
			Lightbox: true,
			Position: "top",
			NoHide:   false,
		},
		Tooltips:   true,
		Padding:    10,
		Edit:       true,
		EditorURL:  DefaultEditorURL,
		AltAsPage:  true,
		Background: "transparent",
		ViewerURL:  DefaultViewerURL,
		CacheSize:  32,
		Caption: CaptionConfig{
			Separator: " — ",
			Source:    false,
			Pages:     false,
		},
	}
}
