package config

// ToolbarConfig controls the viewer toolbar, following the embed options
// documented at https://www.drawio.com/doc/faq/embed-html-options.
type ToolbarConfig struct {
	// Pages shows the page selector in the toolbar.
	Pages bool `yaml:"pages" koanf:"pages"`
	// Zoom shows the zoom control in the toolbar.
	Zoom bool `yaml:"zoom" koanf:"zoom"`
	// Layers shows the layers control in the toolbar.
	Layers bool `yaml:"layers" koanf:"layers"`
	// Lightbox shows the open-in-lightbox control in the toolbar.
	Lightbox bool `yaml:"lightbox" koanf:"lightbox"`
	// Position places the toolbar at "top" or "bottom".
	Position string `yaml:"position" koanf:"position"`
	// NoHide keeps the toolbar visible when the mouse leaves the diagram.
	NoHide bool `yaml:"no_hide" koanf:"no_hide"`
}

// CaptionConfig controls the composed caption under each embed.
type CaptionConfig struct {
	// Prefix is prepended to every caption, composed or explicit.
	Prefix string `yaml:"prefix" koanf:"prefix"`
	// Separator joins the enabled caption parts.
	Separator string `yaml:"separator" koanf:"separator"`
	// Source includes the diagram file stem as a caption part.
	Source bool `yaml:"source" koanf:"source"`
	// Pages includes the selected page labels as a caption part.
	Pages bool `yaml:"pages" koanf:"pages"`
}

// Config is the top-level drawio-embed configuration, corresponding to
// .drawio-embed.yml.
type Config struct {
	SiteDir string   `yaml:"site_dir" koanf:"site_dir"`
	Include []string `yaml:"include" koanf:"include"`
	Exclude []string `yaml:"exclude" koanf:"exclude"`

	Toolbar  ToolbarConfig `yaml:"toolbar" koanf:"toolbar"`
	Tooltips bool          `yaml:"tooltips" koanf:"tooltips"`
	Padding  int           `yaml:"padding" koanf:"padding"`
	// Border is a deprecated alias for Padding, kept for compatibility
	// with older site configs. Normalize folds it into Padding.
	Border *int `yaml:"border,omitempty" koanf:"border"`

	// Edit enables "open for editing" links. Set false to disable
	// editing site-wide.
	Edit bool `yaml:"edit" koanf:"edit"`
	// EditorURL is the base URL of the diagram editor.
	EditorURL string `yaml:"editor_url" koanf:"editor_url"`
	// EditBase is the repository edit URL base for documentation pages,
	// e.g. https://github.com/acme/docs/edit/main/docs. Empty disables
	// per-page edit URL derivation.
	EditBase string `yaml:"edit_base" koanf:"edit_base"`

	// AltAsPage uses an image's alt text as the fallback page selector.
	AltAsPage bool `yaml:"alt_as_page" koanf:"alt_as_page"`
	// Background is the viewer background color.
	Background string `yaml:"background" koanf:"background"`
	// ViewerURL is where patched pages load the viewer runtime from.
	ViewerURL string `yaml:"viewer_url" koanf:"viewer_url"`
	// CacheSize bounds the per-run diagram parse cache.
	CacheSize int `yaml:"cache_size" koanf:"cache_size"`

	Caption CaptionConfig `yaml:"caption" koanf:"caption"`
}
