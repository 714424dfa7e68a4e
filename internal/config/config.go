package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (DRAWIO_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: DRAWIO_EDITOR_URL -> editor_url, etc.
	if err := k.Load(env.Provider("DRAWIO_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "DRAWIO_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	cfg.Normalize()
	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Normalize folds deprecated fields into their replacements. The legacy
// border setting wins over padding when both are present.
func (c *Config) Normalize() {
	if c.Border != nil {
		c.Padding = *c.Border
		c.Border = nil
	}
}

// validPositions is the set of recognized toolbar positions.
var validPositions = map[string]bool{
	"top":    true,
	"bottom": true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.SiteDir == "" {
		return fmt.Errorf("site_dir is required")
	}

	if !validPositions[c.Toolbar.Position] {
		return fmt.Errorf("invalid toolbar position %q: must be top or bottom", c.Toolbar.Position)
	}

	if c.Padding < 0 {
		return fmt.Errorf("padding must be non-negative")
	}

	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size must be non-negative")
	}

	for _, field := range []struct{ name, value string }{
		{"editor_url", c.EditorURL},
		{"edit_base", c.EditBase},
		{"viewer_url", c.ViewerURL},
	} {
		if field.value == "" {
			continue
		}
		if _, err := url.Parse(field.value); err != nil {
			return fmt.Errorf("invalid %s %q: %w", field.name, field.value, err)
		}
	}

	return nil
}
