package config

import (
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
)

// siteDirCandidates are directory names commonly produced by static
// site generators, checked in order during detection.
var siteDirCandidates = []string{"site", "public", "_site", "dist", "build"}

// detectSiteDir checks the current directory for a rendered site.
func detectSiteDir() string {
	for _, dir := range siteDirCandidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return ""
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .drawio-embed.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to drawio-embed! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Site directory.
	defaultDir := detectSiteDir()
	if defaultDir != "" {
		fmt.Printf("Detected rendered site directory: %s\n\n", defaultDir)
	} else {
		defaultDir = cfg.SiteDir
	}
	dirPrompt := promptui.Prompt{
		Label:   "Rendered site directory",
		Default: defaultDir,
	}
	siteDir, err := dirPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site directory: %w", err)
	}
	cfg.SiteDir = siteDir

	// 2. Editing.
	editPrompt := promptui.Select{
		Label: "Allow opening diagrams in the draw.io editor",
		Items: []string{"yes", "no"},
	}
	editIdx, _, err := editPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("edit selection: %w", err)
	}
	cfg.Edit = editIdx == 0

	if cfg.Edit {
		basePrompt := promptui.Prompt{
			Label:   "Repository edit URL base (empty to skip edit links)",
			Default: "",
		}
		editBase, err := basePrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("edit base: %w", err)
		}
		cfg.EditBase = editBase
	}

	// 3. Toolbar position.
	posPrompt := promptui.Select{
		Label: "Toolbar position",
		Items: []string{"top", "bottom"},
	}
	_, position, err := posPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("toolbar position: %w", err)
	}
	cfg.Toolbar.Position = position

	// 4. Captions.
	captionPrompt := promptui.Select{
		Label: "Caption diagrams with their source file and page names",
		Items: []string{"no captions", "source file", "page names", "both"},
	}
	captionIdx, _, err := captionPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("caption selection: %w", err)
	}
	cfg.Caption.Source = captionIdx == 1 || captionIdx == 3
	cfg.Caption.Pages = captionIdx == 2 || captionIdx == 3

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(".drawio-embed.yml"); err != nil {
		return nil, err
	}
	fmt.Println()
	fmt.Println("Configuration saved to .drawio-embed.yml")
	return cfg, nil
}
