package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/drawio-embed/internal/assets"
	"github.com/ziadkadry99/drawio-embed/internal/config"
	"github.com/ziadkadry99/drawio-embed/internal/patcher"
	"github.com/ziadkadry99/drawio-embed/internal/progress"
	"github.com/ziadkadry99/drawio-embed/internal/walker"
)

var patchDryRun bool

var patchCmd = &cobra.Command{
	Use:   "patch [site-dir]",
	Short: "Replace .drawio image references with interactive viewers",
	Long: `Walks a rendered site directory, rewrites every HTML page that
references a .drawio diagram, and copies the viewer assets into the
site. The site directory defaults to the configured site_dir.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if len(args) == 1 {
			cfg.SiteDir = args[0]
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		pages, err := walker.Walk(walker.WalkerConfig{
			RootDir: cfg.SiteDir,
			Include: cfg.Include,
			Exclude: cfg.Exclude,
		})
		if err != nil {
			return err
		}
		if len(pages) == 0 {
			return fmt.Errorf("no pages found in %s", cfg.SiteDir)
		}

		ctx := cmd.Context()
		p := patcher.New(cfg)
		reporter := progress.NewReporter()
		reporter.Start(len(pages))

		patched, embeds := 0, 0
		for i, page := range pages {
			reporter.Update(i+1, page.RelPath)

			content, err := os.ReadFile(page.Path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", page.RelPath, err)
			}

			result, n := p.ProcessPage(ctx, string(content), patcher.PageContext{
				RelPath: page.RelPath,
				Dir:     filepath.Dir(page.Path),
				EditURL: pageEditURL(cfg, page.RelPath),
			})
			if n == 0 {
				continue
			}

			embeds += n
			patched++
			if patchDryRun {
				continue
			}
			if err := os.WriteFile(page.Path, []byte(result), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", page.RelPath, err)
			}
		}
		reporter.Finish()

		if !patchDryRun && patched > 0 {
			if err := assets.Write(cfg.SiteDir); err != nil {
				return err
			}
		}

		fmt.Printf("Embedded %d diagrams across %d pages (%d pages scanned)\n", embeds, patched, len(pages))
		return nil
	},
}

// pageEditURL derives the repository edit URL for a rendered page by
// mapping its output path back to the Markdown source it came from.
func pageEditURL(cfg *config.Config, relPath string) string {
	if cfg.EditBase == "" {
		return ""
	}
	src := relPath
	if strings.HasSuffix(src, "/index.html") {
		// Pretty URLs: guide/index.html renders from guide.md.
		src = strings.TrimSuffix(src, "/index.html") + ".md"
	} else {
		src = strings.TrimSuffix(src, ".html") + ".md"
	}
	return strings.TrimSuffix(cfg.EditBase, "/") + "/" + src
}

func init() {
	patchCmd.Flags().BoolVar(&patchDryRun, "dry-run", false, "scan and report without writing files")
	rootCmd.AddCommand(patchCmd)
}
