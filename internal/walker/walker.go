// Package walker discovers the rendered HTML pages of a site directory.
package walker

import (
	"fmt"
	"io/fs"
	"path/filepath"
)

// PageInfo holds metadata about a single page discovered during
// traversal.
type PageInfo struct {
	Path    string // Absolute path on disk.
	RelPath string // Slash-separated path relative to the site root.
	Size    int64  // File size in bytes.
}

// WalkerConfig controls the behaviour of the Walk function.
type WalkerConfig struct {
	RootDir string   // Site directory to walk.
	Include []string // Glob patterns; only matching files are included.
	Exclude []string // Glob patterns; matching files are excluded.
}

// Walk traverses the site directory and returns every page that passes
// the include/exclude filters, in traversal order.
func Walk(config WalkerConfig) ([]PageInfo, error) {
	root, err := filepath.Abs(config.RootDir)
	if err != nil {
		return nil, fmt.Errorf("walker: resolve root: %w", err)
	}

	var pages []PageInfo

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Skip entries we cannot read instead of aborting.
			return nil
		}

		if d.IsDir() {
			if shouldExcludeDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}

		if !MatchesInclude(relPath, config.Include) {
			return nil
		}
		if MatchesExclude(relPath, config.Exclude) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}

		pages = append(pages, PageInfo{
			Path:    path,
			RelPath: filepath.ToSlash(relPath),
			Size:    info.Size(),
		})
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walker: traversal: %w", err)
	}

	return pages, nil
}
