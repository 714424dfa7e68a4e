package walker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// newTree materializes a site tree from relative paths.
func newTree(t *testing.T, paths ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("<html></html>"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func relPaths(pages []PageInfo) []string {
	var out []string
	for _, p := range pages {
		out = append(out, p.RelPath)
	}
	return out
}

func TestWalkFindsHTMLPages(t *testing.T) {
	root := newTree(t,
		"index.html",
		"guide/setup.html",
		"guide/arch.drawio",
		"assets/style.css",
	)

	pages, err := Walk(WalkerConfig{RootDir: root, Include: []string{"**/*.html"}})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	want := []string{"guide/setup.html", "index.html"}
	if diff := cmp.Diff(want, relPaths(pages)); diff != "" {
		t.Errorf("pages mismatch (-want +got):\n%s", diff)
	}
	for _, p := range pages {
		if !filepath.IsAbs(p.Path) {
			t.Errorf("Path = %q, want absolute", p.Path)
		}
		if p.Size == 0 {
			t.Errorf("Size for %q = 0, want file size", p.RelPath)
		}
	}
}

func TestWalkExcludePatterns(t *testing.T) {
	root := newTree(t,
		"index.html",
		"404.html",
		"drafts/wip.html",
	)

	pages, err := Walk(WalkerConfig{
		RootDir: root,
		Include: []string{"**/*.html"},
		Exclude: []string{"404.html", "drafts/**"},
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	want := []string{"index.html"}
	if diff := cmp.Diff(want, relPaths(pages)); diff != "" {
		t.Errorf("pages mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkSkipsExcludedDirs(t *testing.T) {
	root := newTree(t,
		"index.html",
		"node_modules/pkg/readme.html",
		".git/info.html",
	)

	pages, err := Walk(WalkerConfig{RootDir: root, Include: []string{"**/*.html"}})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	want := []string{"index.html"}
	if diff := cmp.Diff(want, relPaths(pages)); diff != "" {
		t.Errorf("pages mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkEmptyIncludeMatchesEverything(t *testing.T) {
	root := newTree(t, "index.html", "assets/style.css")

	pages, err := Walk(WalkerConfig{RootDir: root})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	if len(pages) != 2 {
		t.Errorf("pages = %v, want both files", relPaths(pages))
	}
}

func TestMatchesExcludeBasename(t *testing.T) {
	if !MatchesExclude("deep/nested/404.html", []string{"404.html"}) {
		t.Error("bare filename pattern should match at any depth")
	}
	if MatchesExclude("deep/nested/page.html", []string{"404.html"}) {
		t.Error("unrelated file should not match")
	}
}
