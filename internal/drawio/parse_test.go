package drawio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleXML = `<mxfile host="app.diagrams.net" version="24.2.5">` +
	`<diagram id="a1" name="Overview"><mxGraphModel><root><mxCell id="0"/></root></mxGraphModel></diagram>` +
	`<diagram id="b2" name="Detail"><mxGraphModel><root><mxCell id="1"/></root></mxGraphModel></diagram>` +
	`<diagram id="c3"><mxGraphModel><root><mxCell id="2"/></root></mxGraphModel></diagram>` +
	`</mxfile>`

func TestParse(t *testing.T) {
	f, err := Parse(strings.NewReader(sampleXML))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if len(f.Pages) != 3 {
		t.Fatalf("pages = %d, want 3", len(f.Pages))
	}

	tests := []struct {
		index int
		id    string
		name  string
		label string
	}{
		{0, "a1", "Overview", "Overview"},
		{1, "b2", "Detail", "Detail"},
		{2, "c3", "", "2"},
	}
	for _, tt := range tests {
		p := f.Pages[tt.index]
		if p.Index != tt.index {
			t.Errorf("page %d: Index = %d", tt.index, p.Index)
		}
		if p.ID != tt.id {
			t.Errorf("page %d: ID = %q, want %q", tt.index, p.ID, tt.id)
		}
		if p.Name != tt.name {
			t.Errorf("page %d: Name = %q, want %q", tt.index, p.Name, tt.name)
		}
		if p.Label() != tt.label {
			t.Errorf("page %d: Label = %q, want %q", tt.index, p.Label(), tt.label)
		}
	}

	if !strings.Contains(f.Pages[0].Content, `<mxCell id="0"/>`) {
		t.Errorf("page 0 content = %q, want inner model preserved", f.Pages[0].Content)
	}
}

func TestParseRoundTrip(t *testing.T) {
	f, err := Parse(strings.NewReader(sampleXML))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	out := f.XML()
	reparsed, err := Parse(strings.NewReader(out))
	if err != nil {
		t.Fatalf("reparsing serialized container: %v", err)
	}
	if len(reparsed.Pages) != len(f.Pages) {
		t.Fatalf("round trip pages = %d, want %d", len(reparsed.Pages), len(f.Pages))
	}
	for i := range f.Pages {
		if reparsed.Pages[i].Content != f.Pages[i].Content {
			t.Errorf("page %d content changed on round trip", i)
		}
		if reparsed.Pages[i].Name != f.Pages[i].Name {
			t.Errorf("page %d name changed on round trip", i)
		}
	}
}

func TestParseEscapesAttributesOnSerialize(t *testing.T) {
	in := `<mxfile><diagram name="A &amp; B">x</diagram></mxfile>`
	f, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if f.Pages[0].Name != "A & B" {
		t.Fatalf("name = %q, want decoded ampersand", f.Pages[0].Name)
	}
	if !strings.Contains(f.XML(), `name="A &amp; B"`) {
		t.Errorf("serialized = %q, want re-escaped ampersand", f.XML())
	}
}

func TestParseFailures(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not xml", "this is not a diagram"},
		{"wrong root", "<svg><diagram name='x'>y</diagram></svg>"},
		{"no pages", "<mxfile></mxfile>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.input)); err == nil {
				t.Error("Parse should fail")
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "arch.drawio")
	if err := os.WriteFile(path, []byte(sampleXML), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if len(f.Pages) != 3 {
		t.Errorf("pages = %d, want 3", len(f.Pages))
	}

	if _, err := ParseFile(filepath.Join(dir, "missing.drawio")); err == nil {
		t.Error("ParseFile should fail for a missing file")
	}
}

func TestCache(t *testing.T) {
	dir := t.TempDir()
	write := func(name string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(sampleXML), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}
	a := write("a.drawio")
	b := write("b.drawio")

	c := NewCache(1)

	first, err := c.Load(a)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	again, err := c.Load(a)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if first != again {
		t.Error("second load should return the cached container")
	}

	// Loading a second file evicts the first from a size-1 cache.
	if _, err := c.Load(b); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("cache size = %d, want 1", c.Len())
	}
	third, err := c.Load(a)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if third == first {
		t.Error("evicted entry should be re-parsed")
	}
}

func TestCacheDoesNotCacheFailures(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.drawio")
	if err := os.WriteFile(path, []byte("<mxfile>"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := NewCache(4)
	if _, err := c.Load(path); err == nil {
		t.Fatal("Load should fail for a broken file")
	}

	// Fixing the file mid-pass makes the next load succeed.
	if err := os.WriteFile(path, []byte(sampleXML), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Load(path); err != nil {
		t.Errorf("Load after fix error: %v", err)
	}
}
