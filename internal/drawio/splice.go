package drawio

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Splice holds the outcome of extracting selected pages into a new
// minimal container.
type Splice struct {
	File   *File    // container holding only the selected pages, in selection order
	Labels []string // display label of each selected page, same order
}

// SpliceError is the hard per-diagram failure raised when a selection
// matches no pages at all. It carries both page lists so the error
// artifact can show the reader what was asked for and what exists.
type SpliceError struct {
	Source    string   // diagram source reference, for display
	Requested []string // selector values that were requested
	Available []string // page labels present in the source container
}

func (e *SpliceError) Error() string {
	return fmt.Sprintf("drawio: no pages of %s match selection [%s]; available pages are [%s]",
		e.Source, strings.Join(e.Requested, ", "), strings.Join(e.Available, ", "))
}

// Splice extracts the pages named by selection from f into a new
// container. Each selector value is matched first against page names,
// then, if it is all digits, as a positional index. Values matching
// nothing are logged and skipped. A selection that matches nothing at
// all returns a *SpliceError.
//
// Every page placed in the result is a structural copy, so mutating the
// splice cannot corrupt the parsed source document.
func (f *File) Splice(ctx context.Context, selection []string, source string) (*Splice, error) {
	out := &Splice{File: &File{Attrs: f.Attrs}}

	for _, value := range selection {
		page := f.Lookup(value)
		if page == nil {
			slog.WarnContext(ctx, "selected page not found in diagram",
				"selector", value, "source", source)
			continue
		}
		cp := page.clone()
		cp.Index = len(out.File.Pages)
		out.File.Pages = append(out.File.Pages, cp)
		// The label always comes from the matched page itself.
		out.Labels = append(out.Labels, page.Label())
	}

	if len(out.File.Pages) == 0 {
		return nil, &SpliceError{
			Source:    source,
			Requested: selection,
			Available: f.PageNames(),
		}
	}
	return out, nil
}

// Lookup resolves a selector value against the container: exact name
// match first, then an in-bounds positional index if the value is all
// decimal digits. Returns nil when nothing matches.
func (f *File) Lookup(value string) *Page {
	for i := range f.Pages {
		if f.Pages[i].Name != "" && f.Pages[i].Name == value {
			return &f.Pages[i]
		}
	}
	if isDigits(value) {
		if idx, err := strconv.Atoi(value); err == nil && idx >= 0 && idx < len(f.Pages) {
			return &f.Pages[idx]
		}
	}
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
