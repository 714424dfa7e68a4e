// Package drawio parses draw.io (mxfile) diagram containers and splices
// selected pages into new minimal containers.
package drawio

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// Page is one diagram page inside an mxfile container.
type Page struct {
	ID      string     // value of the id attribute, may be empty
	Name    string     // value of the name attribute, may be empty
	Content string     // inner XML of the diagram element, preserved verbatim
	Attrs   []xml.Attr // all attributes of the diagram element, in source order
	Index   int        // 0-based position within the source container
}

// Label returns the display label for the page: its name if present,
// otherwise its positional index rendered as a decimal string.
func (p *Page) Label() string {
	if p.Name != "" {
		return p.Name
	}
	return strconv.Itoa(p.Index)
}

// clone returns a structural copy of the page that shares no mutable
// state with the original.
func (p *Page) clone() Page {
	cp := *p
	cp.Attrs = make([]xml.Attr, len(p.Attrs))
	copy(cp.Attrs, p.Attrs)
	return cp
}

// File is a parsed mxfile container: an ordered sequence of pages plus
// the attributes of the mxfile element itself.
type File struct {
	Attrs []xml.Attr
	Pages []Page
}

// PageNames returns the display labels of all pages in source order.
func (f *File) PageNames() []string {
	names := make([]string, len(f.Pages))
	for i := range f.Pages {
		names[i] = f.Pages[i].Label()
	}
	return names
}

// XML serializes the container back to its textual mxfile form. Page
// content is written verbatim, so a parse/serialize round trip does not
// disturb the embedded diagram model.
func (f *File) XML() string {
	var b strings.Builder
	b.WriteString("<mxfile")
	writeAttrs(&b, f.Attrs)
	b.WriteString(">")
	for i := range f.Pages {
		p := &f.Pages[i]
		b.WriteString("<diagram")
		writeAttrs(&b, p.Attrs)
		b.WriteString(">")
		b.WriteString(p.Content)
		b.WriteString("</diagram>")
	}
	b.WriteString("</mxfile>")
	return b.String()
}

func writeAttrs(b *strings.Builder, attrs []xml.Attr) {
	for _, a := range attrs {
		fmt.Fprintf(b, ` %s="%s"`, a.Name.Local, escapeAttr(a.Value))
	}
}

func escapeAttr(s string) string {
	var b strings.Builder
	// xml.EscapeText covers <, >, &, ", and '.
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
