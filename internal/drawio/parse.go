package drawio

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// xmlFile mirrors the mxfile document structure for decoding. Attributes
// are captured wholesale so that serialization can reproduce them, and
// page content is kept as verbatim inner XML.
type xmlFile struct {
	XMLName xml.Name   `xml:"mxfile"`
	Attrs   []xml.Attr `xml:",any,attr"`
	Pages   []xmlPage  `xml:"diagram"`
}

type xmlPage struct {
	Attrs   []xml.Attr `xml:",any,attr"`
	Content string     `xml:",innerxml"`
}

// Parse reads an mxfile document. It fails if the document is not valid
// XML, is not rooted at an mxfile element, or contains no diagram pages;
// all three are hard failures for the diagram reference being processed.
func Parse(r io.Reader) (*File, error) {
	var doc xmlFile
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("drawio: decoding container: %w", err)
	}
	if len(doc.Pages) == 0 {
		return nil, fmt.Errorf("drawio: container has no diagram pages")
	}

	f := &File{Attrs: doc.Attrs}
	for i, dp := range doc.Pages {
		page := Page{
			Content: dp.Content,
			Attrs:   dp.Attrs,
			Index:   i,
		}
		for _, a := range dp.Attrs {
			switch a.Name.Local {
			case "id":
				page.ID = a.Value
			case "name":
				page.Name = a.Value
			}
		}
		f.Pages = append(f.Pages, page)
	}
	return f, nil
}

// ParseFile parses the mxfile document at path.
func ParseFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("drawio: opening %s: %w", path, err)
	}
	defer fh.Close()

	f, err := Parse(fh)
	if err != nil {
		return nil, fmt.Errorf("drawio: parsing %s: %w", path, err)
	}
	return f, nil
}
