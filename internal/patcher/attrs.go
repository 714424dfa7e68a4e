package patcher

import (
	"html"
	"strings"
	"unicode"
)

// parseAttrs parses the attribute list of an HTML start tag into a map
// of lowercased names to unescaped values. Bare attributes map to "".
// The input is everything between the tag name and the closing ">".
func parseAttrs(tag string) map[string]string {
	attrs := make(map[string]string)
	i := 0
	n := len(tag)

	for i < n {
		// Skip whitespace and stray slashes from self-closing tags.
		for i < n && (unicode.IsSpace(rune(tag[i])) || tag[i] == '/') {
			i++
		}
		if i >= n {
			break
		}

		// Attribute name.
		start := i
		for i < n && tag[i] != '=' && !unicode.IsSpace(rune(tag[i])) && tag[i] != '/' {
			i++
		}
		name := strings.ToLower(tag[start:i])
		if name == "" {
			i++
			continue
		}

		// Skip whitespace before a possible "=".
		for i < n && unicode.IsSpace(rune(tag[i])) {
			i++
		}
		if i >= n || tag[i] != '=' {
			attrs[name] = ""
			continue
		}
		i++ // consume "="
		for i < n && unicode.IsSpace(rune(tag[i])) {
			i++
		}
		if i >= n {
			attrs[name] = ""
			break
		}

		// Attribute value: quoted or bare.
		var value string
		if tag[i] == '"' || tag[i] == '\'' {
			quote := tag[i]
			i++
			start = i
			for i < n && tag[i] != quote {
				i++
			}
			value = tag[start:i]
			if i < n {
				i++ // consume closing quote
			}
		} else {
			start = i
			for i < n && !unicode.IsSpace(rune(tag[i])) {
				i++
			}
			value = tag[start:i]
		}
		attrs[name] = html.UnescapeString(value)
	}

	return attrs
}
