// Package editlink derives "open for editing" URLs for diagrams hosted
// alongside documentation sources.
//
// Given the page's own repository edit URL (for example
// https://github.com/acme/docs/edit/main/docs/guide.md), the builder
// swaps the page's filename for the diagram's relative path and wraps
// the result in the draw.io editor's fragment scheme:
//
//	<editor>#H<user>/<repo>/<branch>/<path>#%7B%22pageId%22...%7D
//
// for GitHub-hosted sources, or #A<path> for all other hosts.
package editlink

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"strings"
)

// Build assembles the editor URL for the first spliced page of a
// diagram. It returns "" whenever a link cannot or should not be
// produced; a missing link is an omitted enhancement, never an error.
//
// hostEditURL is the current page's "edit this source" URL, diagramSrc
// the diagram path relative to the page's source, pageID the native
// identifier of the page to open, and editorBase the editor to target.
func Build(ctx context.Context, hostEditURL, diagramSrc, pageID, editorBase string) string {
	if hostEditURL == "" || pageID == "" || editorBase == "" {
		return ""
	}

	link, err := build(hostEditURL, diagramSrc, pageID, editorBase)
	if err != nil {
		slog.WarnContext(ctx, "could not build diagram edit link",
			"page_edit_url", hostEditURL, "diagram", diagramSrc, "reason", err)
		return ""
	}
	return link
}

func build(hostEditURL, diagramSrc, pageID, editorBase string) (string, error) {
	u, err := url.Parse(hostEditURL)
	if err != nil {
		return "", fmt.Errorf("parsing page edit url: %w", err)
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	editIdx := -1
	for i, seg := range segments {
		if seg == "edit" {
			editIdx = i
			break
		}
	}
	if editIdx < 0 || editIdx == len(segments)-1 {
		return "", fmt.Errorf("no edit segment in path %q", u.Path)
	}

	// Everything before "edit" names the repository, everything after
	// (minus the page's own filename) is the directory holding the
	// page's sources; the diagram path is relative to that directory.
	repoPrefix := segments[:editIdx]
	dirPrefix := segments[editIdx+1 : len(segments)-1]

	full := path.Join(path.Join(repoPrefix...), path.Join(dirPrefix...), diagramSrc)
	full, err = reencodeFilename(full)
	if err != nil {
		return "", err
	}

	host := "A"
	if strings.Contains(u.Hostname(), "github.com") || strings.Contains(u.Hostname(), "github.io") {
		host = "H"
	}

	ref, err := json.Marshal(map[string]string{"pageId": pageID})
	if err != nil {
		return "", fmt.Errorf("encoding page reference: %w", err)
	}

	return editorBase + "#" + host + full + "#" + url.QueryEscape(string(ref)), nil
}

// reencodeFilename percent-decodes and re-encodes only the final path
// component. Re-encoding the whole path would double-encode directory
// separators that are already safe.
func reencodeFilename(p string) (string, error) {
	dir, file := path.Split(p)
	decoded, err := url.PathUnescape(file)
	if err != nil {
		return "", fmt.Errorf("decoding filename %q: %w", file, err)
	}
	return dir + url.PathEscape(decoded), nil
}
