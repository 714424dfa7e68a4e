// Package selector resolves page selector expressions against a diagram
// container's page count.
//
// The mini-language accepts literal page names, decimal positional
// indices, the aliases @first and @last, and inclusive numeric ranges
// such as 2-5. Tokens are comma-separated at the attribute level; this
// package receives them already split.
package selector

import (
	"context"
	"log/slog"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var rangePattern = regexp.MustCompile(`^\d+-\d+$`)

// Selection is an ordered, deduplicated list of page selector values
// ready for splicing. Dropped records the values skipped as duplicates,
// for diagnostics only.
type Selection struct {
	Values  []string
	Dropped []string
}

// Resolve expands tokens into a Selection against a container with
// pageCount pages. A nil token list selects every page in source order.
// Resolution is deterministic and idempotent: the same tokens against
// the same page count always produce the same Selection.
func Resolve(ctx context.Context, tokens []string, pageCount int) Selection {
	if tokens == nil {
		all := make([]string, pageCount)
		for i := range all {
			all[i] = strconv.Itoa(i)
		}
		return Selection{Values: all}
	}

	var expanded []string
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		switch {
		case token == "@first":
			expanded = append(expanded, "0")
		case token == "@last":
			expanded = append(expanded, strconv.Itoa(pageCount-1))
		case rangePattern.MatchString(token):
			expanded = append(expanded, expandRange(ctx, token)...)
		default:
			expanded = append(expanded, token)
		}
	}

	return dedupe(ctx, expanded)
}

// expandRange expands an inclusive start-end range into ascending
// indices. Unparseable or inverted bounds skip the whole token.
func expandRange(ctx context.Context, token string) []string {
	start, end, _ := strings.Cut(token, "-")
	lo, err := strconv.Atoi(start)
	if err != nil {
		slog.WarnContext(ctx, "skipping malformed page range", "range", token, "reason", err)
		return nil
	}
	hi, err := strconv.Atoi(end)
	if err != nil {
		slog.WarnContext(ctx, "skipping malformed page range", "range", token, "reason", err)
		return nil
	}
	if lo > hi {
		slog.WarnContext(ctx, "skipping empty page range", "range", token)
		return nil
	}

	values := make([]string, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		values = append(values, strconv.Itoa(i))
	}
	return values
}

// dedupe removes repeated values, keeping the first occurrence of each.
func dedupe(ctx context.Context, values []string) Selection {
	var sel Selection
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if seen[v] {
			sel.Dropped = append(sel.Dropped, v)
			continue
		}
		seen[v] = true
		sel.Values = append(sel.Values, v)
	}

	if len(sel.Dropped) > 0 {
		summary := slices.Clone(sel.Dropped)
		slices.Sort(summary)
		summary = slices.Compact(summary)
		slog.WarnContext(ctx, "dropped duplicate page selectors",
			"selectors", strings.Join(summary, ", "))
	}
	return sel
}
