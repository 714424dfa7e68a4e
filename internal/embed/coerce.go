package embed

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
)

// noAction passes the value through unchanged.
func noAction(_ context.Context, v any) any { return v }

// parseBool applies the accepted spellings case-insensitively. Anything
// unrecognized logs a warning and reads as false.
func parseBool(ctx context.Context, v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		switch strings.ToLower(x) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
		slog.WarnContext(ctx, "could not parse boolean value", "value", x)
		return false
	default:
		slog.WarnContext(ctx, "could not parse boolean value", "value", v)
		return false
	}
}

// toBool coerces to a real boolean option value.
func toBool(ctx context.Context, v any) any { return parseBool(ctx, v) }

// toIntOrString attempts an integer parse, falling back to the original
// string unchanged.
func toIntOrString(_ context.Context, v any) any {
	if s, ok := v.(string); ok {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return v
}

// toLiteral maps a truthy value to the fixed literal text and a falsy
// value to no value at all, so disabled toggles vanish from the
// accumulated option instead of leaving gaps.
func toLiteral(text string) func(ctx context.Context, v any) any {
	return func(ctx context.Context, v any) any {
		if parseBool(ctx, v) {
			return text
		}
		return nil
	}
}

// addFrame widens the configured padding by the viewer's fixed frame
// allowance of 5 pixels.
func addFrame(ctx context.Context, v any) any {
	switch x := v.(type) {
	case int:
		return x + 5
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			slog.WarnContext(ctx, "could not parse padding value", "value", x, "reason", err)
			return nil
		}
		return n + 5
	default:
		return nil
	}
}

// toEdit resolves the edit option: boolean true opens the editor in a
// new tab, a custom editor URL gains a splash=0 query parameter, and
// anything else disables editing. Boolean spellings in attribute form
// ("true", "no", ...) behave like their boolean counterparts.
func toEdit(_ context.Context, v any) any {
	switch x := v.(type) {
	case bool:
		if x {
			return "_blank"
		}
		return nil
	case string:
		switch strings.ToLower(x) {
		case "true", "1", "yes":
			return "_blank"
		case "false", "0", "no":
			return nil
		}
		if strings.Contains(x, "?") {
			return x + "&splash=0"
		}
		return x + "?splash=0"
	default:
		return nil
	}
}
