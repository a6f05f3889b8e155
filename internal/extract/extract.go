// Package extract digs structured data out of model responses. Completions
// are not guaranteed to be well-formed: the JSON we asked for may be wrapped
// in prose, fenced inconsistently, or use different field names than the
// prompt requested. The helpers here recover from that drift without a
// grammar-aware parser.
package extract

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/mysterydesk/gumshoe/internal/errors"
)

// ErrNoJSON signals that no parseable JSON object was found in the response.
// Callers decide whether to fall back to text scraping or to propagate.
var ErrNoJSON = errors.NewSentinel("no JSON object found in response")

var (
	jsonFencePattern = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	anyFencePattern  = regexp.MustCompile("(?s)```\\s*(.*?)\\s*```")
)

// JSON locates an embedded JSON object in raw model output and parses it.
// The pattern strategies are tried in order, first parseable match wins:
//
//  1. a fenced block explicitly tagged as JSON
//  2. any fenced code block
//  3. the span from the first '{' to the last '}' in the text
//
// Returns ErrNoJSON when none of the strategies yields a parseable object.
func JSON(raw string) (map[string]any, error) {
	var candidates []string

	if m := jsonFencePattern.FindStringSubmatch(raw); m != nil {
		candidates = append(candidates, m[1])
	}
	if m := anyFencePattern.FindStringSubmatch(raw); m != nil {
		candidates = append(candidates, m[1])
	}
	if start, end := strings.Index(raw, "{"), strings.LastIndex(raw, "}"); start >= 0 && end > start {
		candidates = append(candidates, raw[start:end+1])
	}

	for _, candidate := range candidates {
		var parsed map[string]any
		if err := json.Unmarshal([]byte(candidate), &parsed); err == nil {
			return parsed, nil
		}
	}

	return nil, ErrNoJSON
}

// lookup follows a dot-separated path of object keys into a parsed payload.
func lookup(payload map[string]any, path string) (any, bool) {
	var current any = payload
	for _, key := range strings.Split(path, ".") {
		object, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		if current, ok = object[key]; !ok {
			return nil, false
		}
	}
	return current, true
}

// String projects a string field out of a loosely-typed payload. The paths
// form an ordered fallback chain evaluated first-match-wins; fallback is
// returned when every alternative is absent or empty.
func String(payload map[string]any, fallback string, paths ...string) string {
	for _, path := range paths {
		value, ok := lookup(payload, path)
		if !ok {
			continue
		}
		if s, ok := value.(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return fallback
}

// Int projects an integer field, coercing floats and numeric strings.
// Non-numeric and absent values yield the fallback.
func Int(payload map[string]any, fallback int, paths ...string) int {
	for _, path := range paths {
		value, ok := lookup(payload, path)
		if !ok {
			continue
		}
		if n, ok := coerceInt(value); ok {
			return n
		}
	}
	return fallback
}

// Bool projects a boolean field, accepting the string spellings models tend
// to produce ("true", "yes").
func Bool(payload map[string]any, fallback bool, paths ...string) bool {
	for _, path := range paths {
		value, ok := lookup(payload, path)
		if !ok {
			continue
		}
		switch v := value.(type) {
		case bool:
			return v
		case string:
			switch strings.ToLower(strings.TrimSpace(v)) {
			case "true", "yes":
				return true
			case "false", "no":
				return false
			}
		}
	}
	return fallback
}

// Slice projects an array field. Returns nil when no path holds an array.
func Slice(payload map[string]any, paths ...string) []any {
	for _, path := range paths {
		value, ok := lookup(payload, path)
		if !ok {
			continue
		}
		if items, ok := value.([]any); ok {
			return items
		}
	}
	return nil
}

// Value projects a raw field without coercion, for shapes that need
// inspection by the caller, e.g. connections arriving as array or prose.
func Value(payload map[string]any, paths ...string) (any, bool) {
	for _, path := range paths {
		if value, ok := lookup(payload, path); ok {
			return value, true
		}
	}
	return nil, false
}

// Strings projects an array of strings, skipping non-string elements.
func Strings(payload map[string]any, paths ...string) []string {
	var out []string
	for _, item := range Slice(payload, paths...) {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}

// ClampInt clamps v to the inclusive range [low, high].
func ClampInt(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

func coerceInt(value any) (int, bool) {
	switch v := value.(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n), true
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n, true
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return int(f), true
		}
	}
	return 0, false
}
