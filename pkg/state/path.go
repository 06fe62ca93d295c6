package state

import (
	"strconv"
	"strings"
)

// Wildcard is the reserved path meaning "any change". It is the reported
// path for Set, Merge and batch flushes, and a valid subscription scope.
const Wildcard = "*"

// guarded prototype keys; writes touching them are rejected and Normalize
// strips them from input.
var forbiddenKeys = map[string]bool{
	"__proto__":   true,
	"prototype":   true,
	"constructor": true,
}

func isForbiddenKey(k string) bool {
	return forbiddenKeys[k]
}

// splitPath parses a dot-separated path into segments. The empty path
// yields nil segments (the whole tree). Empty segments are rejected.
func splitPath(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	segs := strings.Split(path, ".")
	for _, s := range segs {
		if s == "" {
			return nil, &PathSyntaxError{Path: path, Reason: "empty segment"}
		}
	}
	return segs, nil
}

// checkForbidden returns a ForbiddenKeyError if any segment is guarded.
func checkForbidden(path string, segs []string) error {
	for _, s := range segs {
		if isForbiddenKey(s) {
			return &ForbiddenKeyError{Path: path, Segment: s}
		}
	}
	return nil
}

// At resolves a dot-separated path against any value. The second result is
// false when an intermediate is absent or not traversable. The empty path
// resolves to v itself. Numeric segments index Lists 0-based.
func At(v Value, path string) (Value, bool) {
	segs, err := splitPath(path)
	if err != nil {
		return nil, false
	}
	return at(v, segs)
}

func at(v Value, segs []string) (Value, bool) {
	cur := v
	for _, seg := range segs {
		switch c := cur.(type) {
		case *Object:
			next, ok := c.Get(seg)
			if !ok {
				return nil, false
			}
			cur = next
		case List:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(c) {
				return nil, false
			}
			cur = c[idx]
		default:
			return nil, false
		}
	}
	return cur, true
}
