package record

import (
	"regexp"
	"strings"
)

// fieldBoundary matches a comma that introduces the next key=value
// field. Go's regexp has no lookahead, so the key token is part of the
// match and only the comma position is used as the cut point.
var fieldBoundary = regexp.MustCompile(`,\s*[A-Za-z0-9_-]+\s*=`)

// SplitFields splits a raw blob into top-level key=value field strings.
// A comma only separates fields when what follows looks like a new key,
// so commas inside values ("Dimension: 241,156mm") stay intact.
//
// Known limitation: a value containing ", word=" where word happens to
// match the key pattern is still mis-split. This heuristic matches the
// data this tool was built for; do not tighten it without checking the
// exports it is run against.
func SplitFields(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	start := 0
	for _, loc := range fieldBoundary.FindAllStringIndex(raw, -1) {
		if seg := strings.TrimSpace(raw[start:loc[0]]); seg != "" {
			out = append(out, seg)
		}
		start = loc[0] + 1 // keep the key, drop the comma
	}
	if seg := strings.TrimSpace(raw[start:]); seg != "" {
		out = append(out, seg)
	}
	return out
}
