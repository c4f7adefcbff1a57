// Package sku derives parent identifiers from variant identifiers by
// stripping known suffix tokens (typically color codes).
package sku

import "strings"

// NormalizeSuffixes trims tokens and drops empties, preserving order.
// Call once per run; DeriveParent assumes its input is already clean.
func NormalizeSuffixes(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// DeriveParent returns id with the first matching suffix removed,
// comparing case-insensitively but slicing the original string. List
// order decides ties: the first suffix that matches wins, with no
// longest-match preference. No match returns "" — never id itself,
// since "no parent detected" must stay distinguishable from "is its
// own parent".
func DeriveParent(id string, suffixes []string) string {
	if id == "" {
		return ""
	}
	upper := strings.ToUpper(id)
	for _, suf := range suffixes {
		if suf == "" {
			continue
		}
		u := strings.ToUpper(suf)
		if strings.HasSuffix(upper, u) && len(u) <= len(id) {
			return id[:len(id)-len(u)]
		}
	}
	return ""
}
