package normalize

import (
	"html"
	"regexp"
	"strings"
)

var (
	nbspEntityRE = regexp.MustCompile(`(?i)&nbsp;`)
	brRE         = regexp.MustCompile(`(?i)<br\s*/?>`)
	blockCloseRE = regexp.MustCompile(`(?i)</(?:p|li|div)>`)
	tagRE        = regexp.MustCompile(`<[^>]*?>`)
)

// Clean turns a raw cell value into plain text. Line-breaking markup
// (<br>, </p>, </li>, </div>) becomes a newline so embedded sub-lines
// survive; every other tag is stripped, entities are decoded, and the
// common UTF-8/latin-1 mojibake marker is removed.
//
// The step order matters: the literal &nbsp; is replaced before entity
// decoding so it becomes a plain space rather than U+00A0.
func Clean(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = strings.ReplaceAll(s, "\u00C2", "")
	s = nbspEntityRE.ReplaceAllString(s, " ")
	s = brRE.ReplaceAllString(s, "\n")
	s = blockCloseRE.ReplaceAllString(s, "\n")
	s = tagRE.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.TrimSpace(s)
	return html.UnescapeString(s)
}
