package record

import (
	"regexp"
	"strings"

	"github.com/DataMends/attrify/internal/normalize"
)

// SubLineMode selects when embedded "label: value" lines inside a
// field's value are promoted to attributes of their own.
type SubLineMode string

const (
	// SubLinesSpecOnly extracts sub-lines only from fields whose key
	// contains "spec"; colon-less lines collect under the note key.
	SubLinesSpecOnly SubLineMode = "spec"
	// SubLinesAlways extracts sub-lines from every field; colon-less
	// lines are ignored.
	SubLinesAlways SubLineMode = "always"
)

const (
	DefaultMergeSeparator = " | "
	DefaultNoteKey        = "note"
)

// Options configure a Parser. Zero values fall back to SubLinesSpecOnly,
// DefaultMergeSeparator and DefaultNoteKey.
type Options struct {
	SubLines       SubLineMode
	ExcludedKeys   []string
	MergeSeparator string
	NoteKey        string
}

// Parser flattens raw blob strings into Records. Safe to reuse across
// rows; it holds no per-row state.
type Parser struct {
	mode     SubLineMode
	sep      string
	noteKey  string
	excluded map[string]bool
}

func NewParser(opt Options) *Parser {
	p := &Parser{
		mode:     opt.SubLines,
		sep:      opt.MergeSeparator,
		noteKey:  opt.NoteKey,
		excluded: make(map[string]bool, len(opt.ExcludedKeys)),
	}
	if p.mode == "" {
		p.mode = SubLinesSpecOnly
	}
	if p.sep == "" {
		p.sep = DefaultMergeSeparator
	}
	if p.noteKey == "" {
		p.noteKey = DefaultNoteKey
	}
	for _, k := range opt.ExcludedKeys {
		if k = strings.TrimSpace(k); k != "" {
			p.excluded[strings.ToLower(k)] = true
		}
	}
	return p
}

var lineBreakRE = regexp.MustCompile(`\n+`)

// Parse turns one raw blob into a Record. Nothing here is fatal:
// fields without "=" are dropped, an empty blob yields an empty
// record, and repeated keys merge in encounter order.
func (p *Parser) Parse(raw string) *Record {
	rec := New()
	for _, field := range SplitFields(raw) {
		eq := strings.Index(field, "=")
		if eq < 0 {
			continue
		}
		key := strings.TrimSpace(field[:eq])
		if key == "" {
			continue
		}
		clean := normalize.Clean(stripQuotes(strings.TrimSpace(field[eq+1:])))
		rec.Append(key, clean, p.sep)
		if p.mode == SubLinesAlways ||
			(p.mode == SubLinesSpecOnly && strings.Contains(strings.ToLower(key), "spec")) {
			p.extractSubLines(rec, clean)
		}
	}
	for _, key := range rec.Keys() {
		if p.excluded[strings.ToLower(key)] {
			rec.Delete(key)
		}
	}
	return rec
}

// extractSubLines promotes "label: value" lines of a cleaned value to
// attributes. Labels repeated across fields merge into one value; the
// source data has no dedup and neither do we.
func (p *Parser) extractSubLines(rec *Record, clean string) {
	for _, line := range lineBreakRE.Split(clean, -1) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		colon := strings.Index(line, ":")
		if colon < 0 {
			if p.mode == SubLinesSpecOnly {
				rec.Append(p.noteKey, line, p.sep)
			}
			continue
		}
		subKey := strings.TrimSpace(line[:colon])
		if subKey == "" {
			continue
		}
		rec.Append(subKey, strings.TrimSpace(line[colon+1:]), p.sep)
	}
}

// stripQuotes removes one wholly wrapping pair of straight quotes.
func stripQuotes(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
