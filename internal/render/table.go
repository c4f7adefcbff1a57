// Package render shapes parsed rows into the wide, long and attrs
// output tables and writes them as csv or xlsx.
package render

import (
	"fmt"
	"strconv"

	"github.com/DataMends/attrify/internal/record"
	"github.com/DataMends/attrify/internal/sku"
)

// ParsedRow pairs one source row with its flattened record.
type ParsedRow struct {
	Pos int
	ID  string
	Rec *record.Record
}

// Format names an output table shape.
type Format string

const (
	FormatWide  Format = "wide"
	FormatLong  Format = "long"
	FormatAttrs Format = "attrs"
)

// ParseFormat validates a format name from flags or config.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatWide, FormatLong, FormatAttrs:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown output format %q (use wide, long or attrs)", s)
}

// Wide renders one output row per source row, one column per attribute
// name in run-wide first-seen order, blank where a row lacks the
// attribute.
func Wide(rows []ParsedRow, acc *record.Accumulator, idHeader string) [][]string {
	names := acc.Names()
	header := append([]string{"row", idHeader}, names...)
	out := [][]string{header}
	for _, r := range rows {
		line := make([]string, 0, len(header))
		line = append(line, strconv.Itoa(r.Pos), r.ID)
		for _, name := range names {
			v, _ := r.Rec.Get(name)
			line = append(line, v)
		}
		out = append(out, line)
	}
	return out
}

// Long renders one output row per present attribute per source row,
// with a blank separator row between source rows.
func Long(rows []ParsedRow, idHeader string) [][]string {
	out := [][]string{{"row", idHeader, "attribute", "value"}}
	for i, r := range rows {
		if i > 0 {
			out = append(out, []string{"", "", "", ""})
		}
		for _, key := range r.Rec.Keys() {
			v, _ := r.Rec.Get(key)
			out = append(out, []string{strconv.Itoa(r.Pos), r.ID, key, v})
		}
	}
	return out
}

// Attrs renders one output row per present attribute keyed by
// identifier, with a derived-parent column. Rows without an identifier
// are not records and are skipped entirely.
func Attrs(rows []ParsedRow, suffixes []string, idHeader string) [][]string {
	out := [][]string{{idHeader, "parent", "attribute", "value"}}
	for _, r := range rows {
		if r.ID == "" {
			continue
		}
		parent := sku.DeriveParent(r.ID, suffixes)
		for _, key := range r.Rec.Keys() {
			v, _ := r.Rec.Get(key)
			out = append(out, []string{r.ID, parent, key, v})
		}
	}
	return out
}
