// Package sheet is the input boundary: it materializes xlsx and
// csv/tsv files into plain string rows and locates the identifier and
// blob cells the parsing core works on.
package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table holds one fully materialized sheet: a trimmed header row plus
// raw data rows.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Row is one data row reduced to what the parsing core needs.
type Row struct {
	Pos  int // 1-based data-row position, header excluded
	ID   string
	Blob string
}

// Options locate the sheet and the identifier/blob cells.
type Options struct {
	SheetName  string
	SheetIndex int // 1-based, used when SheetName is empty
	IDColumn   string
	BlobColumn string // empty: scan each row for the first cell containing "="
}

// Load reads an xlsx or csv/tsv file into a Table. The delimiter for
// text files is sniffed from the extension.
func Load(path string, opt Options) (*Table, error) {
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return loadXLSX(path, opt)
	}
	return loadCSV(path, sniffDelimiter(path))
}

func loadXLSX(path string, opt Options) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()
	name := opt.SheetName
	if name == "" {
		idx := opt.SheetIndex
		if idx < 1 {
			idx = 1
		}
		sheets := f.GetSheetList()
		if idx > len(sheets) {
			return nil, fmt.Errorf("sheet index %d out of range (workbook has %d sheets)", idx, len(sheets))
		}
		name = sheets[idx-1]
	}
	// GetRows flattens rich cell content to plain text, which is all
	// the parser ever sees.
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", name, err)
	}
	return tableFrom(rows), nil
}

func loadCSV(path string, delim rune) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return tableFrom(rows), nil
}

func sniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}

func tableFrom(rows [][]string) *Table {
	if len(rows) == 0 {
		return &Table{}
	}
	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}
	return &Table{Headers: headers, Rows: rows[1:]}
}

// HeaderIndex finds a header case-insensitively; -1 when absent.
func (t *Table) HeaderIndex(name string) int {
	for i, h := range t.Headers {
		if strings.EqualFold(h, name) {
			return i
		}
	}
	return -1
}

// Extract resolves the identifier and blob cell for every non-empty
// data row. A configured blob column that cannot be found is fatal; a
// missing identifier is not — the row is kept with an empty ID and the
// renderer decides what that means per output format.
func Extract(t *Table, opt Options) ([]Row, error) {
	idIdx := -1
	if opt.IDColumn != "" {
		idIdx = t.HeaderIndex(opt.IDColumn)
	}
	blobIdx := -1
	if opt.BlobColumn != "" {
		blobIdx = t.HeaderIndex(opt.BlobColumn)
		if blobIdx < 0 {
			return nil, fmt.Errorf("blob column %q not found in %s", opt.BlobColumn, headerList(t.Headers))
		}
	}
	var out []Row
	for i, cells := range t.Rows {
		if emptyRow(cells) {
			continue
		}
		row := Row{Pos: i + 1}
		if idIdx >= 0 && idIdx < len(cells) {
			row.ID = strings.TrimSpace(cells[idIdx])
		}
		if blobIdx >= 0 {
			if blobIdx < len(cells) {
				row.Blob = cells[blobIdx]
			}
		} else {
			row.Blob = scanBlob(cells)
		}
		out = append(out, row)
	}
	return out, nil
}

// scanBlob returns the first cell that looks like a key=value blob.
func scanBlob(cells []string) string {
	for _, c := range cells {
		if strings.Contains(c, "=") {
			return c
		}
	}
	return ""
}

func emptyRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func headerList(headers []string) string {
	if len(headers) == 0 {
		return "(no headers)"
	}
	return "headers: " + strings.Join(headers, ", ")
}
