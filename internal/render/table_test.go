package render_test

import (
	"path/filepath"
	"testing"

	"github.com/DataMends/attrify/internal/record"
	"github.com/DataMends/attrify/internal/render"
	"github.com/DataMends/attrify/internal/sheet"
	"github.com/stretchr/testify/require"
)

func parsedRows(t *testing.T) ([]render.ParsedRow, *record.Accumulator) {
	t.Helper()
	p := record.NewParser(record.Options{SubLines: record.SubLinesAlways})
	acc := record.NewAccumulator()
	var rows []render.ParsedRow
	for i, fixture := range []struct {
		id   string
		blob string
	}{
		{"A1-BL", "color=Blue,ram=8GB"},
		{"A2", "color=Black,battery=5000 mAh"},
		{"", "color=Red"},
	} {
		rec := p.Parse(fixture.blob)
		acc.AddRecord(rec)
		rows = append(rows, render.ParsedRow{Pos: i + 1, ID: fixture.id, Rec: rec})
	}
	return rows, acc
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"wide", "long", "attrs"} {
		f, err := render.ParseFormat(s)
		require.NoError(t, err)
		require.Equal(t, render.Format(s), f)
	}
	_, err := render.ParseFormat("narrow")
	require.Error(t, err)
}

func TestWide(t *testing.T) {
	rows, acc := parsedRows(t)
	out := render.Wide(rows, acc, "sku")
	require.Equal(t, []string{"row", "sku", "color", "ram", "battery"}, out[0])
	require.Equal(t, []string{"1", "A1-BL", "Blue", "8GB", ""}, out[1])
	require.Equal(t, []string{"2", "A2", "Black", "", "5000 mAh"}, out[2])
	require.Equal(t, []string{"3", "", "Red", "", ""}, out[3])
}

func TestLong(t *testing.T) {
	rows, _ := parsedRows(t)
	out := render.Long(rows, "sku")
	require.Equal(t, []string{"row", "sku", "attribute", "value"}, out[0])
	require.Equal(t, []string{"1", "A1-BL", "color", "Blue"}, out[1])
	require.Equal(t, []string{"1", "A1-BL", "ram", "8GB"}, out[2])
	// Blank separator row between source rows.
	require.Equal(t, []string{"", "", "", ""}, out[3])
	require.Equal(t, []string{"2", "A2", "color", "Black"}, out[4])
}

func TestAttrsSkipsRowsWithoutIdentifier(t *testing.T) {
	rows, _ := parsedRows(t)
	out := render.Attrs(rows, []string{"BL"}, "sku")
	require.Equal(t, []string{"sku", "parent", "attribute", "value"}, out[0])
	require.Equal(t, []string{"A1-BL", "A1-", "color", "Blue"}, out[1])
	require.Equal(t, []string{"A1-BL", "A1-", "ram", "8GB"}, out[2])
	// A2 matches no suffix: parent stays blank, never the id itself.
	require.Equal(t, []string{"A2", "", "color", "Black"}, out[3])
	for _, line := range out {
		require.NotEqual(t, "Red", line[3], "identifier-less row must be skipped")
	}
}

// Rendering wide output and reading it back through the sheet boundary
// reconstructs every record's key/value pairs (blanks meaning absent).
func TestWideRoundTrip(t *testing.T) {
	rows, acc := parsedRows(t)
	out := render.Wide(rows, acc, "sku")
	p := filepath.Join(t.TempDir(), "out.flat.csv")
	require.NoError(t, render.Write(p, out))

	table, err := sheet.Load(p, sheet.Options{})
	require.NoError(t, err)
	require.Equal(t, out[0], table.Headers)
	for i, r := range rows {
		got := table.Rows[i]
		for j, name := range acc.Names() {
			want, _ := r.Rec.Get(name)
			require.Equal(t, want, got[j+2], "row %d attr %s", i, name)
		}
	}
}

func TestWriteXLSX(t *testing.T) {
	rows, acc := parsedRows(t)
	out := render.Wide(rows, acc, "sku")
	p := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, render.Write(p, out))

	table, err := sheet.Load(p, sheet.Options{})
	require.NoError(t, err)
	require.Equal(t, out[0], table.Headers)
	require.Equal(t, "Blue", table.Rows[0][2])
}
