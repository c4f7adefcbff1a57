package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/DataMends/attrify/internal/job"
	"github.com/DataMends/attrify/internal/record"
	"github.com/DataMends/attrify/internal/render"
	"github.com/DataMends/attrify/internal/sheet"
	"github.com/DataMends/attrify/internal/sku"
	"github.com/spf13/cobra"
)

var (
	flatOutputPath  string
	flatFormat      string
	flatSheetName   string
	flatSheetIndex  int
	flatBlobColumn  string
	flatIDColumn    string
	flatSubLines    string
	flatMergeSep    string
	flatExcludeKeys []string
	flatSuffixes    []string
	flatDryRun      bool
)

var flattenCmd = &cobra.Command{
	Use:   "flatten <file>",
	Short: "Flatten a spreadsheet's key=value blob column into a clean table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("input file: %w", err)
		}

		format, err := render.ParseFormat(pick(flatFormat, cfgOutputFormat()))
		if err != nil {
			return err
		}
		mode, err := parseSubLineMode(pick(flatSubLines, cfgSubLineMode()))
		if err != nil {
			return err
		}

		opt := sheet.Options{
			SheetName:  flatSheetName,
			SheetIndex: flatSheetIndex,
			IDColumn:   pick(flatIDColumn, cfgIDColumn()),
			BlobColumn: pick(flatBlobColumn, cfgBlobColumn()),
		}
		table, err := sheet.Load(path, opt)
		if err != nil {
			return err
		}
		debugf("loaded %d data rows, headers: %s\n", len(table.Rows), strings.Join(table.Headers, ", "))

		// An identifier column attrs output can't resolve is fatal; the
		// other formats just render blank identifiers.
		if format == render.FormatAttrs && opt.IDColumn != "" && table.HeaderIndex(opt.IDColumn) < 0 {
			return fmt.Errorf("identifier column %q not found (required for attrs output)", opt.IDColumn)
		}
		if opt.IDColumn != "" && table.HeaderIndex(opt.IDColumn) < 0 {
			fmt.Fprintf(os.Stderr, "⚠ Warning: identifier column %q not found; identifiers will be blank\n", opt.IDColumn)
		}

		rows, err := sheet.Extract(table, opt)
		if err != nil {
			return err
		}

		// The identifier key is always stripped from parsed records so
		// blob-internal noise can't corrupt the identifier column.
		excluded := append([]string{}, cfgExcludedKeys()...)
		excluded = append(excluded, flatExcludeKeys...)
		if opt.IDColumn != "" {
			excluded = append(excluded, opt.IDColumn)
		}
		parser := record.NewParser(record.Options{
			SubLines:       mode,
			ExcludedKeys:   excluded,
			MergeSeparator: pick(flatMergeSep, cfgMergeSeparator()),
		})

		acc := record.NewAccumulator()
		parsed := make([]render.ParsedRow, 0, len(rows))
		for _, r := range rows {
			rec := parser.Parse(r.Blob)
			acc.AddRecord(rec)
			parsed = append(parsed, render.ParsedRow{Pos: r.Pos, ID: r.ID, Rec: rec})
		}

		if flatDryRun {
			fmt.Printf("✓ Parsed %d rows, %d distinct attributes (dry run, nothing written)\n", len(parsed), len(acc.Names()))
			return nil
		}

		suffixes := sku.NormalizeSuffixes(append(append([]string{}, cfgSuffixes()...), flatSuffixes...))
		idHeader := opt.IDColumn
		if idHeader == "" {
			idHeader = "id"
		}
		var out [][]string
		switch format {
		case render.FormatWide:
			out = render.Wide(parsed, acc, idHeader)
		case render.FormatLong:
			out = render.Long(parsed, idHeader)
		case render.FormatAttrs:
			out = render.Attrs(parsed, suffixes, idHeader)
		}

		outPath := flatOutputPath
		if outPath == "" {
			outPath = strings.TrimSuffix(path, filepath.Ext(path)) + ".flat.csv"
		}
		if err := render.Write(outPath, out); err != nil {
			return err
		}
		fmt.Printf("✓ Wrote %s output to %s (%d rows, %d attributes)\n", format, outPath, len(parsed), len(acc.Names()))

		if cfg != nil {
			rec := job.New(path, outPath, string(format), string(mode), len(parsed), len(acc.Names()))
			if err := job.Save(cfg.JobsDir, rec); err != nil {
				fmt.Fprintf(os.Stderr, "⚠ Warning: failed to record job: %v\n", err)
			}
		}
		return nil
	},
}

func parseSubLineMode(s string) (record.SubLineMode, error) {
	switch s {
	case "spec", "":
		return record.SubLinesSpecOnly, nil
	case "always":
		return record.SubLinesAlways, nil
	default:
		return "", fmt.Errorf("unknown --sub-lines mode %q (use spec or always)", s)
	}
}

// pick prefers the flag value over the config value.
func pick(flag, conf string) string {
	if flag != "" {
		return flag
	}
	return conf
}

func cfgIDColumn() string {
	if cfg != nil {
		return cfg.IDColumn
	}
	return "sku"
}

func cfgBlobColumn() string {
	if cfg != nil {
		return cfg.BlobColumn
	}
	return ""
}

func cfgSubLineMode() string {
	if cfg != nil {
		return cfg.SubLineMode
	}
	return "spec"
}

func cfgMergeSeparator() string {
	if cfg != nil {
		return cfg.MergeSeparator
	}
	return record.DefaultMergeSeparator
}

func cfgOutputFormat() string {
	if cfg != nil {
		return cfg.OutputFormat
	}
	return "wide"
}

func cfgExcludedKeys() []string {
	if cfg != nil {
		return cfg.ExcludedKeys
	}
	return nil
}

func cfgSuffixes() []string {
	if cfg != nil {
		return cfg.Suffixes
	}
	return nil
}

func init() {
	rootCmd.AddCommand(flattenCmd)
	flattenCmd.Flags().StringVarP(&flatOutputPath, "output", "o", "", "output path (.csv or .xlsx; default <input>.flat.csv)")
	flattenCmd.Flags().StringVarP(&flatFormat, "format", "f", "", "output shape: wide | long | attrs")
	flattenCmd.Flags().StringVar(&flatSheetName, "sheet-name", "", "XLSX: sheet name to read")
	flattenCmd.Flags().IntVar(&flatSheetIndex, "sheet-index", 1, "XLSX: 1-based sheet index (used if --sheet-name not provided)")
	flattenCmd.Flags().StringVar(&flatBlobColumn, "blob-column", "", "header of the blob column (default: first cell containing '=')")
	flattenCmd.Flags().StringVar(&flatIDColumn, "id-column", "", "header of the identifier column")
	flattenCmd.Flags().StringVar(&flatSubLines, "sub-lines", "", "sub-line extraction: spec (only spec-like fields) | always")
	flattenCmd.Flags().StringVar(&flatMergeSep, "merge-sep", "", "separator used when a key repeats")
	flattenCmd.Flags().StringSliceVar(&flatExcludeKeys, "exclude-key", nil, "keys to strip from parsed records (repeatable)")
	flattenCmd.Flags().StringSliceVar(&flatSuffixes, "suffixes", nil, "identifier suffixes for parent derivation, in priority order")
	flattenCmd.Flags().BoolVar(&flatDryRun, "dry-run", false, "parse and report counts without writing output")
}
