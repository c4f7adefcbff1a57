package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/DataMends/attrify/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags (wired to config at load time)
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "attrify",
	Short: "Attrify: flatten semi-structured spreadsheet blobs into clean tables",
	Long: `Attrify normalizes spreadsheet rows whose cells hold comma-separated
key=value blobs (often with embedded HTML and "label: value" sub-lines)
into flat wide, long, or per-SKU attribute tables.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Runs before every command, tests included
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.attrify/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

func debugf(format string, args ...any) {
	if debug {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
