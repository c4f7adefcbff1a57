package cmd

import (
	"fmt"

	"github.com/DataMends/attrify/internal/sku"
	"github.com/spf13/cobra"
)

var parentSuffixes []string

var parentCmd = &cobra.Command{
	Use:   "parent <identifier>...",
	Short: "Derive parent identifiers by stripping known variant suffixes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		suffixes := sku.NormalizeSuffixes(append(append([]string{}, cfgSuffixes()...), parentSuffixes...))
		if len(suffixes) == 0 {
			return fmt.Errorf("no suffixes configured (use --suffixes or set suffixes in config)")
		}
		for _, id := range args {
			parent := sku.DeriveParent(id, suffixes)
			if parent == "" {
				fmt.Printf("%s\t(no match)\n", id)
				continue
			}
			fmt.Printf("%s\t%s\n", id, parent)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parentCmd)
	parentCmd.Flags().StringSliceVar(&parentSuffixes, "suffixes", nil, "suffix tokens in priority order (first match wins)")
}
