package cmd

import (
	"fmt"
	"strings"

	cfgpkg "github.com/DataMends/attrify/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set Attrify configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("id_column: %s\n", cfg.IDColumn)
		fmt.Printf("blob_column: %s\n", cfg.BlobColumn)
		fmt.Printf("sub_line_mode: %s\n", cfg.SubLineMode)
		fmt.Printf("merge_separator: %q\n", cfg.MergeSeparator)
		fmt.Printf("excluded_keys: %s\n", strings.Join(cfg.ExcludedKeys, ", "))
		fmt.Printf("suffixes: %s\n", strings.Join(cfg.Suffixes, ", "))
		fmt.Printf("output_format: %s\n", cfg.OutputFormat)
		fmt.Printf("jobs_dir: %s\n", cfg.JobsDir)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "id_column":
			cfg.IDColumn = val
		case "blob_column":
			cfg.BlobColumn = val
		case "sub_line_mode":
			switch val {
			case "spec", "always":
				cfg.SubLineMode = val
			default:
				return fmt.Errorf("invalid sub_line_mode: %s (use spec or always)", val)
			}
		case "merge_separator":
			cfg.MergeSeparator = val
		case "excluded_keys":
			cfg.ExcludedKeys = splitCSVList(val)
		case "suffixes":
			cfg.Suffixes = splitCSVList(val)
		case "output_format":
			switch val {
			case "wide", "long", "attrs":
				cfg.OutputFormat = val
			default:
				return fmt.Errorf("invalid output_format: %s (use wide, long or attrs)", val)
			}
		case "jobs_dir":
			cfg.JobsDir = val
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func splitCSVList(val string) []string {
	var out []string
	for _, s := range strings.Split(val, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
