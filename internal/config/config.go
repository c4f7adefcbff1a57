package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	IDColumn       string   `mapstructure:"id_column" yaml:"id_column"`
	BlobColumn     string   `mapstructure:"blob_column" yaml:"blob_column"`
	SubLineMode    string   `mapstructure:"sub_line_mode" yaml:"sub_line_mode"`
	MergeSeparator string   `mapstructure:"merge_separator" yaml:"merge_separator"`
	ExcludedKeys   []string `mapstructure:"excluded_keys" yaml:"excluded_keys"`
	Suffixes       []string `mapstructure:"suffixes" yaml:"suffixes"`
	OutputFormat   string   `mapstructure:"output_format" yaml:"output_format"`
	JobsDir        string   `mapstructure:"jobs_dir" yaml:"jobs_dir"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.attrify/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".attrify")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("ATTRIFY")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("id_column", "sku")
	v.SetDefault("blob_column", "")
	v.SetDefault("sub_line_mode", "spec")
	v.SetDefault("merge_separator", " | ")
	v.SetDefault("excluded_keys", []string{})
	v.SetDefault("suffixes", []string{})
	v.SetDefault("output_format", "wide")

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".attrify")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	// Resolve jobs_dir default: ~/.attrify/jobs
	if c.JobsDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		c.JobsDir = filepath.Join(home, ".attrify", "jobs")
	}
	return &c, nil
}
