package cmd

import (
	"testing"
)

func TestParentCommand(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	runCmd(t, "parent", "2306EPN60GBL", "PLAINSKU", "--suffixes", "BL,GR,RD")
}

func TestParentCommandNoSuffixes(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	parentSuffixes = nil
	rootCmd.SetArgs([]string{"parent", "SOMESKU"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected error when no suffixes are configured")
	}
}
