package sku_test

import (
	"reflect"
	"testing"

	"github.com/DataMends/attrify/internal/sku"
)

func TestDeriveParentStripsSuffix(t *testing.T) {
	got := sku.DeriveParent("2306EPN60GBL", []string{"BL", "GR", "RD"})
	if got != "2306EPN60G" {
		t.Fatalf("DeriveParent = %q, want 2306EPN60G", got)
	}
}

func TestDeriveParentFirstMatchWins(t *testing.T) {
	// "BL" is listed before "GBL"; no longest-match preference.
	got := sku.DeriveParent("2306EPN60GBL", []string{"BL", "GBL"})
	if got != "2306EPN60G" {
		t.Fatalf("DeriveParent = %q, want 2306EPN60G", got)
	}
	got = sku.DeriveParent("2306EPN60GBL", []string{"GBL", "BL"})
	if got != "2306EPN60" {
		t.Fatalf("DeriveParent = %q, want 2306EPN60", got)
	}
}

func TestDeriveParentNoMatch(t *testing.T) {
	if got := sku.DeriveParent("PLAINSKU", []string{"RED", "BLUE"}); got != "" {
		t.Fatalf("expected empty string for no match, got %q", got)
	}
	// Ending in "BL" with only "BLACK" listed is still no match; the
	// result must never default to the identifier itself.
	if got := sku.DeriveParent("2306EPN60GBL", []string{"BLACK"}); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestDeriveParentCaseInsensitive(t *testing.T) {
	if got := sku.DeriveParent("phone-bl", []string{"BL"}); got != "phone-" {
		t.Fatalf("DeriveParent = %q, want phone-", got)
	}
	if got := sku.DeriveParent("PHONE-BL", []string{"bl"}); got != "PHONE-" {
		t.Fatalf("DeriveParent = %q, want PHONE-", got)
	}
}

func TestDeriveParentEmptyInputs(t *testing.T) {
	if got := sku.DeriveParent("", []string{"BL"}); got != "" {
		t.Fatalf("empty id should derive empty, got %q", got)
	}
	if got := sku.DeriveParent("ABC", nil); got != "" {
		t.Fatalf("no suffixes should derive empty, got %q", got)
	}
	if got := sku.DeriveParent("ABC", []string{"", "BC"}); got != "A" {
		t.Fatalf("empty tokens must be skipped, got %q", got)
	}
}

func TestNormalizeSuffixes(t *testing.T) {
	got := sku.NormalizeSuffixes([]string{" BL ", "", "  ", "GR"})
	if !reflect.DeepEqual(got, []string{"BL", "GR"}) {
		t.Fatalf("NormalizeSuffixes = %v", got)
	}
}
