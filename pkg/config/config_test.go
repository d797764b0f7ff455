package config

import (
	"reflect"
	"testing"
)

func TestSplitGlobs(t *testing.T) {
	got := SplitGlobs(" *.pdf, **/*.epub ,,")
	want := []string{"*.pdf", "**/*.epub"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitGlobs = %v, want %v", got, want)
	}
	if globs := SplitGlobs(""); globs != nil {
		t.Fatalf("expected nil for empty input, got %v", globs)
	}
}

func TestValidateRejectsBadSizes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SourceDir = t.TempDir()
	cfg.MinSizeBytes = 100
	cfg.MaxSizeBytes = 10
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when min size exceeds max size")
	}
}

func TestValidateMissingSource(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SourceDir = "/nonexistent/books"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing source directory")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("BOOKSORT_SOURCE_DIR", "/env/books")
	t.Setenv("BOOKSORT_WORKERS", "3")
	t.Setenv("BOOKSORT_DEDUPE", "true")

	cfg := DefaultConfig()
	cfg.ApplyEnv()

	if cfg.SourceDir != "/env/books" {
		t.Fatalf("SourceDir = %q, want /env/books", cfg.SourceDir)
	}
	if cfg.Workers != 3 {
		t.Fatalf("Workers = %d, want 3", cfg.Workers)
	}
	if !cfg.Dedupe {
		t.Fatal("expected Dedupe enabled from environment")
	}
}
