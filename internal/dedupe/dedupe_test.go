package dedupe

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDigestMatchesForIdenticalContent(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.pdf")
	second := filepath.Join(dir, "b.pdf")
	third := filepath.Join(dir, "c.pdf")

	if err := os.WriteFile(first, []byte("same content"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if err := os.WriteFile(second, []byte("same content"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if err := os.WriteFile(third, []byte("different content"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	d1, err := Digest(first)
	if err != nil {
		t.Fatalf("digest failed: %v", err)
	}
	d2, err := Digest(second)
	if err != nil {
		t.Fatalf("digest failed: %v", err)
	}
	d3, err := Digest(third)
	if err != nil {
		t.Fatalf("digest failed: %v", err)
	}

	if d1 != d2 {
		t.Errorf("identical content produced different digests: %s vs %s", d1, d2)
	}
	if d1 == d3 {
		t.Errorf("different content produced the same digest: %s", d1)
	}
	if len(d1) != 64 {
		t.Errorf("expected 64 hex characters, got %d", len(d1))
	}
}

func TestDigestMissingFile(t *testing.T) {
	if _, err := Digest(filepath.Join(t.TempDir(), "missing.pdf")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestIndexRecord(t *testing.T) {
	index := NewIndex()

	if first := index.Record("abc", "/library/one.pdf"); first != "" {
		t.Fatalf("expected new digest, got prior path %q", first)
	}
	if first := index.Record("abc", "/library/two.pdf"); first != "/library/one.pdf" {
		t.Fatalf("expected first path, got %q", first)
	}
	if first := index.Record("def", "/library/three.pdf"); first != "" {
		t.Fatalf("expected new digest, got prior path %q", first)
	}
	if index.Len() != 2 {
		t.Fatalf("expected 2 distinct digests, got %d", index.Len())
	}
}
