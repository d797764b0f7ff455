package manifest

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"
)

func TestGenerateLength(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	m := Generate(rnd)
	want := CuratedCount() + RandomizedCount
	if len(m) != want {
		t.Fatalf("expected %d entries, got %d", want, len(m))
	}
}

func TestGenerateNZeroKeepsCuratedOnly(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	m := GenerateN(rnd, 0)
	if len(m) != CuratedCount() {
		t.Fatalf("expected %d curated entries, got %d", CuratedCount(), len(m))
	}
}

func TestRandomizedEntriesStayInCategories(t *testing.T) {
	exts := map[string]bool{}
	for _, ext := range Extensions {
		exts[ext] = true
	}
	prefixes := map[string]bool{}
	for _, prefix := range Prefixes {
		prefixes[prefix] = true
	}

	rnd := rand.New(rand.NewSource(7))
	m := Generate(rnd)
	for i, spec := range m[CuratedCount():] {
		if !exts[spec.Ext] {
			t.Errorf("entry %d: extension %q outside the fixed set", i, spec.Ext)
		}
		sep := strings.LastIndex(spec.Name, "_")
		if sep < 0 {
			t.Fatalf("entry %d: stem %q missing counter separator", i, spec.Name)
		}
		if prefix := spec.Name[:sep]; !prefixes[prefix] {
			t.Errorf("entry %d: prefix %q outside the fixed set", i, prefix)
		}
		counter, err := strconv.Atoi(spec.Name[sep+1:])
		if err != nil {
			t.Fatalf("entry %d: stem %q has non-numeric counter: %v", i, spec.Name, err)
		}
		if counter != i+1 {
			t.Errorf("entry %d: expected counter %d, got %d", i, i+1, counter)
		}
	}
}

func TestRandomizedStemsDistinctWithBoundaries(t *testing.T) {
	rnd := rand.New(rand.NewSource(99))
	m := Generate(rnd)

	seen := map[string]int{}
	for _, spec := range m[CuratedCount():] {
		seen[spec.Name]++
	}
	if len(seen) != RandomizedCount {
		t.Fatalf("expected %d distinct stems, got %d", RandomizedCount, len(seen))
	}
	for _, counter := range []int{1, RandomizedCount} {
		found := 0
		suffix := "_" + strconv.Itoa(counter)
		for stem, count := range seen {
			if strings.HasSuffix(stem, suffix) {
				found += count
			}
		}
		if found != 1 {
			t.Errorf("counter %d: expected exactly one entry, got %d", counter, found)
		}
	}
}

func TestCuratedPortionIsDeterministic(t *testing.T) {
	first := Generate(rand.New(rand.NewSource(3)))
	second := Generate(rand.New(rand.NewSource(4)))
	for i := 0; i < CuratedCount(); i++ {
		if first[i] != second[i] {
			t.Fatalf("curated entry %d differs across runs: %+v vs %+v", i, first[i], second[i])
		}
	}
	if first[0] != Curated()[0] {
		t.Fatalf("generated manifest does not start with the curated fixture")
	}
}

func TestSameSeedReproducesManifest(t *testing.T) {
	first := Generate(rand.New(rand.NewSource(42)))
	second := Generate(rand.New(rand.NewSource(42)))
	if len(first) != len(second) {
		t.Fatalf("seeded runs produced different lengths: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("entry %d differs between identically seeded runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestCuratedReturnsCopy(t *testing.T) {
	m := Curated()
	m[0].Name = "mutated"
	if Curated()[0].Name == "mutated" {
		t.Fatal("Curated exposed internal state")
	}
}
