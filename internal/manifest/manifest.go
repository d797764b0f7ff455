package manifest

import (
	"fmt"
	"math/rand"
)

// FileSpec describes one placeholder file to materialize.
type FileSpec struct {
	Name string
	Ext  string
}

// Filename returns the full on-disk name for the spec.
func (f FileSpec) Filename() string {
	return f.Name + "." + f.Ext
}

// Manifest is the ordered list of FileSpecs produced by one generator run:
// the curated fixture first, then the randomized batch.
type Manifest []FileSpec

// Categories for randomized entries. Selection is by drawn index, so the
// position order is load-bearing.
var (
	Extensions = []string{"pdf", "epub", "rar", "zip", "djvu", "iso"}
	Prefixes   = []string{"Book", "Novel", "Story", "Guide", "Manual"}
)

// RandomizedCount is the default number of randomized entries per run.
const RandomizedCount = 70

// curated is the hand-authored portion of the library: OS and office
// artifacts, programming titles, science topics, and children's content.
// It never changes between runs.
var curated = Manifest{
	{Name: "Windows11_Installation_Guide", Ext: "iso"},
	{Name: "WinServer_2022_Administration", Ext: "pdf"},
	{Name: "Ubuntu_Linux_Handbook", Ext: "pdf"},
	{Name: "macOS_Sonoma_Essentials", Ext: "epub"},
	{Name: "Office365_User_Manual", Ext: "pdf"},
	{Name: "Excel_Formulas_Cookbook", Ext: "pdf"},
	{Name: "Python_Crash_Course", Ext: "pdf"},
	{Name: "Rust_in_Action", Ext: "epub"},
	{Name: "Java_Concurrency_in_Practice", Ext: "djvu"},
	{Name: "PHP_and_MySQL_Web_Development", Ext: "pdf"},
	{Name: "JavaScript_The_Good_Parts", Ext: "epub"},
	{Name: "GoLang_Design_Patterns", Ext: "pdf"},
	{Name: "Cplusplus_Primer", Ext: "djvu"},
	{Name: "C_programming_Language", Ext: "pdf"},
	{Name: "Quantum_Physics_Introduction", Ext: "pdf"},
	{Name: "Organic_Chemistry_Lab_Workbook", Ext: "zip"},
	{Name: "Biology_of_the_Cell", Ext: "djvu"},
	{Name: "Statistics_for_Data_Analysis", Ext: "pdf"},
	{Name: "Astronomy_Cosmos_Atlas", Ext: "rar"},
	{Name: "Science_Almanac_2024", Ext: "pdf"},
	{Name: "Fairy_tales_Collection", Ext: "epub"},
	{Name: "Stories_for_kids", Ext: "epub"},
	{Name: "Biology_for_kids", Ext: "pdf"},
	{Name: "Art_of_Painting", Ext: "rar"},
	{Name: "Poetry_Anthology", Ext: "epub"},
}

// Curated returns a copy of the fixed library fixture.
func Curated() Manifest {
	out := make(Manifest, len(curated))
	copy(out, curated)
	return out
}

// CuratedCount reports the size of the curated fixture.
func CuratedCount() int {
	return len(curated)
}

// Generate produces a full manifest using the caller's random source:
// the curated entries followed by RandomizedCount randomized entries.
// The same seeded source always yields the same manifest.
func Generate(rnd *rand.Rand) Manifest {
	return GenerateN(rnd, RandomizedCount)
}

// GenerateN is Generate with an explicit randomized-entry count.
// For each entry i in 1..randomized it draws an extension index and a
// prefix index independently and emits "<prefix>_<i>.<ext>". The counter
// keeps randomized stems unique even when draws repeat.
func GenerateN(rnd *rand.Rand, randomized int) Manifest {
	out := make(Manifest, 0, len(curated)+randomized)
	out = append(out, curated...)
	for i := 1; i <= randomized; i++ {
		ext := Extensions[rnd.Intn(len(Extensions))]
		prefix := Prefixes[rnd.Intn(len(Prefixes))]
		out = append(out, FileSpec{
			Name: fmt.Sprintf("%s_%d", prefix, i),
			Ext:  ext,
		})
	}
	return out
}
