package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"book-sorter/internal/manifest"
	"book-sorter/internal/materialize"
)

type config struct {
	OutDir      string
	RandomCount int
	Seed        int64
	Force       bool
	Quiet       bool
	List        bool
}

func main() {
	cfg := parseFlags()
	if err := cfg.validate(); err != nil {
		log.Fatalf("❌ %v", err)
	}

	rnd := rand.New(rand.NewSource(cfg.seed()))
	specs := manifest.GenerateN(rnd, cfg.RandomCount)

	if cfg.List {
		for _, spec := range specs {
			fmt.Println(spec.Filename())
		}
		return
	}

	if !cfg.Quiet {
		fmt.Printf("🔧 Seeding placeholder library\n")
		fmt.Printf("📁 Output: %s\n", cfg.OutDir)
		fmt.Printf("📚 Entries: %d curated + %d randomized\n", manifest.CuratedCount(), cfg.RandomCount)
	}

	if err := materialize.ResetDir(cfg.OutDir, cfg.Force); err != nil {
		log.Fatalf("❌ %v", err)
	}
	if err := materialize.WriteAll(cfg.OutDir, specs); err != nil {
		log.Fatalf("❌ generation failed: %v", err)
	}

	count, err := materialize.CountFiles(cfg.OutDir)
	if err != nil {
		log.Fatalf("❌ failed to count output: %v", err)
	}
	if !cfg.Quiet {
		fmt.Printf("✨ Created %d placeholder books in %s\n", count, cfg.OutDir)
	}
}

func parseFlags() config {
	var cfg config
	flag.StringVar(&cfg.OutDir, "out", "books", "Output directory for the placeholder library")
	flag.IntVar(&cfg.RandomCount, "random-count", manifest.RandomizedCount, "Number of randomized entries to generate")
	flag.Int64Var(&cfg.Seed, "seed", 0, "Optional deterministic seed (defaults to current time)")
	flag.BoolVar(&cfg.Force, "force", false, "Allow overwriting an existing directory by clearing it first")
	flag.BoolVar(&cfg.Quiet, "quiet", false, "Suppress non-error output")
	flag.BoolVar(&cfg.List, "list", false, "Print the generated filenames instead of writing files")
	flag.Parse()
	return cfg
}

func (c config) validate() error {
	if c.OutDir == "" {
		return errors.New("output directory is required")
	}
	if c.RandomCount < 0 {
		return errors.New("random-count cannot be negative")
	}
	return nil
}

func (c config) seed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
